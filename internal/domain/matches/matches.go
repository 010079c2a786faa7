// Package matches flattens the season history into the records backing
// the recent-match table, inferring raw scores and display points from
// whichever scale the payload supplied.
package matches

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kiyose/janstats/internal/domain/roster"
	"github.com/kiyose/janstats/internal/domain/season"
)

// Record is one participant's result in one game. Records are ordered
// most-recent game first, highest points first within a game.
type Record struct {
	Date      string  `json:"date"`
	Room      string  `json:"room"`
	Rank      int     `json:"rank"`
	Score     int     `json:"score"`
	Nameplate string  `json:"nameplate"`
	Points    float64 `json:"points"`
}

// Build flattens the first season of the payload. Unlike the timeline
// and summary builders, the registry does not gate inclusion here:
// participants with unknown names still appear under their raw name.
// An empty payload yields an empty slice, never an error.
func Build(p *season.Payload, _ *roster.Registry) []Record {
	s, ok := p.First()
	if !ok {
		return []Record{}
	}

	// History arrives in the authoritative chronological order
	// established at decode time, so game numbering here agrees with
	// the other builders.
	days := season.NewDayCounter()
	collator := collate.New(language.Japanese)

	games := make([][]Record, 0, len(s.History))
	for i, g := range s.History {
		nth := days.Next(g.Date)
		room := roomLabel(i+1, g.Date, nth)

		records := make([]Record, 0, len(g.Players))
		for _, entry := range g.Players {
			rank := normalizeRank(entry)
			raw, haveRaw := deriveRawScore(entry, rank)
			score := raw
			if !haveRaw {
				score = int(math.Round(entry.Score * pointUnit))
			}
			records = append(records, Record{
				Date:      g.Date,
				Room:      room,
				Rank:      rank,
				Score:     score,
				Nameplate: entry.Name,
				Points:    derivePoints(raw, haveRaw, rank, entry),
			})
		}

		sort.SliceStable(records, func(a, b int) bool {
			if records[a].Points != records[b].Points {
				return records[a].Points > records[b].Points
			}
			if records[a].Rank != records[b].Rank {
				return records[a].Rank < records[b].Rank
			}
			return collator.CompareString(records[a].Nameplate, records[b].Nameplate) < 0
		})
		games = append(games, records)
	}

	// Most recent game first, per-game ordering preserved.
	flat := make([]Record, 0, totalRecords(games))
	for i := len(games) - 1; i >= 0; i-- {
		flat = append(flat, games[i]...)
	}
	return flat
}

func totalRecords(games [][]Record) int {
	n := 0
	for _, g := range games {
		n += len(g)
	}
	return n
}

// roomLabel renders "第{n}戦 ({M/D}-{k}戦目)". Without a usable date it
// degrades to the bare game prefix.
func roomLabel(gameNumber int, date string, dailyIndex int) string {
	prefix := "対局"
	if gameNumber > 0 {
		prefix = fmt.Sprintf("第%d戦", gameNumber)
	}
	dateLabel := season.MonthDay(date)
	if dateLabel == "" {
		return prefix
	}
	return fmt.Sprintf("%s (%s-%d戦目)", prefix, dateLabel, dailyIndex)
}
