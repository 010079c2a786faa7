// Package summary derives per-player season statistics with a full
// rank history for the dashboard's player cards.
package summary

import (
	"github.com/kiyose/janstats/internal/domain/roster"
	"github.com/kiyose/janstats/internal/domain/season"
)

// RankPoint is one entry of a player's rank history. There is one entry
// per season game, not per game played; Rank is nil for games the
// player sat out.
type RankPoint struct {
	GameNumber int    `json:"gameNumber"`
	Date       string `json:"date"`
	DailyIndex int    `json:"dailyIndex"`
	Rank       *int   `json:"rank"`
}

// PlayerSummary is the per-player view model. The aggregate fields are
// copied verbatim from the season standings; only the rank history is
// derived here.
type PlayerSummary struct {
	ID           roster.ID         `json:"id"`
	Name         string            `json:"name"`
	Color        string            `json:"color"`
	Rank         int               `json:"rank"`
	GamesPlayed  int               `json:"gamesPlayed"`
	TotalScore   float64           `json:"totalScore"`
	AverageScore float64           `json:"averageScore"`
	AverageRank  float64           `json:"averageRank"`
	WinRate      float64           `json:"winRate"`
	TopRate      float64           `json:"topRate"`
	LastRate     float64           `json:"lastRate"`
	BestScore    float64           `json:"bestScore"`
	WorstScore   float64           `json:"worstScore"`
	RankCounts   season.RankCounts `json:"rankCounts"`
	RankHistory  []RankPoint       `json:"rankHistory"`
}

// Build derives one summary per roster player present in the season
// standings, in the registry's canonical order. Roster players missing
// from the standings are excluded silently; so are game participants
// whose names do not resolve.
func Build(p *season.Payload, reg *roster.Registry) []PlayerSummary {
	s, ok := p.First()
	if !ok {
		return []PlayerSummary{}
	}

	type tracked struct {
		member   roster.Member
		standing season.Standing
	}
	byID := make(map[roster.ID]tracked, len(s.Players))
	for _, st := range s.Players {
		m, found := reg.Resolve(st.Name)
		if !found {
			continue
		}
		byID[m.ID] = tracked{member: m, standing: st}
	}

	// Pass 1: rank history, one entry per season game for every
	// tracked player. The day counter matches the timeline builder's
	// indices for the same payload.
	histories := make(map[roster.ID][]RankPoint, len(byID))
	days := season.NewDayCounter()
	for i, g := range s.History {
		nth := days.Next(g.Date)
		ranks := make(map[string]int, len(g.Players))
		for _, entry := range g.Players {
			if entry.HasRank {
				ranks[entry.Name] = entry.Rank
			}
		}
		for id, t := range byID {
			point := RankPoint{GameNumber: i + 1, Date: g.Date, DailyIndex: nth}
			if r, played := ranks[t.standing.Name]; played {
				rank := r
				point.Rank = &rank
			}
			histories[id] = append(histories[id], point)
		}
	}

	// Pass 2: aggregate fields straight from the standings.
	out := make([]PlayerSummary, 0, len(byID))
	for _, m := range reg.Members() {
		t, found := byID[m.ID]
		if !found {
			continue
		}
		history := histories[m.ID]
		if history == nil {
			history = []RankPoint{}
		}
		out = append(out, PlayerSummary{
			ID:           m.ID,
			Name:         t.standing.Name,
			Color:        m.Color,
			Rank:         t.standing.Rank,
			GamesPlayed:  t.standing.GamesPlayed,
			TotalScore:   t.standing.TotalScore,
			AverageScore: t.standing.AverageScore,
			AverageRank:  t.standing.AverageRank,
			WinRate:      t.standing.WinRate,
			TopRate:      t.standing.TopRate,
			LastRate:     t.standing.LastRate,
			BestScore:    t.standing.BestScore,
			WorstScore:   t.standing.WorstScore,
			RankCounts:   t.standing.RankCounts,
			RankHistory:  history,
		})
	}
	return out
}
