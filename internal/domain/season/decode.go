package season

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// UnknownName replaces a missing participant name so match records stay
// renderable.
const UnknownName = "不明"

// DateLayout is the calendar format used throughout the payload.
const DateLayout = "2006-01-02"

// Wire shapes mirror the JSON document. Optional fields are pointers so
// "absent" and "zero" stay distinguishable until normalization.
type payloadDoc struct {
	GeneratedAt string      `json:"generated_at"`
	Source      string      `json:"source"`
	Seasons     []seasonDoc `json:"seasons"`
}

type seasonDoc struct {
	Summary summaryDoc    `json:"summary"`
	Players []standingDoc `json:"players"`
	History []gameDoc     `json:"history"`
}

type summaryDoc struct {
	Season       string `json:"season"`
	Workbook     string `json:"workbook"`
	TotalGames   int    `json:"total_games"`
	TotalPlayers int    `json:"total_players"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type standingDoc struct {
	Rank         int            `json:"rank"`
	Name         string         `json:"name"`
	GamesPlayed  int            `json:"games_played"`
	TotalScore   float64        `json:"total_score"`
	AverageScore float64        `json:"average_score"`
	AverageRank  float64        `json:"average_rank"`
	WinRate      float64        `json:"win_rate"`
	TopRate      float64        `json:"top_rate"`
	LastRate     float64        `json:"last_rate"`
	BestScore    float64        `json:"best_score"`
	WorstScore   float64        `json:"worst_score"`
	RankCounts   rankCountsDoc  `json:"rank_counts"`
}

type rankCountsDoc struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
	Fourth int `json:"fourth"`
}

type gameDoc struct {
	GameIndex   int              `json:"game_index"`
	Date        string           `json:"date"`
	Players     []participantDoc `json:"players"`
	Winner      string           `json:"winner"`
	TotalPoints float64          `json:"total_points"`
}

type participantDoc struct {
	Name  *string  `json:"name"`
	Score *float64 `json:"score"`
	Rank  *int     `json:"rank"`
}

// Decode parses a payload document and normalizes it. This is the only
// place source-shape tolerance lives; downstream builders rely on the
// normalized contract.
func Decode(r io.Reader) (*Payload, error) {
	var doc payloadDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode season payload: %w", err)
	}

	p := &Payload{
		GeneratedAt: doc.GeneratedAt,
		Source:      doc.Source,
		Seasons:     make([]Season, 0, len(doc.Seasons)),
	}
	for _, s := range doc.Seasons {
		p.Seasons = append(p.Seasons, convertSeason(s))
	}
	Normalize(p)
	return p, nil
}

func convertSeason(doc seasonDoc) Season {
	s := Season{
		Summary: Summary(doc.Summary),
		Players: make([]Standing, 0, len(doc.Players)),
		History: make([]Game, 0, len(doc.History)),
	}
	for _, st := range doc.Players {
		s.Players = append(s.Players, Standing{
			Rank:         st.Rank,
			Name:         st.Name,
			GamesPlayed:  st.GamesPlayed,
			TotalScore:   st.TotalScore,
			AverageScore: st.AverageScore,
			AverageRank:  st.AverageRank,
			WinRate:      st.WinRate,
			TopRate:      st.TopRate,
			LastRate:     st.LastRate,
			BestScore:    st.BestScore,
			WorstScore:   st.WorstScore,
			RankCounts:   RankCounts(st.RankCounts),
		})
	}
	for _, g := range doc.History {
		game := Game{
			GameIndex:   g.GameIndex,
			Date:        g.Date,
			Players:     make([]Participant, 0, len(g.Players)),
			Winner:      g.Winner,
			TotalPoints: g.TotalPoints,
		}
		for _, pd := range g.Players {
			game.Players = append(game.Players, convertParticipant(pd))
		}
		s.History = append(s.History, game)
	}
	return s
}

func convertParticipant(doc participantDoc) Participant {
	p := Participant{Name: UnknownName}
	if doc.Name != nil && *doc.Name != "" {
		p.Name = *doc.Name
	}
	if doc.Score != nil {
		p.Score = *doc.Score
		p.HasScore = true
	}
	if doc.Rank != nil {
		p.Rank = *doc.Rank
		p.HasRank = true
	}
	return p
}

// Normalize establishes the single authoritative game ordering: each
// season's history is stably sorted by parsed date ascending, falling
// back to game_index when either date does not parse or the dates are
// equal. Every builder consumes this order, so the derived view models
// always agree on which game is "game N".
func Normalize(p *Payload) {
	if p == nil {
		return
	}
	for i := range p.Seasons {
		sortHistory(p.Seasons[i].History)
	}
}

func sortHistory(history []Game) {
	sort.SliceStable(history, func(i, j int) bool {
		ti, okI := parseDate(history[i].Date)
		tj, okJ := parseDate(history[j].Date)
		if okI && okJ && !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return history[i].GameIndex < history[j].GameIndex
	})
}

func parseDate(date string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
