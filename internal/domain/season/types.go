// Package season models the precomputed league payload and the boundary
// normalization applied to it before any view model is derived.
package season

// Payload is the root document emitted by the upstream aggregation
// pipeline. Only the first season is consumed by the builders.
type Payload struct {
	GeneratedAt string
	Source      string
	Seasons     []Season
}

// Season is one league period: final standings plus the chronological
// game history.
type Season struct {
	Summary Summary
	Players []Standing
	History []Game
}

// Summary carries season-level metadata.
type Summary struct {
	Season       string
	Workbook     string
	TotalGames   int
	TotalPlayers int
	StartDate    string
	EndDate      string
}

// Standing is one player's already-aggregated season statistics. The
// builders copy these fields verbatim and never recompute them.
type Standing struct {
	Rank         int
	Name         string
	GamesPlayed  int
	TotalScore   float64
	AverageScore float64
	AverageRank  float64
	WinRate      float64
	TopRate      float64
	LastRate     float64
	BestScore    float64
	WorstScore   float64
	RankCounts   RankCounts
}

// RankCounts tallies 1st..4th place finishes. Invariant:
// First+Second+Third+Fourth == GamesPlayed.
type RankCounts struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
	Fourth int `json:"fourth"`
}

// Game is one completed match.
type Game struct {
	GameIndex   int
	Date        string
	Players     []Participant
	Winner      string
	TotalPoints float64
}

// Participant is one player's result within a game. HasScore and
// HasRank record whether the field was present in the source document;
// absent values are defaulted at decode time (score 0, rank unset).
type Participant struct {
	Name     string
	Score    float64
	HasScore bool
	Rank     int
	HasRank  bool
}

// First returns the season the builders operate on. The second return
// is false for an empty payload, which callers map to empty output
// collections rather than an error.
func (p *Payload) First() (Season, bool) {
	if p == nil || len(p.Seasons) == 0 {
		return Season{}, false
	}
	return p.Seasons[0], true
}
