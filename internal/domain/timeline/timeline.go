// Package timeline derives the cumulative score series consumed by the
// dashboard chart.
package timeline

import (
	"encoding/json"
	"fmt"

	"github.com/kiyose/janstats/internal/domain/roster"
	"github.com/kiyose/janstats/internal/domain/season"
)

// Point is one chart row: one game, with the cumulative score of every
// tracked player after that game. Players absent from the game carry
// their previous value forward so chart lines never break.
type Point struct {
	Label      string
	Date       string
	DailyIndex int
	GameNumber int
	Scores     map[roster.ID]float64
}

// MarshalJSON flattens the point into the shape the chart consumes:
// the per-player cumulative values sit directly on the object, keyed by
// player ID, next to the label fields.
func (p Point) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(p.Scores)+4)
	flat["hand"] = p.Label
	flat["date"] = p.Date
	flat["dailyIndex"] = p.DailyIndex
	flat["gameNumber"] = p.GameNumber
	for id, v := range p.Scores {
		flat[string(id)] = v
	}
	b, err := json.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("marshal timeline point: %w", err)
	}
	return b, nil
}

// Chart bundles the player legend with the cumulative series.
type Chart struct {
	Players  []roster.Member `json:"players"`
	Timeline []Point         `json:"timeline"`
}

// Build derives the cumulative timeline from the first season of the
// payload. An empty payload yields an empty chart, never an error.
//
// Running totals keep full precision across additions; rounding to one
// decimal happens only when a value is written into a point, so
// rounding error cannot accumulate across games.
func Build(p *season.Payload, reg *roster.Registry) Chart {
	empty := Chart{Players: []roster.Member{}, Timeline: []Point{}}
	s, ok := p.First()
	if !ok {
		return empty
	}

	// Legend follows the registry's canonical order, filtered to
	// players that actually appear in the season standings.
	present := make(map[roster.ID]bool, len(s.Players))
	for _, st := range s.Players {
		if m, found := reg.Resolve(st.Name); found {
			present[m.ID] = true
		}
	}
	players := make([]roster.Member, 0, len(present))
	for _, m := range reg.Members() {
		if present[m.ID] {
			players = append(players, m)
		}
	}

	cumulative := make(map[roster.ID]float64, reg.Size())
	for _, m := range reg.Members() {
		cumulative[m.ID] = 0
	}

	days := season.NewDayCounter()
	points := make([]Point, 0, len(s.History))
	for i, g := range s.History {
		nth := days.Next(g.Date)
		point := Point{
			Label:      fmt.Sprintf("%s-%d戦目", season.MonthDay(g.Date), nth),
			Date:       g.Date,
			DailyIndex: nth,
			GameNumber: i + 1,
			Scores:     make(map[roster.ID]float64, reg.Size()),
		}

		// Carry-forward snapshot first, then overwrite for the
		// players that took part in this game.
		for id, total := range cumulative {
			point.Scores[id] = season.RoundTenth(total)
		}
		for _, entry := range g.Players {
			m, found := reg.Resolve(entry.Name)
			if !found {
				continue
			}
			cumulative[m.ID] += entry.Score
			point.Scores[m.ID] = season.RoundTenth(cumulative[m.ID])
		}

		points = append(points, point)
	}

	return Chart{Players: players, Timeline: points}
}
