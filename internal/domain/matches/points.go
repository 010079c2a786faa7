package matches

import (
	"math"

	"github.com/kiyose/janstats/internal/domain/season"
)

// Scoring convention for the league: games start from a 30000-point
// table score, 1000 raw points convert to 1.0 displayed points, and
// each final rank carries a fixed point bonus.
const (
	baseScore = 30000
	pointUnit = 1000

	// A supplied score at or above this magnitude is treated as an
	// already-raw table score rather than a converted point value.
	// The heuristic is a convention of the scoring system; do not
	// tighten it without new requirements.
	rawScoreThreshold = 1000
)

var rankBonus = map[int]float64{1: 50, 2: 10, 3: -10, 4: -30}

// normalizeRank maps a participant's rank onto 1..4, defaulting to 4
// when absent or out of range. A deliberate fallback, not an error.
func normalizeRank(p season.Participant) int {
	if p.HasRank && p.Rank >= 1 && p.Rank <= 4 {
		return p.Rank
	}
	return 4
}

// deriveRawScore reconstructs the integer table score from a supplied
// score. Point-scale values are inverted through the scoring
// convention; raw-scale values pass through rounded. Returns false when
// no score was supplied.
func deriveRawScore(p season.Participant, rank int) (int, bool) {
	if !p.HasScore {
		return 0, false
	}
	if math.Abs(p.Score) >= rawScoreThreshold {
		return int(math.Round(p.Score)), true
	}
	raw := (p.Score-rankBonus[rank])*pointUnit + baseScore
	return int(math.Round(raw)), true
}

// derivePoints computes the one-decimal display points from a raw
// score. This is the algebraic inverse of deriveRawScore, so directly
// supplied and inferred points round through the same path. Without a
// raw score it falls back to the supplied score, or 0.
func derivePoints(raw int, haveRaw bool, rank int, p season.Participant) float64 {
	if !haveRaw {
		if p.HasScore {
			return season.RoundTenth(p.Score)
		}
		return 0
	}
	points := float64(raw-baseScore)/pointUnit + rankBonus[rank]
	return season.RoundTenth(points)
}
