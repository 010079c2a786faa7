// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kiyose/janstats/internal/domain/matches"
)

// MatchesDependencies defines the interface for match history reads.
type MatchesDependencies interface {
	Matches(ctx context.Context) []matches.Record
}

// MatchesHandler handles match history requests.
type MatchesHandler struct {
	deps     MatchesDependencies
	maxLimit int
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps MatchesDependencies, maxLimit int) *MatchesHandler {
	return &MatchesHandler{deps: deps, maxLimit: maxLimit}
}

// HandleGetMatches handles GET /api/matches requests.
// Optional query parameters: limit=N caps the number of records
// returned (most recent first), player=<name> filters by nameplate.
func (h *MatchesHandler) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	records := h.deps.Matches(r.Context())

	if player := r.URL.Query().Get("player"); player != "" {
		filtered := make([]matches.Record, 0, len(records))
		for _, rec := range records {
			if rec.Nameplate == player {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", ErrLimitExceeded)
			return
		}
		if n < len(records) {
			records = records[:n]
		}
	}

	writeJSON(w, http.StatusOK, records)
}
