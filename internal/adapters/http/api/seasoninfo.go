// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/kiyose/janstats/internal/app"
)

// SeasonDependencies defines the interface for season metadata reads.
type SeasonDependencies interface {
	Season(ctx context.Context) app.SeasonInfo
}

// SeasonHandler handles season metadata requests.
type SeasonHandler struct {
	deps SeasonDependencies
}

// NewSeasonHandler creates a new season handler.
func NewSeasonHandler(deps SeasonDependencies) *SeasonHandler {
	return &SeasonHandler{deps: deps}
}

// HandleGetSeason handles GET /api/season requests.
func (h *SeasonHandler) HandleGetSeason(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Season(r.Context()))
}
