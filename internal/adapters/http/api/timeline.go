// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/kiyose/janstats/internal/domain/timeline"
)

// TimelineDependencies defines the interface for timeline reads.
type TimelineDependencies interface {
	Chart(ctx context.Context) timeline.Chart
}

// TimelineHandler handles cumulative score timeline requests.
type TimelineHandler struct {
	deps TimelineDependencies
}

// NewTimelineHandler creates a new timeline handler.
func NewTimelineHandler(deps TimelineDependencies) *TimelineHandler {
	return &TimelineHandler{deps: deps}
}

// HandleGetTimeline handles GET /api/timeline requests.
func (h *TimelineHandler) HandleGetTimeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Chart(r.Context()))
}
