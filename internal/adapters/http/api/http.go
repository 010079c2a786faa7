// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kiyose/janstats/internal/app"
	"github.com/kiyose/janstats/internal/domain/matches"
	"github.com/kiyose/janstats/internal/domain/summary"
	"github.com/kiyose/janstats/internal/domain/timeline"
)

// Dependencies required by HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the application service.
type Dependencies interface {
	Chart(ctx context.Context) timeline.Chart
	Summaries(ctx context.Context) []summary.PlayerSummary
	Matches(ctx context.Context) []matches.Record
	Season(ctx context.Context) app.SeasonInfo
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	timelineHandler *TimelineHandler
	playersHandler  *PlayersHandler
	matchesHandler  *MatchesHandler
	seasonHandler   *SeasonHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxMatchLimit int) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		timelineHandler: NewTimelineHandler(deps),
		playersHandler:  NewPlayersHandler(deps),
		matchesHandler:  NewMatchesHandler(deps, maxMatchLimit),
		seasonHandler:   NewSeasonHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/timeline", MetricsMiddleware(s.timelineHandler.HandleGetTimeline, "timeline"))
	mux.HandleFunc("/api/players", MetricsMiddleware(s.playersHandler.HandleGetPlayers, "players"))
	mux.HandleFunc("/api/matches", MetricsMiddleware(s.matchesHandler.HandleGetMatches, "matches"))
	mux.HandleFunc("/api/season", MetricsMiddleware(s.seasonHandler.HandleGetSeason, "season"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
