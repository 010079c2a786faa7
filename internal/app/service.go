// Package app provides the application service that loads the season
// payload, derives the view models and implements the dependencies
// required by the HTTP API.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/kiyose/janstats/internal/adapters/source"
	"github.com/kiyose/janstats/internal/domain/matches"
	"github.com/kiyose/janstats/internal/domain/roster"
	"github.com/kiyose/janstats/internal/domain/season"
	"github.com/kiyose/janstats/internal/domain/summary"
	"github.com/kiyose/janstats/internal/domain/timeline"
	"github.com/kiyose/janstats/pkg/logger"
	"github.com/kiyose/janstats/pkg/metrics"
)

// SeasonInfo is the metadata view returned by GET /api/season.
type SeasonInfo struct {
	GeneratedAt string         `json:"generatedAt"`
	Source      string         `json:"source"`
	Summary     season.Summary `json:"summary"`
	HasSeason   bool           `json:"hasSeason"`
}

// Service loads the payload once, derives all three view models and
// serves them from memory. Derivation is repeated only when a newly
// fetched payload carries a different generated_at stamp.
type Service struct {
	mu sync.RWMutex

	src      source.Provider
	registry *roster.Registry
	reload   time.Duration
	logger   logger.Logger

	// Derived state, rebuilt per payload identity.
	generatedAt string
	loadedAt    time.Time
	info        SeasonInfo
	chart       timeline.Chart
	summaries   []summary.PlayerSummary
	records     []matches.Record

	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the payload provider.
func WithSource(src source.Provider) Option {
	return func(s *Service) {
		if src != nil {
			s.src = src
		}
	}
}

// WithRegistry replaces the default player roster.
func WithRegistry(reg *roster.Registry) Option {
	return func(s *Service) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithReloadInterval enables periodic payload reloading.
func WithReloadInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.reload = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with the default roster.
func New(opts ...Option) *Service {
	s := &Service{
		registry: roster.Default(),
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the payload, derives the view models and, when
// configured, starts the background reload loop.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.src == nil {
		s.mu.Unlock()
		return ErrNoSource
	}
	s.started = true
	s.mu.Unlock()

	if err := s.Reload(ctx); err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		return err
	}

	if s.reload > 0 {
		s.wg.Add(1)
		go s.reloadLoop(ctx)
	}
	return nil
}

// Stop terminates the reload loop.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info(context.Background(), "season service stopped")
}

func (s *Service) reloadLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.reload)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if err := s.Reload(ctx); err != nil {
				s.logger.Warn(ctx, "payload reload failed", logger.Error(err))
			}
		}
	}
}

// Reload fetches the payload and rebuilds the view models if the
// payload identity changed. Safe for concurrent use.
func (s *Service) Reload(ctx context.Context) error {
	payload, err := s.src.Fetch(ctx)
	if err != nil {
		metrics.RecordPayloadReloadError()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generatedAt != "" && payload.GeneratedAt == s.generatedAt {
		s.logger.Debug(ctx, "payload unchanged, keeping derived view models",
			logger.String("generatedAt", s.generatedAt))
		return nil
	}

	start := time.Now()
	chart := timeline.Build(payload, s.registry)
	summaries := summary.Build(payload, s.registry)
	records := matches.Build(payload, s.registry)
	buildMs := float64(time.Since(start).Microseconds()) / 1000

	s.generatedAt = payload.GeneratedAt
	s.loadedAt = time.Now()
	s.chart = chart
	s.summaries = summaries
	s.records = records
	s.info = SeasonInfo{
		GeneratedAt: payload.GeneratedAt,
		Source:      payload.Source,
	}
	if first, ok := payload.First(); ok {
		s.info.Summary = first.Summary
		s.info.HasSeason = true
	}

	metrics.RecordPayloadReload()
	metrics.RecordBuildDuration(buildMs)
	metrics.UpdatePayloadTimestamp(s.loadedAt.Unix())
	metrics.UpdateGamesTotal(len(chart.Timeline))
	metrics.UpdatePlayersTracked(len(chart.Players))
	metrics.UpdateMatchRecords(len(records))

	s.logger.Info(ctx, "season payload loaded",
		logger.String("generatedAt", payload.GeneratedAt),
		logger.Int("games", len(chart.Timeline)),
		logger.Int("players", len(chart.Players)),
		logger.Int("matchRecords", len(records)),
		logger.Float64("buildMs", buildMs),
	)
	return nil
}

// Chart returns the cumulative score timeline view model.
func (s *Service) Chart(_ context.Context) timeline.Chart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart
}

// Summaries returns the per-player summary view models.
func (s *Service) Summaries(_ context.Context) []summary.PlayerSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summaries
}

// Matches returns the flattened match history view models.
func (s *Service) Matches(_ context.Context) []matches.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Season returns payload metadata for the loaded season.
func (s *Service) Season(_ context.Context) SeasonInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":      s.started,
		"generatedAt":  s.generatedAt,
		"loadedAt":     s.loadedAt,
		"games":        len(s.chart.Timeline),
		"players":      len(s.chart.Players),
		"matchRecords": len(s.records),
	}
}
