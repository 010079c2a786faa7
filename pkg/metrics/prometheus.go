// Package metrics provides Prometheus metrics for the janstats service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Payload lifecycle
	payloadReloads      prometheus.Counter
	payloadReloadErrors prometheus.Counter
	payloadLastUnix     prometheus.Gauge
	buildDuration       prometheus.Histogram

	// Season size
	gamesTotal     prometheus.Gauge
	playersTracked prometheus.Gauge
	matchRecords   prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "janstats",
		subsystem:        "season",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.payloadReloads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "payload_reloads_total",
		Help:      "Total number of successful payload loads",
	})
	m.payloadReloadErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "payload_reload_errors_total",
		Help:      "Total number of failed payload loads",
	})
	m.payloadLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "payload_last_load_unix",
		Help:      "Unix timestamp of the last successful payload load",
	})
	m.buildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_model_build_milliseconds",
		Help:      "Histogram of view model derivation time in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.gamesTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_total",
		Help:      "Number of games in the loaded season",
	})
	m.playersTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_tracked",
		Help:      "Number of roster players present in the loaded season",
	})
	m.matchRecords = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_records",
		Help:      "Number of flattened match records in the loaded season",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
	m.httpErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_errors_total",
		Help:      "Total HTTP error responses by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})
}

// Package-level helpers operating on the global manager.

// RecordPayloadReload counts a successful payload load.
func RecordPayloadReload() {
	if globalManager.enabled {
		globalManager.payloadReloads.Inc()
	}
}

// RecordPayloadReloadError counts a failed payload load.
func RecordPayloadReloadError() {
	if globalManager.enabled {
		globalManager.payloadReloadErrors.Inc()
	}
}

// UpdatePayloadTimestamp records when the payload was last loaded.
func UpdatePayloadTimestamp(unix int64) {
	if globalManager.enabled {
		globalManager.payloadLastUnix.Set(float64(unix))
	}
}

// RecordBuildDuration observes one view model derivation.
func RecordBuildDuration(ms float64) {
	if globalManager.enabled {
		globalManager.buildDuration.Observe(ms)
	}
}

// UpdateGamesTotal sets the loaded season's game count.
func UpdateGamesTotal(n int) {
	if globalManager.enabled {
		globalManager.gamesTotal.Set(float64(n))
	}
}

// UpdatePlayersTracked sets the number of tracked players.
func UpdatePlayersTracked(n int) {
	if globalManager.enabled {
		globalManager.playersTracked.Set(float64(n))
	}
}

// UpdateMatchRecords sets the flattened match record count.
func UpdateMatchRecords(n int) {
	if globalManager.enabled {
		globalManager.matchRecords.Set(float64(n))
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}

// RecordErrorByEndpoint counts one HTTP error response.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// GetRegistry exposes the custom registry for the /metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
