// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env vars on top.
// - Keys use snake_case koanf tags shared by file and env forms.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// PayloadPath points at a local summary.json. Used when set;
	// otherwise PayloadURL is fetched.
	PayloadPath string `koanf:"payload_path"`

	// PayloadURL is the HTTP location of summary.json.
	PayloadURL string `koanf:"payload_url"`

	// FetchTimeoutMS bounds one payload fetch over HTTP.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// ReloadIntervalMS enables periodic payload reloading when > 0.
	ReloadIntervalMS int `koanf:"reload_interval_ms"`

	// MaxMatchLimit caps GET /api/matches?limit.
	MaxMatchLimit int `koanf:"max_match_limit"`
}

// New creates a Config with defaults. Context is accepted first per the
// project-wide convention; it is reserved for future loading hooks.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		PayloadPath:      "dist/data/summary.json",
		PayloadURL:       "",
		FetchTimeoutMS:   20_000,
		ReloadIntervalMS: 0,
		MaxMatchLimit:    500,
	}
}
