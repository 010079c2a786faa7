// Package source loads the season payload from its delivery channel:
// a statically bundled file or a known HTTP location. Decoding and
// normalization happen here, once, at the boundary.
package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/kiyose/janstats/internal/domain/season"
)

// Provider fetches and decodes one season payload.
type Provider interface {
	Fetch(ctx context.Context) (*season.Payload, error)
}

// FileSource reads the payload from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed provider.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads and decodes the payload file.
func (s *FileSource) Fetch(_ context.Context) (*season.Payload, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open payload %s: %w", s.path, err)
	}
	defer f.Close()
	return season.Decode(f)
}

// HTTPSource fetches the payload from an HTTP endpoint.
type HTTPSource struct {
	client    *http.Client
	url       string
	userAgent string
}

// HTTPOption applies a configuration option to the HTTPSource.
type HTTPOption func(*HTTPSource)

// WithTimeout bounds one fetch.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each fetch.
func WithUserAgent(ua string) HTTPOption {
	return func(s *HTTPSource) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// NewHTTPSource creates an HTTP-backed provider.
func NewHTTPSource(url string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		client:    &http.Client{Timeout: 20 * time.Second},
		url:       url,
		userAgent: "janstats/1.0",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch downloads and decodes the payload.
func (s *HTTPSource) Fetch(ctx context.Context) (*season.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build payload request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch payload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrUnexpectedStatus, s.url, resp.StatusCode)
	}
	return season.Decode(resp.Body)
}
