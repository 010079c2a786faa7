package app

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoSource = errors.New("no payload source configured")
)
