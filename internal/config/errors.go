package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr       = errors.New("addr must not be empty")
	ErrNoPayloadSource = errors.New("either payload_path or payload_url must be set")
)
