package source

import "errors"

// Sentinel kinds for payload source errors.
var (
	ErrUnexpectedStatus = errors.New("unexpected payload response status")
)
