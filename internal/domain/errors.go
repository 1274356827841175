package domain

import "errors"

// Sentinel errors shared across layers. The delivery layer maps these to HTTP
// status codes with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidWeekday = errors.New("invalid weekday symbol")
	ErrInvalidTime    = errors.New("invalid clock time")
)
