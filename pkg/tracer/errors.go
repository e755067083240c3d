package tracer

import "errors"

var (
	// ErrInvalidConfig is returned by New for out-of-range configuration values
	ErrInvalidConfig = errors.New("tracer: invalid configuration")
	// ErrUnknownElement is returned by New for elements outside the known kinds
	ErrUnknownElement = errors.New("tracer: unknown element")
)
