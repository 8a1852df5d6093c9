package config

import "errors"

var (
	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("config: nil pointer provided")
	// ErrParsingConfig wraps failures from parsing environment variables.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")
)
