package configuration

import "errors"

var (
	// ErrInvalidLogLevel occurs when the configured log level is unknown.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidAlgorithm occurs when the configured default checksum
	// algorithm is not supported.
	ErrInvalidAlgorithm = errors.New("invalid default checksum algorithm")
)
