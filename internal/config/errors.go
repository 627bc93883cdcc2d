package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid token or password hashing
	// settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClientConfigs indicates a missing server URL or a
	// non-positive client timeout.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrParsingFlags wraps command-line parsing failures.
	ErrParsingFlags = errors.New("error parsing flags")
)
