package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group holds a malformed value.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown group merge direction).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server limits
	// (for example, a negative body size).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidIOConfigs indicates an unknown document format.
	ErrInvalidIOConfigs = errors.New("invalid io configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
