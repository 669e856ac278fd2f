package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid token settings
	// (for example, missing sign key or non-positive token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates invalid rate limiter settings
	// (for example, non-positive request cap or window length).
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
