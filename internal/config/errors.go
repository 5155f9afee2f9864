package config

import "errors"

// Validation errors returned by Config.Validate. Use errors.Is to test for them.
var (
	ErrInvalidPort = errors.New("invalid port: must be between 1 and 65535")

	ErrInvalidUploadLimit = errors.New("invalid max upload bytes: must be positive")

	// ErrInvalidTimeout covers the read, write, idle and shutdown timeouts.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	ErrInvalidTopIssues = errors.New("invalid top issues: must be non-negative")

	ErrInvalidLogLevel = errors.New("invalid log level: want ERROR, WARN, INFO or DEBUG")
)
