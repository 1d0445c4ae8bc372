// Package cli wires flags, configuration and the launcher for the run-snapshot command.
package cli

import "errors"

// Error definitions for cli package.
var (
	// ErrFailedToLoadConfig wraps configuration loading failures.
	ErrFailedToLoadConfig = errors.New("failed to load configuration")

	// ErrInvalidOptions is returned when flags produce an unusable configuration.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrTooManyArgs is returned when more than one work directory is given.
	ErrTooManyArgs = errors.New("at most one work directory may be given")
)
