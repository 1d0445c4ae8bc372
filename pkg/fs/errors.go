// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrCommandNotFound is returned when a command is not on PATH.
	ErrCommandNotFound = errors.New("command not found in PATH")

	// ErrTempDir is returned when a temporary directory cannot be created.
	ErrTempDir = errors.New("failed to create temporary directory")
)
