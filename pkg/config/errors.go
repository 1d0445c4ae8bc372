// Package config provides configuration management for run-snapshot.
package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrRemoteEmpty       = errors.New("remote cannot be empty")
	ErrBranchEmpty       = errors.New("branch cannot be empty")
	ErrToolEmpty         = errors.New("tool cannot be empty")
	ErrTempPrefixEmpty   = errors.New("temp_prefix cannot be empty")
	ErrInvalidRefName    = errors.New("invalid ref name")
	ErrInvalidTempPrefix = errors.New("temp_prefix cannot contain a path separator")
)
