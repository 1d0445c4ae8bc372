// Package launcher prepares the debian branch and build directory and runs
// the snapshot tool.
package launcher

import "errors"

// Error definitions for launcher package.
var (
	// ErrEnvironment is returned when git is missing or the repository path
	// is not a usable git checkout.
	ErrEnvironment = errors.New("environment error")

	// ErrBranchCreation is returned when the local tracking branch cannot be created.
	ErrBranchCreation = errors.New("branch creation error")

	// ErrWorkDir is returned when no build directory could be created.
	ErrWorkDir = errors.New("work directory error")
)
