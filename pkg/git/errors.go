// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrNotRepository        = errors.New("not a git repository")
	ErrGitCommand           = errors.New("git command failed")
	ErrBranchExists         = errors.New("branch already exists")
	ErrRemoteBranchNotFound = errors.New("remote-tracking branch not found")
)
