package autopkg

import (
	"errors"
	"fmt"
)

// ExitCodeCommandNotFound is the shell's exit status for a missing command.
const ExitCodeCommandNotFound = 127

// ErrToolFailed is wrapped by every ExitError.
var ErrToolFailed = errors.New("snapshot tool failed")

// ExitError reports a snapshot tool run that did not succeed.
// Code is the tool's own exit status, or ExitCodeCommandNotFound when the
// tool could not be started at all.
type ExitError struct {
	Tool string
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s exited with code %d: %v", e.Tool, e.Code, e.Err)
	}
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.Code)
}

// ExitCode returns the exit status to propagate.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Unwrap exposes ErrToolFailed and the underlying cause to errors.Is.
func (e *ExitError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrToolFailed}
	}
	return []error{ErrToolFailed, e.Err}
}
