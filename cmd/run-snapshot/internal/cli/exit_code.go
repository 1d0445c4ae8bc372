package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/grnet/devflow-snapshot/pkg/autopkg"
	"github.com/grnet/devflow-snapshot/pkg/launcher"
)

// Process exit codes. The snapshot tool's own status is passed through
// unchanged, so these only cover failures before the tool runs.
const (
	ExitSuccess             = 0
	ExitGeneralError        = 1
	ExitEnvironmentError    = 2
	ExitBranchCreationError = 3
)

// ExitCode maps an error returned by Run to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *autopkg.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	switch {
	case errors.Is(err, launcher.ErrEnvironment):
		return ExitEnvironmentError
	case errors.Is(err, launcher.ErrBranchCreation):
		return ExitBranchCreationError
	default:
		return ExitGeneralError
	}
}

// ReportError prints err to w unless the snapshot tool ran and already
// reported its own failure.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var exitErr *autopkg.ExitError
	if errors.As(err, &exitErr) && exitErr.Code != autopkg.ExitCodeCommandNotFound {
		return
	}

	fmt.Fprintf(w, "run-snapshot: %v\n", err)
}
