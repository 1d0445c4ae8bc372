package autopkg

import (
	"errors"
	"os/exec"
	"syscall"
)

// exitCodeSignalBase is added to the signal number when the tool is killed,
// matching what a shell reports.
const exitCodeSignalBase = 128

// Snapshot runs the snapshot tool synchronously in params.RepoPath.
// The tool's exit status is reported unchanged through *ExitError.
func (i *realInvoker) Snapshot(params SnapshotParams) error {
	tool := params.Tool
	if tool == "" {
		tool = DefaultTool
	}

	cmd := exec.Command(tool, params.Args()...)
	cmd.Dir = params.RepoPath
	cmd.Stdin = i.stdin
	cmd.Stdout = i.stdout
	cmd.Stderr = i.stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// Never started: missing binary or unusable working directory.
		return &ExitError{Tool: tool, Code: ExitCodeCommandNotFound, Err: err}
	}

	if code := exitErr.ExitCode(); code >= 0 {
		return &ExitError{Tool: tool, Code: code}
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return &ExitError{Tool: tool, Code: exitCodeSignalBase + int(status.Signal()), Err: err}
	}
	return &ExitError{Tool: tool, Code: 1, Err: err}
}
