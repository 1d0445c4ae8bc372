// Package autopkg runs the external devflow-autopkg tool.
package autopkg

import (
	"io"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=autopkg.go -destination=mocks/autopkg.gen.go -package=mocks

const (
	// DefaultTool is the executable invoked when no other tool is configured.
	DefaultTool = "devflow-autopkg"
	// ModeSnapshot is the build mode passed to the tool.
	ModeSnapshot = "snapshot"
)

// Invoker interface runs the snapshot tool.
type Invoker interface {
	// Snapshot runs `<tool> -b <build-dir> [extra-args...] snapshot` and waits for it.
	Snapshot(params SnapshotParams) error
}

// SnapshotParams contains parameters for Snapshot.
type SnapshotParams struct {
	Tool      string
	BuildDir  string
	RepoPath  string
	ExtraArgs []string
}

// Args returns the arguments passed to the tool.
func (p SnapshotParams) Args() []string {
	args := make([]string, 0, len(p.ExtraArgs)+3)
	args = append(args, "-b", p.BuildDir)
	args = append(args, p.ExtraArgs...)
	return append(args, ModeSnapshot)
}

type realInvoker struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewInvoker creates an Invoker that inherits the process standard streams.
func NewInvoker() Invoker {
	return &realInvoker{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewInvokerWithStreams creates an Invoker wired to the given streams.
func NewInvokerWithStreams(stdin io.Reader, stdout, stderr io.Writer) Invoker {
	return &realInvoker{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}
