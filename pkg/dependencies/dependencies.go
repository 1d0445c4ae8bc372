// Package dependencies provides a centralized dependency container for run-snapshot.
package dependencies

import (
	"errors"

	"github.com/grnet/devflow-snapshot/pkg/autopkg"
	"github.com/grnet/devflow-snapshot/pkg/fs"
	"github.com/grnet/devflow-snapshot/pkg/git"
	"github.com/grnet/devflow-snapshot/pkg/logger"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing      = errors.New("fs dependency is required but not set")
	ErrGitMissing     = errors.New("git dependency is required but not set")
	ErrInvokerMissing = errors.New("invoker dependency is required but not set")
	ErrLoggerMissing  = errors.New("logger dependency is required but not set")
)

// Dependencies holds the collaborators of the launcher.
type Dependencies struct {
	FS      fs.FS
	Git     git.Git
	Invoker autopkg.Invoker
	Logger  logger.Logger
}

// New creates a new Dependencies instance backed by the real file system,
// git and snapshot tool, with a noop logger.
func New() *Dependencies {
	return &Dependencies{
		FS:      fs.NewFS(),
		Git:     git.NewGit(),
		Invoker: autopkg.NewInvoker(),
		Logger:  logger.NewNoopLogger(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithInvoker sets the snapshot tool invoker and returns the instance for chaining.
func (d *Dependencies) WithInvoker(invoker autopkg.Invoker) *Dependencies {
	d.Invoker = invoker
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Invoker, ErrInvokerMissing},
		{d.Logger, ErrLoggerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
