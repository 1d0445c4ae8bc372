package launcher

import (
	"fmt"

	"github.com/grnet/devflow-snapshot/pkg/dependencies"
	"github.com/grnet/devflow-snapshot/pkg/logger"
)

// Launcher runs snapshot builds of a repository.
type Launcher interface {
	// Run ensures the tracking branch exists, resolves the build directory
	// and runs the snapshot tool once.
	Run(params RunParams) error
	// SetLogger sets the logger for this Launcher instance.
	SetLogger(logger logger.Logger)
}

// NewLauncherParams contains parameters for creating a new Launcher instance.
type NewLauncherParams struct {
	Dependencies *dependencies.Dependencies
}

type realLauncher struct {
	deps *dependencies.Dependencies
}

// NewLauncher creates a new Launcher instance.
func NewLauncher(params NewLauncherParams) (Launcher, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	return &realLauncher{
		deps: deps,
	}, nil
}

// SetLogger sets the logger for this Launcher instance.
func (l *realLauncher) SetLogger(logger logger.Logger) {
	l.deps.Logger = logger
}

func (l *realLauncher) logf(format string, args ...interface{}) {
	l.deps.Logger.Logf(format, args...)
}
