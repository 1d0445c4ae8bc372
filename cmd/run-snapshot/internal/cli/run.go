package cli

import (
	"github.com/grnet/devflow-snapshot/pkg/dependencies"
	"github.com/grnet/devflow-snapshot/pkg/launcher"
	"github.com/grnet/devflow-snapshot/pkg/logger"
)

// NewLogger returns the logger selected by --quiet and --verbose.
func NewLogger(opts Options) logger.Logger {
	switch {
	case opts.Quiet:
		return logger.NewNoopLogger()
	case opts.Verbose:
		return logger.NewVerboseLogger()
	default:
		return logger.NewDefaultLogger()
	}
}

// Run loads the configuration, applies opts and runs one snapshot build.
func Run(deps *dependencies.Dependencies, opts Options, workDir string, extra []string) error {
	cfg, err := LoadConfig(deps.FS, opts.ConfigPath)
	if err != nil {
		return err
	}

	cfg, err = ApplyOptions(cfg, opts)
	if err != nil {
		return err
	}

	l, err := launcher.NewLauncher(launcher.NewLauncherParams{
		Dependencies: deps.WithLogger(NewLogger(opts)),
	})
	if err != nil {
		return err
	}

	return l.Run(BuildRunParams(cfg, opts, workDir, extra))
}
