package cli

import (
	"fmt"

	"github.com/grnet/devflow-snapshot/pkg/config"
	"github.com/grnet/devflow-snapshot/pkg/launcher"
)

// Options holds the command-line flags.
// Empty strings mean "not given" and leave the configured value in place.
type Options struct {
	ConfigPath string
	RepoPath   string
	Remote     string
	Branch     string
	Tool       string
	Quiet      bool
	Verbose    bool
}

// SplitArgs separates the optional work directory from the arguments after
// "--", which are forwarded to the snapshot tool. dash is the index reported
// by cobra's ArgsLenAtDash, -1 when no "--" was given.
func SplitArgs(args []string, dash int) (workDir string, extra []string, err error) {
	positional := args
	if dash >= 0 {
		positional = args[:dash]
		extra = append([]string(nil), args[dash:]...)
	}

	if len(positional) > 1 {
		return "", nil, fmt.Errorf("%w: got %d", ErrTooManyArgs, len(positional))
	}
	if len(positional) == 1 {
		workDir = positional[0]
	}

	return workDir, extra, nil
}

// ApplyOptions overrides cfg with the values given on the command line and
// validates the result.
func ApplyOptions(cfg config.Config, opts Options) (config.Config, error) {
	if opts.Remote != "" {
		cfg.Remote = opts.Remote
	}
	if opts.Branch != "" {
		cfg.Branch = opts.Branch
	}
	if opts.Tool != "" {
		cfg.Tool = opts.Tool
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return cfg, nil
}

// BuildRunParams assembles the launcher parameters for one invocation.
func BuildRunParams(cfg config.Config, opts Options, workDir string, extra []string) launcher.RunParams {
	params := launcher.ParamsFromConfig(cfg)
	params.RepoPath = opts.RepoPath
	params.WorkDir = workDir
	params.ExtraArgs = extra
	return params
}
