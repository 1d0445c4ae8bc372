package launcher

import (
	"github.com/grnet/devflow-snapshot/pkg/autopkg"
	"github.com/grnet/devflow-snapshot/pkg/config"
)

// RunParams contains parameters for Run.
// Zero values are replaced with the defaults from the config package.
type RunParams struct {
	// RepoPath is the repository root, "." when empty.
	RepoPath string
	// Remote holding the tracked branch.
	Remote string
	// Branch is the local branch to ensure, tracking Remote/Branch.
	Branch string
	// WorkDir is passed to the tool unchanged; empty means create one.
	WorkDir string
	// TempRoot is where WorkDir is created when empty; "" is the platform temp dir.
	TempRoot string
	// TempPrefix names created directories <prefix>-<random>.
	TempPrefix string
	// Tool is the snapshot executable.
	Tool string
	// ExtraArgs are inserted before the snapshot mode.
	ExtraArgs []string
}

// ParamsFromConfig fills RunParams from a loaded configuration.
func ParamsFromConfig(cfg config.Config) RunParams {
	return RunParams{
		Remote:     cfg.Remote,
		Branch:     cfg.Branch,
		TempRoot:   cfg.TempRoot,
		TempPrefix: cfg.TempPrefix,
		Tool:       cfg.Tool,
	}
}

func (p RunParams) withDefaults() RunParams {
	if p.RepoPath == "" {
		p.RepoPath = "."
	}
	if p.Remote == "" {
		p.Remote = config.DefaultRemote
	}
	if p.Branch == "" {
		p.Branch = config.DefaultBranch
	}
	if p.TempPrefix == "" {
		p.TempPrefix = config.DefaultTempPrefix
	}
	if p.Tool == "" {
		p.Tool = autopkg.DefaultTool
	}
	return p
}

func (p RunParams) tempPattern() string {
	return config.Config{TempPrefix: p.TempPrefix}.TempPattern()
}
