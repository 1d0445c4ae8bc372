package launcher

import (
	"strings"

	"github.com/grnet/devflow-snapshot/pkg/autopkg"
)

// Run ensures the tracking branch exists, resolves the build directory and
// runs the snapshot tool once. Errors from the tool are returned untouched,
// so callers can read the exit status from *autopkg.ExitError.
func (l *realLauncher) Run(params RunParams) error {
	params = params.withDefaults()

	if err := l.validateEnvironment(params.RepoPath); err != nil {
		return err
	}

	if err := l.ensureBranch(params); err != nil {
		return err
	}

	workDir, err := l.resolveWorkDir(params)
	if err != nil {
		return err
	}

	snapshot := autopkg.SnapshotParams{
		Tool:      params.Tool,
		BuildDir:  workDir,
		RepoPath:  params.RepoPath,
		ExtraArgs: params.ExtraArgs,
	}
	l.logf("Running '%s %s'", snapshot.Tool, strings.Join(snapshot.Args(), " "))

	return l.deps.Invoker.Snapshot(snapshot)
}
