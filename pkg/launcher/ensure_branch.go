package launcher

import (
	"fmt"

	"github.com/grnet/devflow-snapshot/pkg/git"
)

// ensureBranch creates params.Branch tracking params.Remote/params.Branch
// unless a local branch with exactly that name already exists.
func (l *realLauncher) ensureBranch(params RunParams) error {
	branches, err := l.deps.Git.ListBranches(params.RepoPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEnvironment, err)
	}

	if branches.HasLocal(params.Branch) {
		l.logf("Using existing branch '%s'", params.Branch)
		return nil
	}

	create := git.CreateTrackingBranchParams{
		RepoPath: params.RepoPath,
		Branch:   params.Branch,
		Remote:   params.Remote,
	}
	if !branches.HasRemote(params.Remote, params.Branch) {
		return fmt.Errorf("%w: %w: %s", ErrBranchCreation, git.ErrRemoteBranchNotFound, create.Upstream())
	}

	if err := l.deps.Git.CreateTrackingBranch(create); err != nil {
		return fmt.Errorf("%w: %w", ErrBranchCreation, err)
	}

	l.logf("Created branch '%s' to track '%s'", params.Branch, create.Upstream())
	return nil
}
