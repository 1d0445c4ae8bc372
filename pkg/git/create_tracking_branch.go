package git

import (
	"fmt"
	"os/exec"
)

// CreateTrackingBranch creates a local branch tracking a remote-tracking branch.
// A failure is reported as ErrBranchExists only when refs/heads/<branch> is
// present afterwards; git's messages are localised and not inspected.
func (g *realGit) CreateTrackingBranch(params CreateTrackingBranchParams) error {
	upstream := params.Upstream()
	cmd := exec.Command("git", "branch", "--track", params.Branch, upstream)
	cmd.Dir = params.RepoPath

	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	if g.localBranchExists(params.RepoPath, params.Branch) {
		return fmt.Errorf("%w: %s (output: %s)", ErrBranchExists, params.Branch, string(output))
	}
	return fmt.Errorf("%w: %w (command: git branch --track %s %s, output: %s)",
		ErrGitCommand, err, params.Branch, upstream, string(output))
}
