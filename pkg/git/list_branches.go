package git

import (
	"errors"
	"fmt"
	"os/exec"
)

// ListBranches lists local and remote-tracking branches of the repository.
func (g *realGit) ListBranches(repoPath string) (BranchSet, error) {
	cmd := exec.Command("git", "branch", "--all", "--format=%(refname)")
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output = append(output, exitErr.Stderr...)
		}
		return BranchSet{}, fmt.Errorf("%w: %w (command: git branch --all --format=%%(refname), output: %s)",
			ErrGitCommand, err, string(output))
	}
	return ParseBranchRefs(string(output)), nil
}
