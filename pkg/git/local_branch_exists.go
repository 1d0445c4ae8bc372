package git

import "os/exec"

// localBranchExists reports whether refs/heads/<branch> resolves.
func (g *realGit) localBranchExists(repoPath, branch string) bool {
	cmd := exec.Command("git", "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	cmd.Dir = repoPath
	return cmd.Run() == nil
}
