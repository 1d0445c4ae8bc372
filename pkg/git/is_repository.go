package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// IsRepository checks if the specified directory is inside a Git work tree.
// A missing git executable is reported as an error, a directory that git
// does not recognise as a work tree is reported as false.
func (g *realGit) IsRepository(repoPath string) (bool, error) {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w (command: git rev-parse --is-inside-work-tree, output: %s)",
			ErrGitCommand, err, string(output))
	}
	return strings.TrimSpace(string(output)) == "true", nil
}
