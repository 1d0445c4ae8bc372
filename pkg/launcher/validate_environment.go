package launcher

import (
	"fmt"

	"github.com/grnet/devflow-snapshot/pkg/git"
)

// validateEnvironment checks that git is installed and repoPath is a work tree.
func (l *realLauncher) validateEnvironment(repoPath string) error {
	if _, err := l.deps.FS.Which("git"); err != nil {
		return fmt.Errorf("%w: %w", ErrEnvironment, err)
	}

	ok, err := l.deps.Git.IsRepository(repoPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEnvironment, err)
	}
	if !ok {
		return fmt.Errorf("%w: %w: %s", ErrEnvironment, git.ErrNotRepository, repoPath)
	}

	return nil
}
