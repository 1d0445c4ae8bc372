package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestRepoParams contains parameters for SetupTestRepo.
type TestRepoParams struct {
	// RemoteBranches are pushed to the origin remote before cloning.
	RemoteBranches []string
}

// SetupTestRepo creates an origin repository holding the requested branches
// and a clone of it, and returns the path of the clone.
// Everything lives under t.TempDir().
func SetupTestRepo(t *testing.T, params TestRepoParams) string {
	t.Helper()
	root := t.TempDir()
	originPath := filepath.Join(root, "origin")
	clonePath := filepath.Join(root, "clone")

	runGit(t, root, "init", "--bare", originPath)

	seedPath := filepath.Join(root, "seed")
	runGit(t, root, "init", seedPath)
	configureGitUser(t, seedPath)
	createInitialCommit(t, seedPath)
	runGit(t, seedPath, "remote", "add", "origin", originPath)
	runGit(t, seedPath, "push", "origin", "HEAD:refs/heads/main")
	for _, branch := range params.RemoteBranches {
		runGit(t, seedPath, "push", "origin", "HEAD:refs/heads/"+branch)
	}

	runGit(t, root, "clone", "--branch", "main", originPath, clonePath)
	configureGitUser(t, clonePath)

	return clonePath
}

func configureGitUser(t *testing.T, repoPath string) {
	t.Helper()
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "user.email", "test@example.com")
}

func createInitialCommit(t *testing.T, repoPath string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repoPath, "README.md"), []byte("# Test Repository"), 0644); err != nil {
		t.Fatalf("Failed to create README file: %v", err)
	}
	runGit(t, repoPath, "add", "README.md")
	runGit(t, repoPath, "commit", "-m", "Initial commit")
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v (output: %s)", args, err, string(output))
	}
}
