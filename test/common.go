//go:build e2e

// Package test runs the run-snapshot binary against real git repositories.
package test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/grnet/devflow-snapshot/pkg/config"
	"github.com/grnet/devflow-snapshot/pkg/git"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	ConfigPath string
	RepoPath   string
	ToolPath   string
	TempRoot   string
	// ToolExitCode is read by the fake tool on every run.
	ToolExitCode string
}

// RunResult is the outcome of one run-snapshot invocation.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

var (
	buildOnce  sync.Once
	binaryPath string
	buildErr   error
)

// buildBinary compiles run-snapshot once per test process.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "run-snapshot-e2e-*")
		if err != nil {
			buildErr = err
			return
		}
		_, file, _, _ := runtime.Caller(0)
		root := filepath.Dir(filepath.Dir(file))
		binaryPath = filepath.Join(dir, "run-snapshot")

		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/run-snapshot")
		cmd.Dir = root
		if output, err := cmd.CombinedOutput(); err != nil {
			buildErr = errors.New(string(output))
		}
	})

	require.NoError(t, buildErr, "failed to build run-snapshot")
	return binaryPath
}

// setupTestEnvironment creates a repository whose origin has debian-develop,
// a config file and a fake devflow-autopkg.
func setupTestEnvironment(t *testing.T, remoteBranches ...string) *TestSetup {
	t.Helper()

	if remoteBranches == nil {
		remoteBranches = []string{"debian-develop"}
	}

	tempDir := t.TempDir()
	setup := &TestSetup{
		TempDir:      tempDir,
		ConfigPath:   filepath.Join(tempDir, "run-snapshot.yaml"),
		RepoPath:     git.SetupTestRepo(t, git.TestRepoParams{RemoteBranches: remoteBranches}),
		ToolPath:     filepath.Join(tempDir, "bin", "devflow-autopkg"),
		TempRoot:     filepath.Join(tempDir, "builds"),
		ToolExitCode: filepath.Join(tempDir, "tool-exit-code"),
	}

	require.NoError(t, os.MkdirAll(setup.TempRoot, 0755))
	require.NoError(t, os.MkdirAll(filepath.Dir(setup.ToolPath), 0755))

	script := `#!/bin/sh
echo "args=$*"
echo "upstream=$(git rev-parse --abbrev-ref debian-develop@{upstream} 2>/dev/null)"
if [ -f "` + setup.ToolExitCode + `" ]; then exit "$(cat "` + setup.ToolExitCode + `")"; fi
`
	require.NoError(t, os.WriteFile(setup.ToolPath, []byte(script), 0755))

	writeConfig(t, setup, config.Config{
		Remote:     config.DefaultRemote,
		Branch:     config.DefaultBranch,
		Tool:       setup.ToolPath,
		TempRoot:   setup.TempRoot,
		TempPrefix: config.DefaultTempPrefix,
	})

	return setup
}

func writeConfig(t *testing.T, setup *TestSetup, cfg config.Config) {
	t.Helper()
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(setup.ConfigPath, data, 0644))
}

func setToolExitCode(t *testing.T, setup *TestSetup, code string) {
	t.Helper()
	require.NoError(t, os.WriteFile(setup.ToolExitCode, []byte(code+"\n"), 0644))
}

// runSnapshot runs the binary with the setup's config and repository.
func runSnapshot(t *testing.T, setup *TestSetup, args ...string) RunResult {
	t.Helper()

	fullArgs := append([]string{"-c", setup.ConfigPath, "-C", setup.RepoPath}, args...)
	cmd := exec.Command(buildBinary(t), fullArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := RunResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		require.NoError(t, err)
	}

	return result
}

func localBranches(t *testing.T, repoPath string) []string {
	t.Helper()
	cmd := exec.Command("git", "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	cmd.Dir = repoPath
	output, err := cmd.Output()
	require.NoError(t, err)
	return strings.Fields(string(output))
}

func buildDirs(t *testing.T, setup *TestSetup) []string {
	t.Helper()
	entries, err := os.ReadDir(setup.TempRoot)
	require.NoError(t, err)
	var dirs []string
	for _, entry := range entries {
		dirs = append(dirs, filepath.Join(setup.TempRoot, entry.Name()))
	}
	return dirs
}
