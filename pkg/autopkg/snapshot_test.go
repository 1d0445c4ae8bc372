//go:build integration

package autopkg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTool writes an executable shell script and returns its path.
func writeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devflow-autopkg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestInvoker_Snapshot_ForwardsArgumentsAndStreams(t *testing.T) {
	tool := writeTool(t, `echo "cwd=$(pwd)"
echo "args=$*"
read line
echo "stdin=$line"
echo "diagnostic" >&2
`)
	repoPath := t.TempDir()
	var stdout, stderr bytes.Buffer
	invoker := NewInvokerWithStreams(strings.NewReader("hello\n"), &stdout, &stderr)

	err := invoker.Snapshot(SnapshotParams{
		Tool:      tool,
		BuildDir:  "/work/out",
		RepoPath:  repoPath,
		ExtraArgs: []string{"--no-sign"},
	})
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(repoPath)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "cwd="+resolved)
	assert.Contains(t, stdout.String(), "args=-b /work/out --no-sign snapshot")
	assert.Contains(t, stdout.String(), "stdin=hello")
	assert.Equal(t, "diagnostic\n", stderr.String())
}

func TestInvoker_Snapshot_PropagatesExitCode(t *testing.T) {
	for _, code := range []int{1, 2, 42, 255} {
		tool := writeTool(t, "exit "+strconv.Itoa(code)+"\n")
		invoker := NewInvokerWithStreams(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

		err := invoker.Snapshot(SnapshotParams{Tool: tool, BuildDir: t.TempDir(), RepoPath: t.TempDir()})

		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr), "code %d", code)
		assert.Equal(t, code, exitErr.ExitCode())
	}
}

func TestInvoker_Snapshot_ToolNotFound(t *testing.T) {
	invoker := NewInvokerWithStreams(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	err := invoker.Snapshot(SnapshotParams{
		Tool:     filepath.Join(t.TempDir(), "missing-devflow-autopkg"),
		BuildDir: t.TempDir(),
		RepoPath: t.TempDir(),
	})

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitCodeCommandNotFound, exitErr.ExitCode())
}
