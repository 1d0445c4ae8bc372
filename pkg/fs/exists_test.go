//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ExistsAndReadFile(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	file := filepath.Join(dir, "run-snapshot.yaml")
	require.NoError(t, os.WriteFile(file, []byte("branch: debian-develop\n"), 0644))

	exists, err := fs.Exists(file)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(dir)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(dir, "missing.yaml"))
	assert.NoError(t, err)
	assert.False(t, exists)

	content, err := fs.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "branch: debian-develop\n", string(content))

	_, err = fs.ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}
