//go:build integration

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grnet/devflow-snapshot/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealManager_GetConfig_FromDisk(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	configPath := filepath.Join(home, ".devflow", "run-snapshot.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))
	require.NoError(t, os.WriteFile(configPath, []byte(`remote: upstream
tool: /opt/devflow/bin/devflow-autopkg
temp_root: ~/snapshots
`), 0644))

	config, err := NewManager(fs.NewFS(), configPath).GetConfig()

	require.NoError(t, err)
	assert.Equal(t, "upstream", config.Remote)
	assert.Equal(t, DefaultBranch, config.Branch)
	assert.Equal(t, "/opt/devflow/bin/devflow-autopkg", config.Tool)
	assert.Equal(t, filepath.Join(home, "snapshots"), config.TempRoot)
}

func TestRealManager_GetConfigWithFallback_NoFile(t *testing.T) {
	manager := NewManager(fs.NewFS(), filepath.Join(t.TempDir(), "missing.yaml"))

	config, err := manager.GetConfigWithFallback()

	require.NoError(t, err)
	assert.Equal(t, manager.DefaultConfig(), config)
}
