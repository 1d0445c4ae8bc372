//go:build unit

package cli

import (
	"errors"
	"testing"

	"github.com/grnet/devflow-snapshot/pkg/config"
	fsmocks "github.com/grnet/devflow-snapshot/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetConfigPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)

	mockFS.EXPECT().GetHomeDir().Return("/home/builder", nil)
	path, err := GetConfigPath(mockFS, "")
	require.NoError(t, err)
	assert.Equal(t, "/home/builder/.devflow/run-snapshot.yaml", path)

	mockFS.EXPECT().ExpandPath("~/snap.yaml").Return("/home/builder/snap.yaml", nil)
	path, err = GetConfigPath(mockFS, "~/snap.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/home/builder/snap.yaml", path)
}

func TestGetConfigPath_NoHomeDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().GetHomeDir().Return("", errors.New("$HOME is not defined"))

	path, err := GetConfigPath(mockFS, "")

	require.NoError(t, err)
	assert.Equal(t, ".devflow/run-snapshot.yaml", path)
}

func TestLoadConfig_DefaultPathMissingFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().GetHomeDir().Return("/home/builder", nil)
	mockFS.EXPECT().Exists("/home/builder/.devflow/run-snapshot.yaml").Return(false, nil)

	cfg, err := LoadConfig(mockFS, "")

	require.NoError(t, err)
	assert.Equal(t, config.DefaultBranch, cfg.Branch)
	assert.Equal(t, config.DefaultRemote, cfg.Remote)
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().ExpandPath("/etc/run-snapshot.yaml").Return("/etc/run-snapshot.yaml", nil)
	mockFS.EXPECT().Exists("/etc/run-snapshot.yaml").Return(false, nil)

	_, err := LoadConfig(mockFS, "/etc/run-snapshot.yaml")

	assert.ErrorIs(t, err, ErrFailedToLoadConfig)
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().ExpandPath("/etc/run-snapshot.yaml").Return("/etc/run-snapshot.yaml", nil)
	mockFS.EXPECT().Exists("/etc/run-snapshot.yaml").Return(true, nil)
	mockFS.EXPECT().ReadFile("/etc/run-snapshot.yaml").Return([]byte("remote: upstream\n"), nil)
	mockFS.EXPECT().ExpandPath("").Return("", nil)

	cfg, err := LoadConfig(mockFS, "/etc/run-snapshot.yaml")

	require.NoError(t, err)
	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, config.DefaultBranch, cfg.Branch)
}
