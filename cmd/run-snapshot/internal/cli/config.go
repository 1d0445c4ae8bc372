package cli

import (
	"fmt"
	"path/filepath"

	"github.com/grnet/devflow-snapshot/pkg/config"
	"github.com/grnet/devflow-snapshot/pkg/fs"
)

// GetConfigPath returns the config file to read: the explicit path when
// given, otherwise ~/.devflow/run-snapshot.yaml.
func GetConfigPath(fsys fs.FS, explicitPath string) (string, error) {
	if explicitPath != "" {
		return fsys.ExpandPath(explicitPath)
	}

	homeDir, err := fsys.GetHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".devflow", "run-snapshot.yaml"), nil
}

// LoadConfig reads the configuration. A missing default file yields the
// built-in defaults; a missing explicit file is an error.
func LoadConfig(fsys fs.FS, explicitPath string) (config.Config, error) {
	path, err := GetConfigPath(fsys, explicitPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	manager := config.NewManager(fsys, path)

	var cfg config.Config
	if explicitPath != "" {
		cfg, err = manager.GetConfig()
	} else {
		cfg, err = manager.GetConfigWithFallback()
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	return cfg, nil
}
