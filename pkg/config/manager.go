package config

import (
	"errors"
	"fmt"

	"github.com/grnet/devflow-snapshot/configs"
	"github.com/grnet/devflow-snapshot/pkg/autopkg"
	"github.com/grnet/devflow-snapshot/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fsInstance fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsInstance,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
// Keys missing from the file keep their default values.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if config.TempRoot, err = c.fs.ExpandPath(config.TempRoot); err != nil {
		return Config{}, fmt.Errorf("failed to expand temp_root: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to defaults
// only when the file does not exist.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if errors.Is(err, ErrConfigNotFound) {
		return c.DefaultConfig(), nil
	}
	return Config{}, err
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration from configs/default.yaml.
func (c *realManager) DefaultConfig() Config {
	config := Config{
		Remote:     DefaultRemote,
		Branch:     DefaultBranch,
		Tool:       autopkg.DefaultTool,
		TempPrefix: DefaultTempPrefix,
	}
	// The embedded file is part of the binary; a broken copy leaves the constants in place.
	_ = yaml.Unmarshal(configs.DefaultConfigYAML, &config)
	return config
}
