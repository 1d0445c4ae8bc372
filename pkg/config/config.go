package config

import (
	"fmt"
	"strings"
)

// Default values, mirrored by configs/default.yaml.
const (
	DefaultRemote     = "origin"
	DefaultBranch     = "debian-develop"
	DefaultTempPrefix = "df-build"
)

// Config represents the run-snapshot configuration.
type Config struct {
	Remote     string `yaml:"remote"`
	Branch     string `yaml:"branch"`
	Tool       string `yaml:"tool"`
	TempRoot   string `yaml:"temp_root"`
	TempPrefix string `yaml:"temp_prefix"`
}

// TempPattern returns the os.MkdirTemp pattern for build directories.
func (c Config) TempPattern() string {
	return c.TempPrefix + "-*"
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	required := []struct {
		value string
		err   error
	}{
		{c.Remote, ErrRemoteEmpty},
		{c.Branch, ErrBranchEmpty},
		{c.Tool, ErrToolEmpty},
		{c.TempPrefix, ErrTempPrefixEmpty},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return r.err
		}
	}

	for _, name := range []string{c.Remote, c.Branch} {
		if strings.ContainsAny(name, " \t\n") || strings.HasPrefix(name, "-") {
			return fmt.Errorf("%w: %q", ErrInvalidRefName, name)
		}
	}

	if strings.ContainsAny(c.TempPrefix, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidTempPrefix, c.TempPrefix)
	}

	return nil
}
