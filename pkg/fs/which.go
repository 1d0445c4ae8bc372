package fs

import (
	"fmt"
	"os/exec"
)

// Which finds the executable path for a command using the system's PATH.
func (f *realFS) Which(command string) (string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCommandNotFound, command, err)
	}
	return path, nil
}
