package fs

import (
	"fmt"
	"os"
)

// MkdirTemp creates a new, uniquely named directory under root.
// The directory is left in place; removing it is up to the caller.
func (f *realFS) MkdirTemp(root, pattern string) (string, error) {
	dir, err := os.MkdirTemp(root, pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTempDir, err)
	}
	return dir, nil
}
