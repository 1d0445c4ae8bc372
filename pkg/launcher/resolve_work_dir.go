package launcher

import "fmt"

// resolveWorkDir returns the caller's directory as-is, or creates a new one.
// Created directories are never removed here.
func (l *realLauncher) resolveWorkDir(params RunParams) (string, error) {
	if params.WorkDir != "" {
		l.logf("Build directory: '%s'", params.WorkDir)
		return params.WorkDir, nil
	}

	dir, err := l.deps.FS.MkdirTemp(params.TempRoot, params.tempPattern())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkDir, err)
	}

	l.logf("Build directory: '%s'", dir)
	return dir, nil
}
