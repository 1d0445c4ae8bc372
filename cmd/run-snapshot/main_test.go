//go:build unit

package main

import (
	"bytes"
	"testing"

	"github.com/grnet/devflow-snapshot/cmd/run-snapshot/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RejectsTwoWorkDirs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"/work/one", "/work/two"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.ErrorIs(t, err, cli.ErrTooManyArgs)
	assert.Equal(t, cli.ExitGeneralError, cli.ExitCode(err))
}

func TestRootCmd_QuietAndVerboseConflict(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-q", "-v"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, cli.ExitGeneralError, cli.ExitCode(err))
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version)
}
