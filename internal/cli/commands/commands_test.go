package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompileCommand(t *testing.T) {
	cmd := NewCompileCommand()
	assert.Equal(t, "compile <state.json> [more...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewInspectCommand(t *testing.T) {
	cmd := NewInspectCommand()
	assert.Equal(t, "inspect <state.json>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewWatchCommand(t *testing.T) {
	cmd := NewWatchCommand()
	assert.Equal(t, "watch [dir|file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()
	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestWatchCommand_MissingTarget(t *testing.T) {
	cmd := NewWatchCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot watch")
}
