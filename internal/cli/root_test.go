package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "rulewizard", cmd.Use)

	subs := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subs[sub.Name()] = true
	}
	for _, name := range []string{"compile", "inspect", "watch", "serve", "version"} {
		assert.True(t, subs[name], "subcommand %q should be registered", name)
	}
}

func TestRootCmd_Version(t *testing.T) {
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "rulewizard")
	assert.Contains(t, out.String(), Version)
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	cmd := NewRootCmd()
	for _, flag := range []string{"config", "verbose", "output", "port"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}
