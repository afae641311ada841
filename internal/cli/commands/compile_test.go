package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/edgewise-labs/rulewizard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalState = `{
	"sources": [{"id": "src-1", "resourceName": "sensors", "resourceType": "stream"}],
	"filters": [{"logic": "AND", "expressions": [
		{"field": "payload.temp", "operator": ">", "value": "25"}
	]}]
}`

func writeState(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCompileCommand(t *testing.T) {
	path := writeState(t, "rule.json", minimalState)

	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "FROM sensors")
	assert.Contains(t, out.String(), "WHERE (payload.temp > 25)")
	assert.Contains(t, out.String(), ";")
}

func TestCompileCommand_JSONOutput(t *testing.T) {
	path := writeState(t, "rule.json", minimalState)

	cmd := NewCompileCommand()
	ctx := config.WithConfig(context.Background(), &config.Config{Output: config.OutputJSON})
	cmd.SetContext(ctx)
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var envelope compileEnvelope
	require.NoError(t, json.Unmarshal(out.Bytes(), &envelope))
	assert.Equal(t, path, envelope.File)
	assert.Contains(t, envelope.SQL, "FROM sensors")
}

func TestCompileCommand_BadFileContinues(t *testing.T) {
	good := writeState(t, "good.json", minimalState)
	bad := writeState(t, "bad.json", "{not json")

	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{bad, good})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
	// The good file still compiled
	assert.Contains(t, out.String(), "FROM sensors")
}

func TestCompileCommand_MissingFile(t *testing.T) {
	cmd := NewCompileCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.json")})

	require.Error(t, cmd.Execute())
}

func TestCompileCommand_Warnings(t *testing.T) {
	path := writeState(t, "rule.json", `{
		"sources": [{"id": "src-1", "resourceName": "sensors", "resourceType": "stream"}],
		"joins": [{"joinType": "LEFT", "targetSourceId": "ghost"}]
	}`)

	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "ghost")
	assert.NotContains(t, out.String(), "JOIN")
}
