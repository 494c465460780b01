package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/ospath/cmd/ospath/commands"
)

func writeBatch(t *testing.T, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestBatchCmd(t *testing.T) {
	t.Parallel()

	p := writeBatch(t, `
operations:
  - name: join
    op: resolve
    paths: ["C:/", "a"]
  - op: is_absolute
    paths: ["C:"]
`)

	stdout, stderr, err := execute(t, "batch", "-m", "windows", p)
	require.NoError(t, err)
	assert.Equal(t, "✓ join \"C:/\" \"a\": \"C:/a\"\n✓ is_absolute \"C:\": true\n", stdout)
	assert.Empty(t, stderr)

	stdout, _, err = execute(t, "batch", "-o", "json", p)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name": "join", "op": "resolve", "manipulation": "default", "paths": ["C:/", "a"], "path": "C:/a"},
		{"op": "is_absolute", "manipulation": "default", "paths": ["C:"], "absolute": false}
	]`, stdout)
}

func TestBatchCmd_Failures(t *testing.T) {
	t.Parallel()

	p := writeBatch(t, `
manipulation: windows
operations:
  - op: relative
    paths: ["a", "C:/"]
  - op: relative
    paths: ["C:/a", "C:/b"]
`)

	stdout, _, err := execute(t, "batch", "--concurrency", "1", p)
	require.ErrorIs(t, err, commands.ErrOperationsFailed)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, stdout, "✗ relative")
	assert.Contains(t, stdout, `✓ relative "C:/a" "C:/b": "../b"`)
}

func TestBatchCmd_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "batch", writeBatch(t, "operations: [{op: nope, paths: []}]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown op")

	_, _, err = execute(t, "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestBatchSchemaCmd(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "batch", "schema")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"operations"`)
	assert.Contains(t, stdout, `"is_absolute"`)
}

func TestBatchSchemaCmd_WritesToStdout(t *testing.T) {
	t.Parallel()

	cmd := commands.NewRootCmd("test", "", "")
	stderr := &bytes.Buffer{}

	cmd.SetArgs([]string{"batch", "schema"})
	cmd.SetErr(stderr)

	require.NoError(t, cmd.Execute())
	assert.Empty(t, stderr.String())
}
