package kv

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the kv command group with args against the store below dir
// and returns everything written to stdout
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	KeyValueCommands.SetOut(&out)
	KeyValueCommands.SetErr(&out)
	KeyValueCommands.SetArgs(append(args, "--data-dir", dir, "--app-name", "CliTest"))
	err := KeyValueCommands.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "get", "LastUser")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	out, err = run(t, dir, "set", "LastUser", "alice")
	require.NoError(t, err)
	assert.Equal(t, "set successfully\n", out)

	out, err = run(t, dir, "set-int", "WindowWidth", "1024")
	require.NoError(t, err)
	assert.Equal(t, "set-int successfully\n", out)

	out, err = run(t, dir, "get", "LastUser")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)

	out, err = run(t, dir, "get-int", "WindowWidth")
	require.NoError(t, err)
	assert.Equal(t, "1024\n", out)

	out, err = run(t, dir, "get-int", "LastUser")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = run(t, dir, "has", "LastUser")
	require.NoError(t, err)
	assert.Equal(t, "key=LastUser, found=true\n", out)

	out, err = run(t, dir, "keys")
	require.NoError(t, err)
	assert.Equal(t, "LastUser\nWindowWidth\n", out)

	out, err = run(t, dir, "path")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "CliTest", "Persistence.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"LastUser":"alice","WindowWidth":"1024"}`, string(data))

	out, err = run(t, dir, "dump")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"LastUser\": \"alice\",\n  \"WindowWidth\": \"1024\"\n}\n", out)

	out, err = run(t, dir, "del", "LastUser")
	require.NoError(t, err)
	assert.Equal(t, "delete successfully\n", out)

	out, err = run(t, dir, "has", "LastUser")
	require.NoError(t, err)
	assert.Equal(t, "key=LastUser, found=false\n", out)

	out, err = run(t, dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "CliTest")
	assert.Contains(t, out, "Persistence.json")
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "set-int", "WindowWidth", "wide")
	assert.Error(t, err)

	_, err = run(t, dir, "set", "only-key")
	assert.Error(t, err)

	// invalid names are rejected before any file is touched
	var out bytes.Buffer
	KeyValueCommands.SetOut(&out)
	KeyValueCommands.SetErr(&out)
	KeyValueCommands.SetArgs([]string{"get", "key", "--data-dir", dir, "--app-name", "../escape"})
	assert.Error(t, KeyValueCommands.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
