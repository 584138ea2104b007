package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T, colorScheme string) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_PATH", filepath.Join(t.TempDir(), "storage.json"))
	t.Setenv("COLOR_SCHEME", colorScheme)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_DIR", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestModulesCommand(t *testing.T) {
	setupEnv(t, "light")

	out, err := run(t, "modules")
	require.NoError(t, err)
	assert.Contains(t, out, "basics")
	assert.Contains(t, out, "Real-time Features with WebSockets")
}

func TestProgressCommands(t *testing.T) {
	setupEnv(t, "light")

	out, err := run(t, "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress 0/10 completed")

	_, err = run(t, "progress", "visit", "basics")
	require.NoError(t, err)

	out, err = run(t, "progress", "complete", "forms")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress 1/10 completed")

	out, err = run(t, "progress", "complete", "forms", "--undo")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress 0/10 completed")

	out, err = run(t, "progress", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[~]")

	out, err = run(t, "progress", "reset")
	require.NoError(t, err)
	assert.NotContains(t, out, "[~]")

	_, err = run(t, "progress", "visit", "cobol")
	assert.Error(t, err)
}

func TestThemeCommands(t *testing.T) {
	setupEnv(t, "dark")

	out, err := run(t, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: dark")

	out, err = run(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: light")

	// stored value wins over COLOR_SCHEME=dark
	out, err = run(t, "theme", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: light")

	out, err = run(t, "theme", "set", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: dark")

	_, err = run(t, "theme", "set", "sepia")
	assert.Error(t, err)
}
