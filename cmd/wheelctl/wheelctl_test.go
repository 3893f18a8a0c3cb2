package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelview/internal/config"
	"wheelview/internal/source"
)

// execRoot runs the root command with args and returns what it printed.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configPath = ""
		configForce = false
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func simulate(t *testing.T, name string, opts simulateOptions) (string, error) {
	t.Helper()
	if opts.maxFrames == 0 {
		opts.maxFrames = 2000
	}
	var buf bytes.Buffer
	err := runSimulate(context.Background(), &buf, name, config.Default(), &opts)
	return buf.String(), err
}

func TestSimulateSelect(t *testing.T) {
	out, err := simulate(t, "hours", simulateOptions{tap: -1, selectPos: 5, animate: true})
	require.NoError(t, err)
	assert.Contains(t, out, "WHEEL TRACE HOURS")
	assert.Contains(t, out, "select 5 animate")
	assert.Contains(t, out, "selected 5 (6)")
}

func TestSimulateDefaultFlick(t *testing.T) {
	out, err := simulate(t, "minutes", simulateOptions{tap: -1, selectPos: -1})
	require.NoError(t, err)
	assert.Contains(t, out, "WHEEL TRACE MINUTES")
	assert.Contains(t, out, "down ")
	assert.Contains(t, out, "idle")
}

func TestSimulateScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gestures.txt")
	require.NoError(t, os.WriteFile(path, []byte("# jump\nselect 3\n"), 0o644))

	out, err := simulate(t, "weekdays", simulateOptions{script: "@" + path, tap: -1, selectPos: -1})
	require.NoError(t, err)
	assert.Contains(t, out, "selected 3 (Thursday)")
}

func TestSimulateChart(t *testing.T) {
	out, err := simulate(t, "years", simulateOptions{tap: -1, selectPos: 4, animate: true, chart: true})
	require.NoError(t, err)
	assert.Contains(t, out, "Scroll offset")
}

func TestSimulateErrors(t *testing.T) {
	_, err := simulate(t, "nope", simulateOptions{tap: -1, selectPos: -1})
	assert.ErrorIs(t, err, source.ErrUnknownSource)

	_, err = simulate(t, "hours", simulateOptions{script: "jump 3", tap: -1, selectPos: -1})
	assert.Error(t, err)

	_, err = simulate(t, "hours", simulateOptions{script: "@/does/not/exist", tap: -1, selectPos: -1})
	assert.Error(t, err)
}

func TestSourcesCommand(t *testing.T) {
	out, err := execRoot(t, "sources")
	require.NoError(t, err)
	for _, name := range []string{"weekdays", "hours", "provinces", "processes"} {
		assert.Contains(t, out, name)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel", "config.toml")

	out, err := execRoot(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
	assert.FileExists(t, path)

	_, err = execRoot(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execRoot(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)

	out, err = execRoot(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "text_size")
	assert.Contains(t, out, "[physics]")
}

func TestVersionCommand(t *testing.T) {
	out, err := execRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wheelctl dev")
}
