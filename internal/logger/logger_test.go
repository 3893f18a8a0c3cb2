package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.raw), "ParseLevel(%q)", tt.raw)
	}
}

func TestInitDisabledDiscards(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	assert.NotNil(t, L)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, L.Enabled(context.Background(), level), "level %s", level)
	}
}

func TestReinitClosesPreviousFile(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Close()) })

	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	first := logFile
	require.NotNil(t, first)

	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	assert.NotSame(t, first, logFile)
	_, err := first.WriteString("late\n")
	assert.ErrorIs(t, err, os.ErrClosed)

	second := logFile
	require.NoError(t, Init(Options{Enabled: false}))
	assert.Nil(t, logFile)
	_, err = second.WriteString("late\n")
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestInitWritesDatedFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { require.NoError(t, Close()) })

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug}))
	L.Info("wheel settled", "position", 3)

	matches, err := filepath.Glob(filepath.Join(dir, logPrefix+"*"+logSuffix))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"wheel settled"`)
	assert.Contains(t, string(data), `"position":3`)
}

func TestOr(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)
	assert.Same(t, l, Or(l))
	assert.Same(t, L, Or(nil))
}
