package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("sheet settled", "snap", "expanded")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "sheet settled")
	assert.Contains(t, out, "snap=expanded")
	assert.NotContains(t, out, "\x1b[", "file output is uncolored")
}

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "platemap.log")

	log, closeFn, err := Setup(Options{Level: "debug", File: path})
	require.NoError(t, err)
	log.Debug("drag began", "height", 320)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "drag began")
	assert.Contains(t, string(data), "height=320")
}

func TestSetup_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platemap.log")

	log, closeFn, err := Setup(Options{File: path, Disabled: true})
	require.NoError(t, err)
	log.Error("dropped")
	require.NoError(t, closeFn())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSetup_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, _, err := Setup(Options{File: filepath.Join(blocker, "platemap.log")})
	assert.Error(t, err)
}
