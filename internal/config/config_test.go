package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/platemap/internal/sheet"
	"github.com/llehouerou/platemap/internal/spring"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Empty(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	sc := cfg.GetSheetConfig()
	assert.Equal(t, sheet.DefaultConfig().DefaultHeight, sc.DefaultHeight)
	assert.Equal(t, sheet.DefaultConfig().ReservedMargin, sc.ReservedMargin)
	assert.Equal(t, sheet.DefaultThresholds(), sc.Thresholds)
	assert.Equal(t, spring.DefaultConfig(), sc.Spring)
	assert.Equal(t, 100*time.Millisecond, cfg.VelocityWindow())
	assert.InDelta(t, 32, cfg.PointsPerRow(), 0)
	assert.False(t, cfg.HasCatalogPath())
}

func TestLoadFrom_Sections(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[sheet]
default_height = 256
reserved_margin = 0

[sheet.thresholds]
fast_close_velocity = 2.0
close_height = 64

[spring]
angular_frequency = 9
damping_ratio = 1.0
fps = 30

[detail]
height = 192
dismiss_velocity = 0.9

[gesture]
velocity_window_ms = 80

[display]
points_per_row = 16

[log]
level = " DEBUG "
disabled = true

[catalog]
path = "/tmp/places.db"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	sc := cfg.GetSheetConfig()
	assert.InDelta(t, 256, sc.DefaultHeight, 0)
	assert.InDelta(t, 0, sc.ReservedMargin, 0, "explicit zero margin is kept")
	assert.InDelta(t, 2.0, sc.Thresholds.FastCloseVelocity, 0)
	assert.InDelta(t, 64, sc.Thresholds.CloseHeight, 0)
	assert.InDelta(t, sheet.DefaultThresholds().SmallVelocity, sc.Thresholds.SmallVelocity, 0)
	assert.InDelta(t, 9, sc.Spring.AngularFrequency, 0)
	assert.Equal(t, 30, sc.Spring.FPS)
	assert.InDelta(t, spring.DefaultConfig().Epsilon, sc.Spring.Epsilon, 0)

	dc := cfg.GetDetailConfig()
	assert.InDelta(t, 192, dc.Height, 0)
	assert.InDelta(t, 90, dc.DismissDistance, 0)
	assert.InDelta(t, 0.9, dc.DismissVelocity, 0)
	assert.Equal(t, 30, dc.Spring.FPS)

	assert.Equal(t, 80*time.Millisecond, cfg.VelocityWindow())
	assert.InDelta(t, 16, cfg.PointsPerRow(), 0)

	lc, err := cfg.GetLogConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", lc.Level)
	assert.True(t, lc.Disabled)
	assert.Empty(t, lc.File)

	assert.True(t, cfg.HasCatalogPath())
	assert.Equal(t, "/tmp/places.db", cfg.Catalog.Path)
}

func TestLoadFrom_LaterFileOverrides(t *testing.T) {
	first := writeConfig(t, t.TempDir(), "[sheet]\ndefault_height = 200\n[display]\npoints_per_row = 20\n")
	second := writeConfig(t, t.TempDir(), "[sheet]\ndefault_height = 280\n")

	cfg, err := LoadFrom(first, second)
	require.NoError(t, err)
	assert.InDelta(t, 280, cfg.Sheet.DefaultHeight, 0)
	assert.InDelta(t, 20, cfg.PointsPerRow(), 0)
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[sheet\ndefault_height = ")
	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoad_ReadsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	writeConfig(t, dir, "[gesture]\nvelocity_window_ms = 120\n")
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 120*time.Millisecond, cfg.VelocityWindow())
}

func TestGetSheetConfig_InvalidValuesReachValidation(t *testing.T) {
	cfg := &Config{}
	cfg.Sheet.Thresholds.SmallVelocity = -1

	sc := cfg.GetSheetConfig()
	_, err := sheet.New(sc, 720)
	assert.ErrorIs(t, err, sheet.ErrInvalidConfig)
}

func TestGetSpringConfig_OutOfRangeFPS(t *testing.T) {
	cfg := &Config{Spring: SpringConfig{FPS: 1000}}
	assert.Equal(t, spring.DefaultConfig().FPS, cfg.GetSpringConfig().FPS)
}

func TestGetLogConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	cfg := &Config{Log: LogConfig{Level: "verbose"}}

	lc, err := cfg.GetLogConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", lc.Level)
	assert.Equal(t, "platemap.log", filepath.Base(lc.File))
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, "config.toml", paths[len(paths)-1])
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{"~/logs/platemap.log", filepath.Join(home, "logs/platemap.log")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, expandPath(tt.input))
		})
	}
}
