package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/platemap/internal/detail"
	"github.com/llehouerou/platemap/internal/gesture"
	"github.com/llehouerou/platemap/internal/sheet"
	"github.com/llehouerou/platemap/internal/spring"
)

const appName = "platemap"

type Config struct {
	// Bottom sheet geometry and release thresholds
	Sheet SheetConfig `koanf:"sheet"`

	// Spring tuning shared by the sheet and the detail overlay
	Spring SpringConfig `koanf:"spring"`

	// Detail overlay
	Detail DetailConfig `koanf:"detail"`

	Gesture GestureConfig `koanf:"gesture"`
	Display DisplayConfig `koanf:"display"`
	Log     LogConfig     `koanf:"log"`
	Catalog CatalogConfig `koanf:"catalog"`
}

// SheetConfig holds the snap geometry, in height units.
type SheetConfig struct {
	DefaultHeight  float64          `koanf:"default_height"`  // default: 320
	ReservedMargin *float64         `koanf:"reserved_margin"` // expanded = viewport - margin (default: 120)
	Thresholds     ThresholdsConfig `koanf:"thresholds"`
}

// ThresholdsConfig holds the release decision constants. Velocities are in
// height units per millisecond.
type ThresholdsConfig struct {
	FastCloseVelocity float64 `koanf:"fast_close_velocity"` // default: 1.2
	ModerateVelocity  float64 `koanf:"moderate_velocity"`   // default: 0.5
	CollapseVelocity  float64 `koanf:"collapse_velocity"`   // default: 0.8
	SmallVelocity     float64 `koanf:"small_velocity"`      // default: 0.3
	CloseHeight       float64 `koanf:"close_height"`        // default: 100
	LargeMovement     float64 `koanf:"large_movement"`      // default: 150
	ModerateMovement  float64 `koanf:"moderate_movement"`   // default: 50
}

// SpringConfig holds spring tuning.
type SpringConfig struct {
	AngularFrequency float64 `koanf:"angular_frequency"` // default: 7.0
	DampingRatio     float64 `koanf:"damping_ratio"`     // default: 0.85
	FPS              int     `koanf:"fps"`               // default: 60
	Epsilon          float64 `koanf:"epsilon"`           // default: 0.5
}

// DetailConfig holds the detail overlay settings.
type DetailConfig struct {
	Height          float64 `koanf:"height"`           // default: 300
	DismissDistance float64 `koanf:"dismiss_distance"` // default: 90
	DismissVelocity float64 `koanf:"dismiss_velocity"` // default: 0.6
}

// GestureConfig holds pointer tracking settings.
type GestureConfig struct {
	VelocityWindowMS int `koanf:"velocity_window_ms"` // default: 100
}

// DisplayConfig maps height units to terminal rows.
type DisplayConfig struct {
	PointsPerRow float64 `koanf:"points_per_row"` // default: 32
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level    string `koanf:"level"`    // "debug", "info", "warn", "error" (default: "info")
	File     string `koanf:"file"`     // default: $XDG_STATE_HOME/platemap/platemap.log
	Disabled bool   `koanf:"disabled"` // discard all log output
}

// CatalogConfig holds the place database settings.
type CatalogConfig struct {
	Path string `koanf:"path"` // default: $XDG_DATA_HOME/platemap/platemap.db
}

// Load reads the user and local config files.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files override earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	if cfg.Catalog.Path != "" {
		cfg.Catalog.Path = expandPath(cfg.Catalog.Path)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/platemap/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetSpringConfig returns the spring tuning with defaults applied.
func (c *Config) GetSpringConfig() spring.Config {
	d := spring.DefaultConfig()
	cfg := spring.Config{
		AngularFrequency: c.Spring.AngularFrequency,
		DampingRatio:     c.Spring.DampingRatio,
		FPS:              c.Spring.FPS,
		Epsilon:          c.Spring.Epsilon,
	}
	if cfg.AngularFrequency <= 0 {
		cfg.AngularFrequency = d.AngularFrequency
	}
	if cfg.DampingRatio <= 0 {
		cfg.DampingRatio = d.DampingRatio
	}
	if cfg.FPS <= 0 || cfg.FPS > 240 {
		cfg.FPS = d.FPS
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = d.Epsilon
	}
	return cfg
}

// GetSheetConfig returns the sheet configuration with defaults applied to
// unset values. Explicitly invalid values are passed through so the sheet
// rejects them at construction.
func (c *Config) GetSheetConfig() sheet.Config {
	d := sheet.DefaultConfig()
	cfg := sheet.Config{
		DefaultHeight:  c.Sheet.DefaultHeight,
		ReservedMargin: d.ReservedMargin,
		Thresholds:     c.thresholds(d.Thresholds),
		Spring:         c.GetSpringConfig(),
	}
	if cfg.DefaultHeight == 0 {
		cfg.DefaultHeight = d.DefaultHeight
	}
	if c.Sheet.ReservedMargin != nil {
		cfg.ReservedMargin = *c.Sheet.ReservedMargin
	}
	return cfg
}

func (c *Config) thresholds(d sheet.Thresholds) sheet.Thresholds {
	t := c.Sheet.Thresholds
	pick := func(v, def float64) float64 {
		if v == 0 {
			return def
		}
		return v
	}
	return sheet.Thresholds{
		FastCloseVelocity: pick(t.FastCloseVelocity, d.FastCloseVelocity),
		ModerateVelocity:  pick(t.ModerateVelocity, d.ModerateVelocity),
		CollapseVelocity:  pick(t.CollapseVelocity, d.CollapseVelocity),
		SmallVelocity:     pick(t.SmallVelocity, d.SmallVelocity),
		CloseHeight:       pick(t.CloseHeight, d.CloseHeight),
		LargeMovement:     pick(t.LargeMovement, d.LargeMovement),
		ModerateMovement:  pick(t.ModerateMovement, d.ModerateMovement),
	}
}

// GetDetailConfig returns the detail overlay configuration with defaults applied.
func (c *Config) GetDetailConfig() detail.Config {
	d := detail.DefaultConfig()
	cfg := detail.Config{
		Height:          c.Detail.Height,
		DismissDistance: c.Detail.DismissDistance,
		DismissVelocity: c.Detail.DismissVelocity,
		Spring:          c.GetSpringConfig(),
	}
	if cfg.Height <= 0 {
		cfg.Height = d.Height
	}
	if cfg.DismissDistance <= 0 {
		cfg.DismissDistance = d.DismissDistance
	}
	if cfg.DismissVelocity <= 0 {
		cfg.DismissVelocity = d.DismissVelocity
	}
	return cfg
}

// VelocityWindow returns the release velocity window (default: 100ms).
func (c *Config) VelocityWindow() time.Duration {
	if c.Gesture.VelocityWindowMS <= 0 {
		return gesture.DefaultVelocityWindow
	}
	return time.Duration(c.Gesture.VelocityWindowMS) * time.Millisecond
}

// PointsPerRow returns how many height units one terminal row spans (default: 32).
func (c *Config) PointsPerRow() float64 {
	if c.Display.PointsPerRow <= 0 {
		return 32
	}
	return c.Display.PointsPerRow
}

// GetLogConfig returns the logging configuration with defaults applied.
func (c *Config) GetLogConfig() (LogConfig, error) {
	cfg := c.Log
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Level = "info"
	}
	if cfg.File == "" && !cfg.Disabled {
		path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
		if err != nil {
			return LogConfig{}, err
		}
		cfg.File = path
	}
	return cfg, nil
}

// HasCatalogPath returns true if the catalog location is overridden.
func (c *Config) HasCatalogPath() bool {
	return c.Catalog.Path != ""
}
