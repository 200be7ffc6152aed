// Package config loads mazegen settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"mazegen/internal/generate"
	"mazegen/internal/geometry"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = "mazegen.yaml"

// Config holds all mazegen configuration.
type Config struct {
	Boundary    BoundaryConfig       `yaml:"boundary"`
	Width       int                  `yaml:"width"`
	Seed        int64                `yaml:"seed"` // 0 = pick from the clock
	Orientation geometry.Orientation `yaml:"orientation"`

	Scene   SceneConfig   `yaml:"scene"`
	History HistoryConfig `yaml:"history"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// BoundaryConfig is the arena rectangle walls are generated in.
type BoundaryConfig struct {
	MinX int `yaml:"min_x"`
	MinY int `yaml:"min_y"`
	MaxX int `yaml:"max_x"`
	MaxY int `yaml:"max_y"`
}

// SceneConfig locates the scene document.
type SceneConfig struct {
	Path   string `yaml:"path"`
	Output string `yaml:"output,omitempty"` // defaults to Path
	Indent int    `yaml:"indent"`
}

// HistoryConfig controls the run log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // "" = $XDG_DATA_HOME/mazegen
}

// PreviewConfig configures the terminal preview.
type PreviewConfig struct {
	Theme string `yaml:"theme"` // blocks, ascii, emoji
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the arena the simulator ships with.
func DefaultConfig() *Config {
	return &Config{
		Boundary:    BoundaryConfig{MinX: -340, MinY: -190, MaxX: 340, MaxY: 190},
		Width:       10,
		Orientation: geometry.Vertical,
		Scene: SceneConfig{
			Path:   "config.json",
			Indent: 4,
		},
		History: HistoryConfig{Enabled: true},
		Preview: PreviewConfig{Theme: "blocks"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies MAZEGEN_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if path := os.Getenv("MAZEGEN_SCENE"); path != "" {
		c.Scene.Path = path
	}
	if s := os.Getenv("MAZEGEN_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("MAZEGEN_SEED: %w", err)
		}
		c.Seed = seed
	}
	if s := os.Getenv("MAZEGEN_WIDTH"); s != "" {
		width, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("MAZEGEN_WIDTH: %w", err)
		}
		c.Width = width
	}
	if level := os.Getenv("MAZEGEN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	return nil
}

// Region returns the configured boundary as a region.
func (c *Config) Region() geometry.Region {
	b := c.Boundary
	return geometry.Rect(b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// MazeConfig returns the generator settings.
func (c *Config) MazeConfig() generate.Config {
	return generate.Config{
		Boundary:    c.Region(),
		Width:       c.Width,
		Orientation: c.Orientation,
		Seed:        c.Seed,
	}
}

var (
	validThemes  = []string{"blocks", "ascii", "emoji"}
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// Validate validates the configuration. Errors wrap
// generate.ErrInvalidConfiguration.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", generate.ErrInvalidConfiguration, c.Width)
	}
	if err := c.Region().Validate(); err != nil {
		return fmt.Errorf("%w: boundary: %w", generate.ErrInvalidConfiguration, err)
	}
	if c.Scene.Path == "" {
		return fmt.Errorf("%w: scene path is empty", generate.ErrInvalidConfiguration)
	}
	if c.Scene.Indent < 0 {
		return fmt.Errorf("%w: scene indent must not be negative", generate.ErrInvalidConfiguration)
	}
	if !oneOf(c.Preview.Theme, validThemes) {
		return fmt.Errorf("%w: invalid preview theme: %s (valid: %v)", generate.ErrInvalidConfiguration, c.Preview.Theme, validThemes)
	}
	if !oneOf(c.Logging.Level, validLevels) {
		return fmt.Errorf("%w: invalid log level: %s (valid: %v)", generate.ErrInvalidConfiguration, c.Logging.Level, validLevels)
	}
	if !oneOf(c.Logging.Format, validFormats) {
		return fmt.Errorf("%w: invalid log format: %s (valid: %v)", generate.ErrInvalidConfiguration, c.Logging.Format, validFormats)
	}
	return nil
}

func oneOf(s string, valid []string) bool {
	for _, v := range valid {
		if s == v {
			return true
		}
	}
	return false
}
