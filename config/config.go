// Package config provides configuration management for Event Table.
// It handles loading, saving, and validating application settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yllada/event-table/common"
)

// Pair is a two-value slider setting.
type Pair struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// TrayEnabled shows the system tray icon.
	TrayEnabled bool `yaml:"tray_enabled"`
	// WindowWidth and WindowHeight size the main window.
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	// Padding seeds the padding sliders.
	Padding Pair `yaml:"padding"`
	// Separator seeds the separator sliders.
	Separator Pair `yaml:"separator"`

	path string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme:        common.ThemeAuto,
		LogLevel:     "info",
		TrayEnabled:  true,
		WindowWidth:  common.DefaultWindowWidth,
		WindowHeight: common.DefaultWindowHeight,
		Padding:      Pair{X: 10, Y: 5},
		Separator:    Pair{X: 1, Y: 1},
	}
}

// DefaultPath returns ~/.config/event-table/config.yaml.
func DefaultPath() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.ConfigFileName), nil
}

// Load loads the configuration from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, common.WrapError(err, common.ErrConfigLoad.Error())
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration stored at path.
// If the file doesn't exist, it is created with default values.
func LoadFrom(path string) (*Config, error) {
	if !common.FileExists(path) {
		cfg := DefaultConfig()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	cfg, err := decode(file)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	cfg := DefaultConfig()
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// validate normalizes out-of-range values and rejects the ones that
// cannot be repaired.
func (c *Config) validate() error {
	switch c.Theme {
	case common.ThemeAuto, common.ThemeLight, common.ThemeDark:
	default:
		c.Theme = common.ThemeAuto
	}

	if _, ok := common.ParseLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	if c.WindowWidth < common.MinWindowWidth {
		c.WindowWidth = common.MinWindowWidth
	}
	if c.WindowHeight < common.MinWindowHeight {
		c.WindowHeight = common.MinWindowHeight
	}

	c.Padding = clampPair(c.Padding, common.PaddingMin, common.PaddingMax)
	c.Separator = clampPair(c.Separator, common.SeparatorMin, common.SeparatorMax)
	return nil
}

func clampPair(p Pair, lo, hi float32) Pair {
	return Pair{X: common.Clamp(p.X, lo, hi), Y: common.Clamp(p.Y, lo, hi)}
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration back to its file.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := DefaultPath()
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
		}
		c.path = path
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("%w: creating directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}
	return nil
}
