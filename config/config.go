// Package config provides configuration parsing for papergrid: the CLI
// settings file and the YAML grid documents it renders.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Border style names understood by the renderer.
const (
	StyleASCII    = "ascii"
	StylePSQL     = "psql"
	StyleMarkdown = "markdown"
	StyleBlank    = "blank"
	StyleNone     = "none"
)

// BorderStyles lists every valid border style name.
var BorderStyles = []string{StyleASCII, StylePSQL, StyleMarkdown, StyleBlank, StyleNone}

// Config represents the papergrid CLI configuration.
type Config struct {
	// Render holds defaults applied to documents that leave them unset.
	Render RenderConfig `yaml:"render"`

	// Cache holds render cache settings.
	Cache CacheConfig `yaml:"cache"`

	// Log holds logging settings.
	Log LogConfig `yaml:"log"`

	// Viewer holds interactive viewer settings.
	Viewer ViewerConfig `yaml:"viewer"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	// Style is the border style used when a document names none.
	Style string `yaml:"style"`
	// Padding is the left and right cell padding used when a document sets none.
	Padding int `yaml:"padding"`
	// TabWidth is the tab expansion width used when a document sets none.
	TabWidth int `yaml:"tab_width"`
	// HeaderColor is the lipgloss colour of the header row on terminals.
	// Empty disables header styling.
	HeaderColor string `yaml:"header_color"`
}

// CacheConfig holds render cache settings.
type CacheConfig struct {
	// Enabled controls whether rendered output is cached.
	Enabled bool `yaml:"enabled"`
	// Dir is the cache directory.
	Dir string `yaml:"dir"`
	// TTL is a duration string (e.g. "24h") after which entries are re-rendered.
	TTL string `yaml:"ttl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
	// File is an optional log file path. Empty logs to stderr.
	File string `yaml:"file"`
}

// ViewerConfig holds interactive viewer settings.
type ViewerConfig struct {
	// Mouse enables mouse row picking.
	Mouse bool `yaml:"mouse"`
	// AltScreen runs the viewer in the alternate screen buffer.
	AltScreen bool `yaml:"alt_screen"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Render: RenderConfig{
			Style:       StyleASCII,
			Padding:     1,
			TabWidth:    4,
			HeaderColor: "#06B6D4",
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     filepath.Join(home, ".cache", "papergrid"),
			TTL:     "24h",
		},
		Log: LogConfig{
			Level: "info",
		},
		Viewer: ViewerConfig{
			Mouse:     true,
			AltScreen: true,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "papergrid", "config.yaml")
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the configuration for required fields and logical consistency.
func (c *Config) Validate() error {
	if !slices.Contains(BorderStyles, c.Render.Style) {
		return fmt.Errorf("config: render.style must be one of %v, got %q", BorderStyles, c.Render.Style)
	}
	if c.Render.Padding < 0 {
		return fmt.Errorf("config: render.padding must be non-negative, got %d", c.Render.Padding)
	}
	if c.Render.TabWidth < 0 {
		return fmt.Errorf("config: render.tab_width must be non-negative, got %d", c.Render.TabWidth)
	}

	if c.Cache.Enabled {
		if c.Cache.Dir == "" {
			return fmt.Errorf("config: cache.dir is required when the cache is enabled")
		}
		if _, err := c.CacheTTL(); err != nil {
			return err
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("config: log.level must be 'debug', 'info', 'warn', or 'error', got %q", c.Log.Level)
	}

	return nil
}

// CacheTTL parses Cache.TTL.
func (c *Config) CacheTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0, fmt.Errorf("config: cache.ttl: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	return d, nil
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("config: create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
