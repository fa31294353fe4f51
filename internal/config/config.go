// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Render  RenderConfig  `toml:"render"`
	Update  UpdateConfig  `toml:"update"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme        string  `toml:"theme"`         // "mocha", "latte"
	PreviewScale float64 `toml:"preview_scale"` // pixels per CSS pixel in the terminal preview
	FPS          int     `toml:"fps"`           // animation frame rate
}

// RenderConfig holds PNG export settings.
type RenderConfig struct {
	Width      float64 `toml:"width"`  // CSS pixels
	Height     float64 `toml:"height"` // CSS pixels
	DPR        float64 `toml:"dpr"`
	DurationMS int     `toml:"duration_ms"`
	Output     string  `toml:"output"`
}

// UpdateConfig holds the update notifier settings.
type UpdateConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:        "mocha",
			PreviewScale: 0.25,
			FPS:          30,
		},
		Render: RenderConfig{
			Width:      640,
			Height:     420,
			DPR:        2,
			DurationMS: 600,
			Output:     "nutrition.png",
		},
		Update: UpdateConfig{
			Enabled:         true,
			IntervalSeconds: 30,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "caloriecalc.db"
	}
	return filepath.Join(home, ".local", "share", "caloriecalc", "caloriecalc.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "caloriecalc", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
// A .env file in the working directory is read into the environment first;
// variables already set are left alone.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Render.Output = expandPath(cfg.Render.Output)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config. Values that do not
// parse are ignored.
func applyEnvOverrides(cfg *Config) {
	// Storage overrides
	if v := os.Getenv("CALORIECALC_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	// UI overrides
	if v := os.Getenv("CALORIECALC_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	envFloat("CALORIECALC_PREVIEW_SCALE", &cfg.UI.PreviewScale)
	envInt("CALORIECALC_FPS", &cfg.UI.FPS)

	// Render overrides
	envFloat("CALORIECALC_RENDER_WIDTH", &cfg.Render.Width)
	envFloat("CALORIECALC_RENDER_HEIGHT", &cfg.Render.Height)
	envFloat("CALORIECALC_RENDER_DPR", &cfg.Render.DPR)
	envInt("CALORIECALC_DURATION_MS", &cfg.Render.DurationMS)
	if v := os.Getenv("CALORIECALC_OUTPUT"); v != "" {
		cfg.Render.Output = v
	}

	// Update overrides
	if v := os.Getenv("CALORIECALC_UPDATE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Update.Enabled = b
		}
	}
	envInt("CALORIECALC_UPDATE_INTERVAL", &cfg.Update.IntervalSeconds)
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.UI.Theme == "" {
		return errors.New("theme must be set")
	}
	if c.UI.PreviewScale <= 0 || c.UI.PreviewScale > 1 {
		return fmt.Errorf("preview_scale must be in (0, 1], got %v", c.UI.PreviewScale)
	}
	if c.UI.FPS < 1 || c.UI.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120, got %d", c.UI.FPS)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %vx%v", c.Render.Width, c.Render.Height)
	}
	if c.Render.DPR <= 0 || c.Render.DPR > 8 {
		return fmt.Errorf("dpr must be in (0, 8], got %v", c.Render.DPR)
	}
	if c.Render.DurationMS < 0 {
		return fmt.Errorf("duration_ms must not be negative, got %d", c.Render.DurationMS)
	}
	if c.Render.Output == "" {
		return errors.New("output must be set")
	}
	if c.Update.Enabled && c.Update.IntervalSeconds < 1 {
		return fmt.Errorf("interval_seconds must be at least 1, got %d", c.Update.IntervalSeconds)
	}
	return nil
}

// Duration returns the animation length.
func (r RenderConfig) Duration() time.Duration {
	return time.Duration(r.DurationMS) * time.Millisecond
}

// FrameInterval returns the delay between animation frames.
func (u UIConfig) FrameInterval() time.Duration {
	if u.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(u.FPS)
}

// Interval returns the update polling interval.
func (u UpdateConfig) Interval() time.Duration {
	return time.Duration(u.IntervalSeconds) * time.Second
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
