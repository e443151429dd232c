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

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/alertkit/internal/alert"
	"github.com/javiermolinar/alertkit/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	UI        UIConfig        `toml:"ui"`
	Animation AnimationConfig `toml:"animation"`
	Overlay   OverlayConfig   `toml:"overlay"`
	Log       LogConfig       `toml:"log"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// AnimationConfig holds the alert choreography.
type AnimationConfig struct {
	DelayMS    int `toml:"delay_ms"`    // pause between mount and entrance
	DurationMS int `toml:"duration_ms"` // entrance and exit length
	FrameRate  int `toml:"frame_rate"`  // redraws per second while animating
}

// OverlayConfig holds how alerts are drawn and dismissed.
type OverlayConfig struct {
	Strategy          string `toml:"strategy"`            // "auto", "native", "fallback"
	DismissOnBackdrop bool   `toml:"dismiss_on_backdrop"` // esc and backdrop clicks clear the alert
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Dir    string `toml:"dir"`    // empty disables file logging unless --debug
	Format string `toml:"format"` // "json" or "text"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: theme.DefaultName,
		},
		Animation: AnimationConfig{
			DelayMS:    50,
			DurationMS: 300,
			FrameRate:  60,
		},
		Overlay: OverlayConfig{
			Strategy:          "auto",
			DismissOnBackdrop: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "alertkit", "config.toml")
}

// DefaultLogDir returns where logs go when debugging without a configured dir.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", "alertkit")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
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

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Log.Dir = expandPath(cfg.Log.Dir)

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
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ALERTKIT_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	if v := os.Getenv("ALERTKIT_ANIMATION_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing ALERTKIT_ANIMATION_DELAY_MS: %w", err)
		}
		cfg.Animation.DelayMS = ms
	}
	if v := os.Getenv("ALERTKIT_ANIMATION_DURATION_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing ALERTKIT_ANIMATION_DURATION_MS: %w", err)
		}
		cfg.Animation.DurationMS = ms
	}

	if v := os.Getenv("ALERTKIT_OVERLAY_STRATEGY"); v != "" {
		cfg.Overlay.Strategy = v
	}

	if v := os.Getenv("ALERTKIT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ALERTKIT_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	return nil
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
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}

	if c.Animation.DelayMS < 0 {
		return errors.New("animation delay_ms must not be negative")
	}
	if c.Animation.DurationMS <= 0 {
		return errors.New("animation duration_ms must be positive")
	}
	if c.Animation.FrameRate <= 0 || c.Animation.FrameRate > 240 {
		return fmt.Errorf("animation frame_rate must be between 1 and 240, got %d", c.Animation.FrameRate)
	}

	if !isValidStrategy(c.Overlay.Strategy) {
		return fmt.Errorf("invalid overlay strategy %q (want one of %s)", c.Overlay.Strategy, strings.Join(alert.Strategies(), ", "))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	return nil
}

func isValidStrategy(s string) bool {
	for _, v := range alert.Strategies() {
		if v == s {
			return true
		}
	}
	return false
}

// Delay returns the pause before the entrance animation.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Animation.DelayMS) * time.Millisecond
}

// Duration returns the length of the entrance and exit animations.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.Animation.DurationMS) * time.Millisecond
}

// FrameInterval returns the redraw interval while animating.
func (c *Config) FrameInterval() time.Duration {
	if c.Animation.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Animation.FrameRate)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
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
