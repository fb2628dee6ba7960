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

	"github.com/javiermolinar/daygrid/internal/grid"
)

// Config holds the application configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Clock   ClockConfig   `toml:"clock"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// GridConfig holds the time-block grid bounds.
type GridConfig struct {
	StartHour int `toml:"start_hour"` // e.g., 8
	EndHour   int `toml:"end_hour"`   // e.g., 18 (exclusive)
}

// ClockConfig holds the day-change check cadence.
type ClockConfig struct {
	TickSeconds int `toml:"tick_seconds"` // 1..60
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Dir   string `toml:"dir"`
	Debug bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			StartHour: grid.DefaultStartHour,
			EndHour:   grid.DefaultEndHour,
		},
		Clock: ClockConfig{
			TickSeconds: 60,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Dir: defaultLogDir(),
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "daygrid.db"
	}
	return filepath.Join(home, ".local", "share", "daygrid", "daygrid.db")
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "logs"
	}
	return filepath.Join(home, ".local", "state", "daygrid")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "daygrid", "config.toml")
}

// ThemesDir is where user themes (<name>.toml) are looked up.
func ThemesDir() string {
	return filepath.Join(filepath.Dir(DefaultConfigPath()), "themes")
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

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
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
	if err := envInt("DAYGRID_GRID_START_HOUR", &cfg.Grid.StartHour); err != nil {
		return err
	}
	if err := envInt("DAYGRID_GRID_END_HOUR", &cfg.Grid.EndHour); err != nil {
		return err
	}
	if err := envInt("DAYGRID_TICK_SECONDS", &cfg.Clock.TickSeconds); err != nil {
		return err
	}

	if v := os.Getenv("DAYGRID_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("DAYGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("DAYGRID_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("DAYGRID_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DAYGRID_DEBUG must be a boolean, got %q", v)
		}
		cfg.Log.Debug = debug
	}
	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be an integer, got %q", name, v)
	}
	*dst = n
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
	if _, err := grid.New(c.Grid.StartHour, c.Grid.EndHour); err != nil {
		return err
	}
	if c.Clock.TickSeconds < 1 || c.Clock.TickSeconds > 60 {
		return fmt.Errorf("tick_seconds must be between 1 and 60, got %d", c.Clock.TickSeconds)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.Log.Dir == "" {
		return errors.New("log dir must be set")
	}
	return nil
}

// SlotGrid returns the slot grid described by the config.
// The config must have passed Validate.
func (c *Config) SlotGrid() grid.Grid {
	return grid.Grid{StartHour: c.Grid.StartHour, EndHour: c.Grid.EndHour}
}

// TickInterval returns how often the day-change check runs.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Clock.TickSeconds) * time.Second
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
