// Package config loads and saves moneymirror's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment overrides, checked before the config file.
const (
	EnvDB       = "MONEYMIRROR_DB"
	EnvLogLevel = "MONEYMIRROR_LOG_LEVEL"
	EnvCurrency = "MONEYMIRROR_CURRENCY"
)

// Config holds all moneymirror configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
	Watch      WatchConfig      `toml:"watch"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	WeeklyMode bool   `toml:"weekly_mode"`
	DBPath     string `toml:"db_path,omitempty"`
	LogLevel   string `toml:"log_level"`
}

// DisplayConfig controls how amounts are formatted.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Decimals int    `toml:"decimals"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// WatchConfig holds settings for the watch service.
type WatchConfig struct {
	IntervalSec int `toml:"interval_sec"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LogLevel: "warn",
		},
		Display: DisplayConfig{
			Currency: "INR",
			Decimals: 2,
		},
		Appearance: AppearanceConfig{
			Theme: "slate",
		},
		Watch: WatchConfig{
			IntervalSec: 15,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "moneymirror")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "moneymirror")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the ledger database.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "moneymirror")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "moneymirror")
}

// LoadEnv loads a .env file from the working directory, if any. Variables
// already present in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Display.Decimals < 0 {
		cfg.Display.Decimals = 0
	}
	if cfg.Watch.IntervalSec <= 0 {
		cfg.Watch.IntervalSec = DefaultConfig().Watch.IntervalSec
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetDBPath returns the ledger database path from env var, config, or the
// default data dir, in that order.
func GetDBPath(cfg Config) string {
	if p := os.Getenv(EnvDB); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(DataDir(), "moneymirror.db")
}

// GetLogLevel returns the log level from env var or config.
func GetLogLevel(cfg Config) string {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		return lvl
	}
	return cfg.General.LogLevel
}

// GetCurrency returns the ISO currency code from env var or config.
func GetCurrency(cfg Config) string {
	if c := os.Getenv(EnvCurrency); c != "" {
		return c
	}
	if cfg.Display.Currency == "" {
		return DefaultConfig().Display.Currency
	}
	return cfg.Display.Currency
}
