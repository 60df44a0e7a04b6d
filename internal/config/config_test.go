package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Currency != "INR" {
		t.Errorf("Currency = %q, want INR", cfg.Display.Currency)
	}
	if cfg.Display.Decimals != 2 {
		t.Errorf("Decimals = %d, want 2", cfg.Display.Decimals)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.General.LogLevel)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.WeeklyMode = true
	cfg.Display.Currency = "EUR"
	cfg.Display.Decimals = 0
	cfg.Watch.IntervalSec = 60

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "moneymirror", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[general\nweekly_mode = "), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
	if cfg.Display.Currency != "INR" {
		t.Errorf("Currency on error = %q, want default INR", cfg.Display.Currency)
	}
}

func TestEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DBPath = "/from/config.db"

	t.Setenv(EnvDB, "")
	if got := GetDBPath(cfg); got != "/from/config.db" {
		t.Errorf("GetDBPath() = %q, want /from/config.db", got)
	}

	t.Setenv(EnvDB, "/from/env.db")
	if got := GetDBPath(cfg); got != "/from/env.db" {
		t.Errorf("GetDBPath() = %q, want /from/env.db", got)
	}

	t.Setenv(EnvCurrency, "USD")
	if got := GetCurrency(cfg); got != "USD" {
		t.Errorf("GetCurrency() = %q, want USD", got)
	}

	t.Setenv(EnvLogLevel, "debug")
	if got := GetLogLevel(cfg); got != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug", got)
	}
}

func TestGetDBPath_DefaultsToDataDir(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv(EnvDB, "")

	want := filepath.Join(dataHome, "moneymirror", "moneymirror.db")
	if got := GetDBPath(DefaultConfig()); got != want {
		t.Errorf("GetDBPath() = %q, want %q", got, want)
	}
}
