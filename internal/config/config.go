// Package config loads and saves the hourburn TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mfelsing/hourburn/internal/forecast"
)

// Config holds all hourburn configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Forecast ForecastConfig `toml:"forecast"`
	API      APIConfig      `toml:"api"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath string `toml:"db_path,omitempty"`
	Author string `toml:"author,omitempty"` // default author for overrides and budget entries
}

// ForecastConfig holds the engine tuning knobs. Parameter validation happens
// at the engine call boundary, not at load time, so a broken config file
// still loads and can be inspected and fixed.
type ForecastConfig struct {
	SprintCount      int       `toml:"sprint_count"`
	SprintLengthDays int       `toml:"sprint_length_days"`
	Weights          []float64 `toml:"weights"`
	BandMultiplier   float64   `toml:"band_multiplier"`
	TrendThreshold   float64   `toml:"trend_threshold"`
}

// APIConfig holds the forecast API server settings.
type APIConfig struct {
	Addr string `toml:"addr,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	p := forecast.DefaultParams()
	return Config{
		Forecast: ForecastConfig{
			SprintCount:      p.SprintCount,
			SprintLengthDays: p.SprintLengthDays,
			Weights:          p.Weights,
			BandMultiplier:   p.BandMultiplier,
			TrendThreshold:   p.TrendThreshold,
		},
		API: APIConfig{Addr: "127.0.0.1:8491"},
	}
}

// Params converts the forecast section into engine parameters.
func (c Config) Params() forecast.Params {
	return forecast.Params{
		SprintCount:      c.Forecast.SprintCount,
		SprintLengthDays: c.Forecast.SprintLengthDays,
		Weights:          c.Forecast.Weights,
		BandMultiplier:   c.Forecast.BandMultiplier,
		TrendThreshold:   c.Forecast.TrendThreshold,
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hourburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hourburn")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
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

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
