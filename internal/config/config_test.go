package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsMatchEngine(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Forecast.SprintCount != 4 || cfg.Forecast.SprintLengthDays != 14 {
		t.Fatalf("default sprint config = %d x %dd, want 4 x 14d",
			cfg.Forecast.SprintCount, cfg.Forecast.SprintLengthDays)
	}
	if len(cfg.Forecast.Weights) != cfg.Forecast.SprintCount {
		t.Fatalf("%d weights for %d sprints", len(cfg.Forecast.Weights), cfg.Forecast.SprintCount)
	}

	var sum float64
	for _, w := range cfg.Forecast.Weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Fatalf("default weights sum to %.6f", sum)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Forecast.SprintCount = 6
	cfg.Forecast.SprintLengthDays = 7
	cfg.General.Author = "pm@example.com"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file missing after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Forecast.SprintCount != 6 || loaded.Forecast.SprintLengthDays != 7 {
		t.Fatalf("loaded %d x %dd, want 6 x 7d",
			loaded.Forecast.SprintCount, loaded.Forecast.SprintLengthDays)
	}
	if loaded.General.Author != "pm@example.com" {
		t.Fatalf("author = %q", loaded.General.Author)
	}
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "nothing-here"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Forecast.SprintCount != DefaultConfig().Forecast.SprintCount {
		t.Fatal("missing file should yield defaults")
	}

	if _, err := os.Stat(ConfigPath()); !os.IsNotExist(err) {
		t.Fatal("Load must not create the config file")
	}
}
