package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.WindowWidth != 1200 || cfg.WindowHeight != 800 {
		t.Errorf("Expected window 1200x800, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.TPS != 60 {
		t.Errorf("Expected TPS 60, got %d", cfg.TPS)
	}
	if !cfg.AudioEnabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.TelemetryEnabled {
		t.Error("Expected telemetry disabled by default")
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected seed 0, got %d", cfg.Seed)
	}
}

func TestLoadMatchesDefaultConfig(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := DefaultConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("Expected Load on an empty environment to equal DefaultConfig()\ngot  %+v\nwant %+v", cfg, want)
	}
}

func TestLoadKeepsDefaultsForUnsetVars(t *testing.T) {
	t.Setenv("WORDEXPLORER_TELEMETRY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := DefaultConfig()
	want.TelemetryEnabled = true
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Expected only telemetry to change\ngot  %+v\nwant %+v", cfg, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WORDEXPLORER_SEED", "42")
	t.Setenv("WORDEXPLORER_AUDIO", "false")
	t.Setenv("WORDEXPLORER_LOG_LEVEL", "debug")
	t.Setenv("WORDEXPLORER_WINDOW_WIDTH", "600")
	t.Setenv("WORDEXPLORER_WINDOW_HEIGHT", "400")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.AudioEnabled {
		t.Error("Expected audio disabled")
	}
	if cfg.WindowWidth != 600 || cfg.WindowHeight != 400 {
		t.Errorf("Expected window 600x400, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	lvl, err := cfg.Level()
	if err != nil || lvl != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v (%v)", lvl, err)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("WORDEXPLORER_TPS=30\n"), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	// Restore whatever godotenv sets once the test ends.
	t.Setenv("WORDEXPLORER_TPS", "")
	os.Unsetenv("WORDEXPLORER_TPS")

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TPS != 30 {
		t.Errorf("Expected TPS 30 from .env, got %d", cfg.TPS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.WindowWidth = 0 }, true},
		{"negative tps", func(c *Config) { c.TPS = -1 }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
