// Package config holds the runtime settings for the game binary. Settings
// come from the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all settings for a run.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"`
	LogPretty bool   `env:"LOG_PRETTY"`

	// Seed for random number generation. 0 means a time-based seed.
	Seed int64 `env:"SEED"`

	// Window
	WindowTitle  string `env:"WINDOW_TITLE"`
	WindowWidth  int    `env:"WINDOW_WIDTH"`
	WindowHeight int    `env:"WINDOW_HEIGHT"`
	Resizable    bool   `env:"RESIZABLE"`
	TPS          int    `env:"TPS"`

	// Collaborators
	AudioEnabled     bool `env:"AUDIO"`
	TelemetryEnabled bool `env:"TELEMETRY"`
}

// Prefix is prepended to every environment variable name.
const Prefix = "WORDEXPLORER_"

// DefaultConfig returns the settings used when nothing is overridden. It is
// the only place defaults are defined; Load parses the environment on top.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		LogPretty:    true,
		WindowTitle:  "Word Explorer",
		WindowWidth:  1200,
		WindowHeight: 800,
		Resizable:    true,
		TPS:          60,
		AudioEnabled: true,
	}
}

// Load reads the given .env files (missing files are ignored) and parses the
// environment on top of the defaults.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for values the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
