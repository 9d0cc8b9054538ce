// Package config loads process settings from LOADOUT_* environment variables.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

const appName = "loadout"

// Config holds process level settings. Command line flags override these.
type Config struct {
	// CatalogPath is a catalog file; empty uses the bundled sample catalog
	CatalogPath   string `env:"LOADOUT_CATALOG_PATH"`
	CatalogFormat string `env:"LOADOUT_CATALOG_FORMAT"`

	// RulesPath is a skill rules YAML file; empty uses the built-in rules
	RulesPath string `env:"LOADOUT_RULES_PATH"`

	// RedisAddr enables Redis backed selections; empty keeps them in memory
	RedisAddr     string `env:"LOADOUT_REDIS_ADDR"`
	RedisPassword string `env:"LOADOUT_REDIS_PASSWORD"`
	RedisDB       int    `env:"LOADOUT_REDIS_DB" envDefault:"0"`
	RedisTLS      bool   `env:"LOADOUT_REDIS_TLS" envDefault:"false"`

	// StateDir keeps selections on disk when Redis is not configured; empty
	// means $XDG_STATE_HOME/loadout
	StateDir string `env:"LOADOUT_STATE_DIR"`

	Profile      string `env:"LOADOUT_PROFILE" envDefault:"default"`
	LogLevel     string `env:"LOADOUT_LOG_LEVEL" envDefault:"warn"`
	ImageBaseURL string `env:"LOADOUT_IMAGE_BASE_URL"`
}

// Load reads the process environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom reads the given variables instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have a fixed vocabulary
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if strings.TrimSpace(c.Profile) == "" {
		vb.RequiredField("Profile")
	}
	if _, err := c.SlogLevel(); err != nil {
		vb.InvalidField("LogLevel", "must be debug, info, warn or error")
	}
	if c.RedisDB < 0 {
		vb.InvalidField("RedisDB", "cannot be negative")
	}

	return vb.Build()
}

// SelectionDir is the directory for file backed selections
func (c *Config) SelectionDir() (string, error) {
	if c.StateDir != "" {
		return c.StateDir, nil
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeFailedPrecondition,
			"no state directory: set LOADOUT_STATE_DIR or LOADOUT_REDIS_ADDR")
	}
	return filepath.Join(home, ".local", "state", appName), nil
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, errors.InvalidArgumentf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}
