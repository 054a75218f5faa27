// Package config reads the server settings from the environment. A .env file,
// when present, is loaded into the environment by main before Load runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Addr      string `env:"METAGAME_ADDR"       envDefault:"0.0.0.0:8080"`
	LogLevel  string `env:"METAGAME_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"METAGAME_LOG_FORMAT" envDefault:"console"`
	StaticDir string `env:"METAGAME_STATIC_DIR" envDefault:"./static"`

	// Empty keeps the results in memory for the life of the process.
	ResultsDSN string `env:"METAGAME_RESULTS_DSN"`

	// Zero seeds every session from crypto/rand.
	Seed uint64 `env:"METAGAME_SEED" envDefault:"0"`

	SessionIdle   time.Duration `env:"METAGAME_SESSION_IDLE"   envDefault:"2h"`
	SweepInterval time.Duration `env:"METAGAME_SWEEP_INTERVAL" envDefault:"5m"`
	CookieName    string        `env:"METAGAME_COOKIE_NAME"    envDefault:"metagame_session"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be console or json, got %q", c.LogFormat)
	}
	if c.SessionIdle <= 0 {
		return fmt.Errorf("session idle timeout must be positive, got %s", c.SessionIdle)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", c.SweepInterval)
	}
	if c.CookieName == "" {
		return errors.New("cookie name must not be empty")
	}
	return nil
}

func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// HasStaticDir reports whether the static asset directory exists.
func (c Config) HasStaticDir() bool {
	info, err := os.Stat(c.StaticDir)
	if err != nil {
		return false
	}
	return info.IsDir()
}
