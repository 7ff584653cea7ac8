// Package config loads daemon configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the daemon configuration, populated from ARCANA_* environment
// variables with sensible defaults for a local, single-user setup.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"ARCANA_ADDR" envDefault:":8080"`
	// DBPath overrides the default database location (~/.arcana/arcana.db).
	DBPath string `env:"ARCANA_DB"`
	// CameraID is the capture device index.
	CameraID int `env:"ARCANA_CAMERA" envDefault:"0"`
	// CooldownMs is the debounce cooldown between emitted gestures.
	CooldownMs int `env:"ARCANA_COOLDOWN_MS" envDefault:"600"`
	// MotionThreshold is the percentage of changed pixels that counts as
	// motion.
	MotionThreshold float64 `env:"ARCANA_MOTION_THRESHOLD" envDefault:"1.0"`
	// Interpreter is an optional command run for each confirmed card.
	Interpreter string `env:"ARCANA_INTERPRETER"`
	// InterpreterTimeoutMs bounds how long the interpreter may run.
	InterpreterTimeoutMs int `env:"ARCANA_INTERPRETER_TIMEOUT_MS" envDefault:"10000"`
	// Tray enables the system tray menu.
	Tray bool `env:"ARCANA_TRAY" envDefault:"true"`
	// WebDir is an optional directory of static files to serve at /.
	WebDir string `env:"ARCANA_WEB_DIR"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Cooldown returns the debounce cooldown as a duration.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownMs) * time.Millisecond
}

// InterpreterTimeout returns the interpreter timeout as a duration.
func (c *Config) InterpreterTimeout() time.Duration {
	return time.Duration(c.InterpreterTimeoutMs) * time.Millisecond
}
