package app

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath points at a definition file or a directory tree of them.
	ConfigPath string

	OutDir      string `env:"CONDGEN_OUT_DIR"`
	ProfileName string
	OS          string
	Arch        string
	PtrBits     int
	Features    []string
	SetVars     []string
	DryRun      bool

	LogFormat   string `env:"CONDGEN_LOG_FORMAT"`
	LogLevel    string `env:"CONDGEN_LOG_LEVEL"`
	WorkerCount int    `env:"CONDGEN_WORKERS"`
}

// Defaults returns the baseline configuration with environment variables
// applied on top. Command-line flags are parsed over the result, so the
// precedence is flags over environment over built-in defaults.
func Defaults() (Config, error) {
	cfg := Config{
		OutDir:      ".",
		LogFormat:   "text",
		LogLevel:    "info",
		WorkerCount: 4,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewConfig validates a fully assembled configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}
	return &cfg, nil
}
