// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings. Precedence, lowest first: defaults,
// config file, environment, flags.
type Config struct {
	// Output selects the result encoding.
	Output string `yaml:"output" validate:"required,oneof=json yaml"`
	// LogLevel is the minimum slog level written to stderr.
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
}

const (
	envOutput   = "TWOPTR_OUTPUT"
	envLogLevel = "TWOPTR_LOG_LEVEL"
)

var configValidate = validator.New()

// DefaultConfig returns JSON output at warn level.
func DefaultConfig() Config {
	return Config{
		Output:   "json",
		LogLevel: "warn",
	}
}

// loadConfig resolves defaults, then path (if non-empty), then environment.
// A missing path is an error: it was asked for explicitly.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if v := os.Getenv(envOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// slogLevel maps LogLevel to a slog.Level; Validate must have passed.
func (c Config) slogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
