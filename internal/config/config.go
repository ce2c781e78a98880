// Package config loads the optional .streak.yaml file with cosmetic UI
// settings. Game rules are fixed and not configurable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".streak.yaml"

// Default values for UI settings.
const (
	DefaultBarWidth = 10
	MaxBarWidth     = 64
)

// UI holds display settings.
type UI struct {
	NoColor  bool `yaml:"no_color"`
	BarWidth int  `yaml:"bar_width"`
}

// Config represents the .streak.yaml file.
type Config struct {
	UI UI `yaml:"ui"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			NoColor:  false,
			BarWidth: DefaultBarWidth,
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Load reads and parses .streak.yaml from the given base path. A missing
// file yields the default config. Missing fields get defaults.
func Load(basePath string) (*Config, error) {
	path := filepath.Join(basePath, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all config values are valid.
func Validate(cfg *Config) error {
	if cfg.UI.BarWidth < 1 || cfg.UI.BarWidth > MaxBarWidth {
		return ValidationError{
			Field:   "ui.bar_width",
			Message: fmt.Sprintf("must be between 1 and %d", MaxBarWidth),
		}
	}
	return nil
}
