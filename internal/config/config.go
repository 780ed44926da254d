// Package config provides configuration management for shapelab.
//
// Config file locations (priority order):
//  1. $SHAPELAB_CONFIG
//  2. ./shapelab.yaml
//  3. $XDG_CONFIG_HOME/shapelab/config.yaml
//  4. ~/.config/shapelab/config.yaml
//  5. /etc/shapelab/config.yaml
//
// When no file is found, defaults apply.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration
type Config struct {
	Version  int            `yaml:"version"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Output   OutputConfig   `yaml:"output"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// DatabaseConfig selects the SQLite database used by the catalog join
type DatabaseConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// OutputConfig selects the default report format
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=yaml json"`
}

var validate = validator.New()

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		// No config found - return defaults
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Log:      LogConfig{Level: "info", Format: "console"},
		Database: DatabaseConfig{Path: ":memory:"},
		Output:   OutputConfig{Format: "yaml"},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Database.Path == "" {
		c.Database.Path = d.Database.Path
	}
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}
}

// Validate checks field values against their allowed sets
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
