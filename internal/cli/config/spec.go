// Package config provides CLI configuration for tasktrack.
package config

import (
	"os"
	"path/filepath"
)

// Config is the configuration for tasktrack.
type Config struct {
	// Store holds the persistence settings.
	Store StoreConfig `koanf:"store" json:"store" yaml:"store"`

	// Output holds the default rendering settings.
	Output OutputConfig `koanf:"output" json:"output" yaml:"output"`

	// Log holds the diagnostics settings.
	Log LogConfig `koanf:"log" json:"log" yaml:"log"`
}

// StoreConfig configures the persisted task file.
type StoreConfig struct {
	// Path is the location of the JSON task file.
	Path string `koanf:"path" json:"path" yaml:"path"`
}

// OutputConfig configures default output rendering.
type OutputConfig struct {
	// Format is one of: plain, table, json, yaml.
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is one of: debug, info, warn, error.
	Level string `koanf:"level" json:"level" yaml:"level"`
	// Format is one of: text, json.
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tasktrack", "config.yaml")
}

// DefaultStorePath returns the default task file path.
func DefaultStorePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tasktrack", "tasks.json")
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Store:  StoreConfig{Path: DefaultStorePath()},
		Output: OutputConfig{Format: "plain"},
		Log:    LogConfig{Level: "warn", Format: "text"},
	}
}
