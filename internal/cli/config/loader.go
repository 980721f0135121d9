// Package config provides CLI configuration for tasktrack.
package config

import (
	"fmt"

	"github.com/yndnr/tasktrack-go/internal/core/domain"
	"github.com/yndnr/tasktrack-go/internal/infra/confloader"
)

// Overrides carries values taken from command-line flags. Empty
// fields leave the underlying configuration untouched.
type Overrides struct {
	StorePath string
	Output    string
	Verbose   bool
}

// Load resolves the effective configuration. path selects the config
// file; empty means the default location, and a missing file is fine.
// Flag overrides win over env, which wins over the file.
func Load(path string, overrides Overrides) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := Default()

	loader := confloader.NewLoader(confloader.WithConfigFile(path))
	if err := loader.Load(cfg); err != nil {
		return nil, domain.ErrInvalidArgument.WithDetails("config file " + path).WithCause(err)
	}

	flagValues := map[string]any{}
	if overrides.StorePath != "" {
		flagValues["store.path"] = overrides.StorePath
	}
	if overrides.Output != "" {
		flagValues["output.format"] = overrides.Output
	}
	if overrides.Verbose {
		flagValues["log.level"] = "debug"
	}
	if len(flagValues) > 0 {
		if err := loader.LoadMap(flagValues); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that would be silently
// misinterpreted downstream.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return domain.ErrInvalidArgument.WithDetails("store path must not be empty")
	}

	switch c.Output.Format {
	case "plain", "table", "json", "yaml":
	default:
		return domain.ErrInvalidArgument.WithDetails(
			fmt.Sprintf("unknown output format %q (want plain, table, json, or yaml)", c.Output.Format))
	}

	return nil
}
