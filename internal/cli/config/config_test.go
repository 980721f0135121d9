// Package config provides CLI configuration for tasktrack.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/tasktrack-go/internal/core/domain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !strings.HasSuffix(cfg.Store.Path, filepath.Join(".tasktrack", "tasks.json")) {
		t.Errorf("default store path = %q, want under ~/.tasktrack", cfg.Store.Path)
	}
	if cfg.Output.Format != "plain" {
		t.Errorf("default output format = %q, want plain", cfg.Output.Format)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("default log level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), Overrides{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Path != DefaultStorePath() {
		t.Errorf("Store.Path = %q, want default", cfg.Store.Path)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "store:\n  path: /data/tasks.json\noutput:\n  format: table\nlog:\n  level: info\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Path != "/data/tasks.json" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  path: /from/file\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("TASKTRACK_STORE_PATH", "/from/env")

	t.Run("env over file", func(t *testing.T) {
		cfg, err := Load(path, Overrides{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Store.Path != "/from/env" {
			t.Errorf("Store.Path = %q, want /from/env", cfg.Store.Path)
		}
	})

	t.Run("flag over env", func(t *testing.T) {
		cfg, err := Load(path, Overrides{StorePath: "/from/flag"})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Store.Path != "/from/flag" {
			t.Errorf("Store.Path = %q, want /from/flag", cfg.Store.Path)
		}
	})
}

func TestLoad_VerboseOverridesLogLevel(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), Overrides{Verbose: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"yaml output", func(c *Config) { c.Output.Format = "yaml" }, false},
		{"unknown output", func(c *Config) { c.Output.Format = "xml" }, true},
		{"empty store path", func(c *Config) { c.Store.Path = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("Validate() error = %v, want invalid argument", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}
