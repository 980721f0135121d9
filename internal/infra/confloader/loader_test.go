// Package confloader provides the configuration loading mechanism.
package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Store struct {
		Path string `koanf:"path"`
	} `koanf:"store"`
	Output struct {
		Format string `koanf:"format"`
	} `koanf:"output"`
}

func TestLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "store:\n  path: /data/tasks.json\noutput:\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var cfg testConfig
	loader := NewLoader(WithConfigFile(path))
	if err := loader.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Path != "/data/tasks.json" {
		t.Errorf("Store.Path = %q, want %q", cfg.Store.Path, "/data/tasks.json")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
}

func TestLoader_MissingFileIsSkipped(t *testing.T) {
	var cfg testConfig
	loader := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "absent.yaml")))
	if err := loader.Load(&cfg); err != nil {
		t.Fatalf("Load() with missing file error = %v", err)
	}
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  path: /from/file\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("TASKTRACK_STORE_PATH", "/from/env")

	var cfg testConfig
	loader := NewLoader(WithConfigFile(path))
	if err := loader.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Path != "/from/env" {
		t.Errorf("Store.Path = %q, want env value", cfg.Store.Path)
	}
}

func TestLoader_EnvTransformer(t *testing.T) {
	t.Setenv("TASKTRACK_OUTPUT_FORMAT", "yaml")

	var cfg testConfig
	loader := NewLoader()
	if err := loader.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "yaml")
	}
}

func TestLoader_LoadMapOverridesAll(t *testing.T) {
	t.Setenv("TASKTRACK_STORE_PATH", "/from/env")

	loader := NewLoader()
	var cfg testConfig
	if err := loader.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := loader.LoadMap(map[string]any{"store.path": "/from/flag"}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	if err := loader.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if cfg.Store.Path != "/from/flag" {
		t.Errorf("Store.Path = %q, want flag value", cfg.Store.Path)
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	p := mapProvider{}
	if _, err := p.ReadBytes(); err == nil {
		t.Error("ReadBytes should not be supported")
	}
}
