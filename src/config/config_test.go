package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Build.Features) != 0 || cfg.Build.Parallel != 0 {
		t.Errorf("expected zero-value defaults, got %+v", cfg)
	}
}

func TestLoad_ParsesBuildSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cdylib.yml")
	content := `
build:
  features: [unstable, ffi]
  parallel: 4
  env:
    RUSTFLAGS: "--cfg demo"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []string{"unstable", "ffi"}; !reflect.DeepEqual(cfg.Build.Features, want) {
		t.Errorf("expected features %v, got %v", want, cfg.Build.Features)
	}
	if cfg.Build.Parallel != 4 {
		t.Errorf("expected parallel 4, got %d", cfg.Build.Parallel)
	}
	if cfg.Build.Env["RUSTFLAGS"] != "--cfg demo" {
		t.Errorf("expected RUSTFLAGS override, got %v", cfg.Build.Env)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cdylib.yml")
	if err := os.WriteFile(path, []byte("build: [not: a: map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
