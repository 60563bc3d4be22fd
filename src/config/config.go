// Package config loads the optional CLI configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".cdylib.yml"

// Config is the top-level CLI configuration.
type Config struct {
	Build BuildConfig `yaml:"build"`
}

// BuildConfig holds defaults for build invocations. Command-line flags
// override these per run.
type BuildConfig struct {
	// Features is the explicit feature set to enable. Empty means
	// auto-discover defaults from the crate manifest.
	Features []string `yaml:"features"`

	// Env holds build-flag environment overrides passed through to every
	// cargo invocation (RUSTFLAGS values are appended, not replaced).
	Env map[string]string `yaml:"env"`

	// Parallel bounds concurrent project builds. 0 means one at a time.
	Parallel int `yaml:"parallel"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{}
}
