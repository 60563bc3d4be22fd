// Package features discovers a crate's default feature set from its
// Cargo.toml manifest.
package features

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Find returns the crate's resolved default features, or nil when none
// can be discovered. Discovery is best-effort: a missing manifest, an
// unparsable manifest, or a crate without a `default` feature all yield
// nil, which downstream means "pass no feature flags and let cargo use
// its own defaults".
func Find(dir string) []string {
	data, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		return nil
	}
	resolved, err := Resolve(data)
	if err != nil {
		return nil
	}
	return resolved
}

// Resolve parses a Cargo.toml manifest and expands its `default` feature
// entry into the full set of features it enables. Feature groups expand
// recursively; `dep:` entries and `dep/feature` entries activate
// dependencies rather than features of this crate and are skipped. The
// result is sorted. A manifest without a [features] table or without a
// `default` entry resolves to nil.
func Resolve(manifest []byte) ([]string, error) {
	var cargo struct {
		Features map[string][]string `toml:"features"`
	}
	if err := toml.Unmarshal(manifest, &cargo); err != nil {
		return nil, fmt.Errorf("features: parse Cargo.toml: %w", err)
	}

	defaults, ok := cargo.Features["default"]
	if !ok {
		return nil, nil
	}

	enabled := make(map[string]bool)
	var expand func(entries []string)
	expand = func(entries []string) {
		for _, entry := range entries {
			if strings.HasPrefix(entry, "dep:") || strings.Contains(entry, "/") {
				continue
			}
			if enabled[entry] {
				continue
			}
			enabled[entry] = true
			if group, ok := cargo.Features[entry]; ok {
				expand(group)
			}
		}
	}
	expand(defaults)

	if len(enabled) == 0 {
		return nil, nil
	}

	resolved := make([]string, 0, len(enabled))
	for name := range enabled {
		resolved = append(resolved, name)
	}
	sort.Strings(resolved)
	return resolved, nil
}
