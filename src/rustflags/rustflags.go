// Package rustflags splices caller-supplied build-flag environment
// overrides into a cargo invocation's environment.
package rustflags

import (
	"os"
	"sort"
)

// EnvKey is the environment variable cargo forwards to rustc.
const EnvKey = "RUSTFLAGS"

// Append joins extra flags onto an existing RUSTFLAGS value.
func Append(existing string, flags string) string {
	if existing == "" {
		return flags
	}
	if flags == "" {
		return existing
	}
	return existing + " " + flags
}

// Env converts caller-supplied build-flag overrides into KEY=VALUE
// entries suitable for exec.Cmd.Env. Overrides are opaque pass-throughs,
// except RUSTFLAGS, which is appended to any value already present in the
// process environment rather than clobbering it. Keys are emitted in
// sorted order so invocations are reproducible.
func Env(overrides map[string]string) []string {
	if len(overrides) == 0 {
		return nil
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		v := overrides[k]
		if k == EnvKey {
			v = Append(os.Getenv(EnvKey), v)
		}
		env = append(env, k+"="+v)
	}
	return env
}
