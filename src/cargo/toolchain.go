package cargo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Toolchain describes the installed cargo binary.
type Toolchain struct {
	// Raw is the first line of `cargo --version` output.
	Raw string

	// Version is the parsed release version.
	Version *semver.Version

	// Offline reports whether this cargo accepts --offline.
	Offline bool
}

var (
	offlineOnce      sync.Once
	offlineSupported bool
)

// SupportsOffline probes whether cargo accepts the --offline flag by
// running `cargo --version --offline` and checking only the exit code.
// A probe that cannot run at all counts as "unsupported". The result is
// cached for the process lifetime; builds are infrequent enough that the
// first caller's context covers the one real probe.
func SupportsOffline(ctx context.Context) bool {
	offlineOnce.Do(func() {
		offlineSupported = exec.CommandContext(ctx, path(), "--version", "--offline").Run() == nil
	})
	return offlineSupported
}

// Probe runs `cargo --version` and parses the result. Launch failure
// yields a LaunchError; unparsable output yields the raw line with a nil
// Version.
func Probe(ctx context.Context) (*Toolchain, error) {
	out, err := exec.CommandContext(ctx, path(), "--version").Output()
	if err != nil {
		return nil, &LaunchError{Err: err}
	}

	raw := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	tc := &Toolchain{
		Raw:     raw,
		Offline: SupportsOffline(ctx),
	}
	if v, err := parseVersion(raw); err == nil {
		tc.Version = v
	}
	return tc, nil
}

// parseVersion extracts the release version from a line like
// "cargo 1.82.0 (8f40fc59f 2024-08-21)".
func parseVersion(line string) (*semver.Version, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("unexpected version output %q", line)
	}
	v, err := semver.NewVersion(fields[1])
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", fields[1], err)
	}
	return v, nil
}
