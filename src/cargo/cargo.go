// Package cargo drives cargo as a subprocess: it assembles build
// invocations, streams cargo's line-delimited JSON progress messages, and
// extracts the path of the produced dynamic-library artifact.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Summpot/test-cdylib/src/rustflags"
)

// Cargo wraps cargo invocations.
type Cargo struct {
	Verbose bool

	// Stderr receives the build's live diagnostic stream and, when
	// Verbose is set, an echo of each command before it runs.
	Stderr io.Writer

	// Env holds caller-supplied build-flag environment overrides,
	// injected into every build invocation (RUSTFLAGS is appended to the
	// inherited value rather than replaced).
	Env map[string]string
}

// New creates a Cargo runner with diagnostics going to the process
// stderr.
func New(verbose bool) *Cargo {
	return &Cargo{
		Verbose: verbose,
		Stderr:  os.Stderr,
	}
}

// path returns the cargo executable, honoring the CARGO environment
// variable the same way cargo's own tooling does.
func path() string {
	if p := os.Getenv("CARGO"); p != "" {
		return p
	}
	return "cargo"
}

// buildArgs constructs the argument list for one build invocation.
// Offline mode suppresses network access during dependency resolution
// and is included only when the installed cargo supports it.
func buildArgs(offline bool, features []string) []string {
	var args []string
	if offline {
		args = append(args, "--offline")
	}
	args = append(args, "build", "--message-format=json")
	args = append(args, featureArgs(features)...)
	return args
}

// featureArgs maps a feature set onto cargo flags: an explicit set
// disables default features and passes the set comma-joined; nil means
// cargo's defaults apply and no flags are emitted.
func featureArgs(features []string) []string {
	if features == nil {
		return nil
	}
	return []string{"--no-default-features", "--features", strings.Join(features, ",")}
}

// processResult is the raw outcome of one cargo run: whether it exited
// successfully, plus its captured stdout. It is consumed immediately by
// message parsing and not retained.
type processResult struct {
	success bool
	stdout  []byte
}

// run executes cargo to completion in dir, capturing stdout and
// forwarding stderr live. A nonzero exit is a valid processResult; only
// failure to start the process at all is an error.
func (c *Cargo) run(ctx context.Context, dir string, args []string, extraEnv []string) (*processResult, error) {
	bin := path()

	if c.Verbose {
		fmt.Fprintf(c.stderr(), "exec: %s %s\n", bin, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), extraEnv...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = c.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &processResult{success: false, stdout: stdout.Bytes()}, nil
		}
		return nil, &LaunchError{Err: err}
	}
	return &processResult{success: true, stdout: stdout.Bytes()}, nil
}

func (c *Cargo) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}

// buildEnv assembles the extra environment for a build invocation: the
// caller's build-flag overrides plus an optional CARGO_TARGET_DIR.
func (c *Cargo) buildEnv(targetDir string) []string {
	env := rustflags.Env(c.Env)
	if targetDir != "" {
		env = append(env, "CARGO_TARGET_DIR="+targetDir)
	}
	return env
}
