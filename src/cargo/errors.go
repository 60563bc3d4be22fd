package cargo

import (
	"errors"
	"fmt"
)

// Sentinel errors for outcomes the caller branches on with errors.Is.
var (
	// ErrBuildFailed is returned when cargo exits unsuccessfully, or
	// exits successfully without reporting any compiler artifact. Both
	// causes share one error because the remedy is the same: read the
	// diagnostics already streamed to stderr.
	ErrBuildFailed = errors.New("cargo: build failed")

	// ErrCdylibNotFound is returned when the build succeeded and reported
	// an artifact, but none of its output files carry a shared-library
	// extension (the compiled unit was not a cdylib).
	ErrCdylibNotFound = errors.New("cargo: artifact contains no cdylib")
)

// LaunchError reports that the cargo executable could not be started at
// all (not found on PATH, permission denied). Distinct from a build that
// runs and fails.
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cargo: launching cargo: %v", e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// DecodeError reports a line of the build-progress stream that did not
// parse as any known message shape. Parsing aborts at the first such
// line: a malformed stream usually means a cargo version mismatch the
// caller should know about, not a glitch to skip.
type DecodeError struct {
	Line string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cargo: decoding message %q: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MetadataError reports that the output of `cargo metadata` did not
// decode into the expected document shape.
type MetadataError struct {
	Err error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("cargo: decoding metadata: %v", e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }
