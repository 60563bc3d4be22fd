package cargo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Known values of the `reason` field in cargo's JSON message stream.
// Unknown reasons are tolerated and ignored so additive schema changes
// in newer cargo releases don't break parsing.
const (
	reasonCompilerMessage  = "compiler-message"
	reasonCompilerArtifact = "compiler-artifact"
)

// message is one line of cargo's --message-format=json output. Only the
// fields acted on are decoded; everything else rides along unread.
type message struct {
	Reason    string           `json:"reason"`
	Message   *renderedMessage `json:"message"`
	Filenames []string         `json:"filenames"`
}

// renderedMessage carries the human-readable form of a compiler
// diagnostic.
type renderedMessage struct {
	Rendered string `json:"rendered"`
}

// parseOutput walks the captured build output line by line: diagnostics
// are echoed to diag in stream order, compiler-artifact messages are
// retained last-wins, and the retained artifact's filenames are filtered
// down to the one produced shared library.
//
// A nonzero exit always yields ErrBuildFailed, even when an artifact was
// reported; so does a successful exit that never reported one.
func parseOutput(res *processResult, diag io.Writer) (string, error) {
	var artifact []string
	haveArtifact := false

	for _, line := range bytes.Split(res.stdout, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		msg, err := decodeMessage(line)
		if err != nil {
			return "", err
		}

		switch msg.Reason {
		case reasonCompilerMessage:
			echoDiagnostic(diag, msg.Message.Rendered)
		case reasonCompilerArtifact:
			artifact = msg.Filenames
			haveArtifact = true
		}
	}

	if !res.success {
		return "", ErrBuildFailed
	}
	if !haveArtifact {
		return "", ErrBuildFailed
	}
	return selectCdylib(artifact)
}

// decodeMessage parses one stream line. The structural requirement is a
// JSON object with a non-empty string reason; a compiler-message must
// additionally carry its rendered diagnostic. Anything else aborts the
// stream with a DecodeError.
func decodeMessage(line []byte) (*message, error) {
	var msg message
	if err := json.Unmarshal(line, &msg); err != nil {
		return nil, &DecodeError{Line: string(line), Err: err}
	}
	if msg.Reason == "" {
		return nil, &DecodeError{Line: string(line), Err: errors.New("missing message reason")}
	}
	if msg.Reason == reasonCompilerMessage && msg.Message == nil {
		return nil, &DecodeError{Line: string(line), Err: errors.New("compiler-message without message body")}
	}
	return &msg, nil
}

// echoDiagnostic writes one rendered diagnostic to the stream, ensuring
// exactly one trailing newline (cargo usually includes it already).
func echoDiagnostic(diag io.Writer, rendered string) {
	if rendered == "" {
		return
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	fmt.Fprint(diag, rendered)
}
