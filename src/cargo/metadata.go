package cargo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os/exec"
)

// Metadata holds the two workspace paths a host program needs to locate
// build output: cargo's shared target directory and the workspace root.
type Metadata struct {
	TargetDirectory string `json:"target_directory"`
	WorkspaceRoot   string `json:"workspace_root"`
}

// Metadata runs `cargo metadata --format-version=1` in dir and decodes
// its output. The whole document must decode and carry both paths; there
// is no partial success.
func (c *Cargo) Metadata(ctx context.Context, dir string) (*Metadata, error) {
	cmd := exec.CommandContext(ctx, path(), "metadata", "--format-version=1")
	cmd.Dir = dir
	cmd.Stderr = io.Discard

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// cargo ran but reported failure; whatever it wrote will not
			// decode, which is the caller-visible error.
			return decodeMetadata(out)
		}
		return nil, &LaunchError{Err: err}
	}
	return decodeMetadata(out)
}

// decodeMetadata parses a metadata document. Unknown fields are ignored;
// missing required fields are structural failures.
func decodeMetadata(data []byte) (*Metadata, error) {
	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, &MetadataError{Err: err}
	}
	if md.TargetDirectory == "" {
		return nil, &MetadataError{Err: errors.New("missing target_directory")}
	}
	if md.WorkspaceRoot == "" {
		return nil, &MetadataError{Err: errors.New("missing workspace_root")}
	}
	return &md, nil
}
