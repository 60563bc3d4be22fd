package cargo

import (
	"errors"
	"testing"
)

func TestDecodeMetadata_IgnoresUnknownFields(t *testing.T) {
	doc := `{
		"target_directory": "/x/target",
		"workspace_root": "/x",
		"packages": [{"name": "demo"}],
		"version": 1
	}`

	md, err := decodeMetadata([]byte(doc))
	if err != nil {
		t.Fatalf("decodeMetadata: %v", err)
	}
	if md.TargetDirectory != "/x/target" {
		t.Errorf("expected /x/target, got %s", md.TargetDirectory)
	}
	if md.WorkspaceRoot != "/x" {
		t.Errorf("expected /x, got %s", md.WorkspaceRoot)
	}
}

func TestDecodeMetadata_MissingWorkspaceRoot(t *testing.T) {
	_, err := decodeMetadata([]byte(`{"target_directory":"/x/target"}`))

	var mdErr *MetadataError
	if !errors.As(err, &mdErr) {
		t.Fatalf("expected MetadataError, got %v", err)
	}
}

func TestDecodeMetadata_MissingTargetDirectory(t *testing.T) {
	_, err := decodeMetadata([]byte(`{"workspace_root":"/x"}`))

	var mdErr *MetadataError
	if !errors.As(err, &mdErr) {
		t.Fatalf("expected MetadataError, got %v", err)
	}
}

func TestDecodeMetadata_NotJSON(t *testing.T) {
	_, err := decodeMetadata([]byte("error: could not find Cargo.toml"))

	var mdErr *MetadataError
	if !errors.As(err, &mdErr) {
		t.Fatalf("expected MetadataError, got %v", err)
	}
}
