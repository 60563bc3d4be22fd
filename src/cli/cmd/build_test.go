package cmd

import "testing"

func TestMergeEnv_FlagsOverlayConfig(t *testing.T) {
	env, err := mergeEnv(
		map[string]string{"RUSTFLAGS": "--cfg base", "CARGO_TERM_COLOR": "never"},
		[]string{"RUSTFLAGS=--cfg override"},
	)
	if err != nil {
		t.Fatalf("mergeEnv: %v", err)
	}
	if env["RUSTFLAGS"] != "--cfg override" {
		t.Errorf("flag should override config, got %q", env["RUSTFLAGS"])
	}
	if env["CARGO_TERM_COLOR"] != "never" {
		t.Errorf("config value should survive, got %q", env["CARGO_TERM_COLOR"])
	}
}

func TestMergeEnv_RejectsMalformedFlag(t *testing.T) {
	for _, bad := range []string{"NOVALUE", "=value"} {
		if _, err := mergeEnv(nil, []string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestMergeEnv_EmptyIsNil(t *testing.T) {
	env, err := mergeEnv(nil, nil)
	if err != nil {
		t.Fatalf("mergeEnv: %v", err)
	}
	if env != nil {
		t.Errorf("expected nil env, got %v", env)
	}
}
