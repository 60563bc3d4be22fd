package cargo

import (
	"reflect"
	"testing"
)

func TestFeatureArgs_ExplicitList(t *testing.T) {
	args := featureArgs([]string{"a", "b"})
	want := []string{"--no-default-features", "--features", "a,b"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("expected %v, got %v", want, args)
	}
}

func TestFeatureArgs_NilMeansDefaults(t *testing.T) {
	if args := featureArgs(nil); args != nil {
		t.Errorf("nil feature set must produce no flags, got %v", args)
	}
}

func TestBuildArgs(t *testing.T) {
	cases := []struct {
		name     string
		offline  bool
		features []string
		want     []string
	}{
		{
			name: "defaults online",
			want: []string{"build", "--message-format=json"},
		},
		{
			name:    "offline precedes subcommand",
			offline: true,
			want:    []string{"--offline", "build", "--message-format=json"},
		},
		{
			name:     "explicit features",
			features: []string{"unstable", "ffi"},
			want: []string{
				"build", "--message-format=json",
				"--no-default-features", "--features", "unstable,ffi",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := buildArgs(tc.offline, tc.features)
			if !reflect.DeepEqual(args, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, args)
			}
		})
	}
}

func TestPath_HonorsCargoEnv(t *testing.T) {
	t.Setenv("CARGO", "/opt/rust/bin/cargo")
	if got := path(); got != "/opt/rust/bin/cargo" {
		t.Errorf("expected CARGO override, got %s", got)
	}

	t.Setenv("CARGO", "")
	if got := path(); got != "cargo" {
		t.Errorf("expected default cargo, got %s", got)
	}
}
