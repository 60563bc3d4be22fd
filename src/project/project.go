package project

// Project describes a single crate build request: which directory to
// build, which features to enable, and whether the target is the crate's
// own library or a named example binary.
//
// A Project is constructed by the caller, consumed by one build, and not
// mutated afterwards.
type Project struct {
	// Name is a display name for the project (CLI output, verbose logs).
	Name string

	// Dir is the working directory the build runs in. It should contain
	// the crate's Cargo.toml.
	Dir string

	// Features is the explicit feature set to enable. nil means "use
	// whatever defaults are discovered"; a non-nil slice (even empty)
	// disables default features and passes exactly this set.
	Features []string

	// Example, when non-empty, selects `--example <name>` instead of the
	// crate's own library.
	Example string
}
