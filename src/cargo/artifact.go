package cargo

import "path/filepath"

// selectCdylib picks the first output file with a shared-library
// extension. All three platform conventions are recognized so a build
// driven from any host can find its artifact. The path is returned
// exactly as cargo reported it, with no normalization.
func selectCdylib(filenames []string) (string, error) {
	for _, name := range filenames {
		switch filepath.Ext(name) {
		case ".dll", ".dylib", ".so":
			return name, nil
		}
	}
	return "", ErrCdylibNotFound
}
