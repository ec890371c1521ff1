// pkg/env/constants.go
package env

import (
	"path/filepath"
	"runtime"
)

// PkgConfigDirs returns the conventional ".pc" search directories for the
// current platform, in the order a freshly installed pkg-config would
// report them before PKG_CONFIG_PATH is applied.
//
// Adapted from the per-backend package layouts previously kept here: each
// Linux packaging format (Debian, Fedora/openSUSE, Arch/Alpine) agrees
// that pkgconfig metadata lives under a lib{,64,/<triplet>}/pkgconfig or
// share/pkgconfig directory, so the distinction collapses into the single
// conventional list below rather than one per package manager.
func PkgConfigDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			filepath.Join("/usr", "local", "lib", "pkgconfig"),
			filepath.Join("/usr", "local", "share", "pkgconfig"),
			filepath.Join("/opt", "homebrew", "lib", "pkgconfig"),
			filepath.Join("/opt", "homebrew", "share", "pkgconfig"),
			filepath.Join("/usr", "lib", "pkgconfig"),
		}
	case "windows":
		return nil
	default: // linux and other Unix-like systems
		arch := runtime.GOARCH
		if arch == "amd64" {
			arch = "x86_64"
		}
		return []string{
			filepath.Join("/usr", "lib", arch+"-linux-gnu", "pkgconfig"),
			filepath.Join("/usr", "lib64", "pkgconfig"),
			filepath.Join("/usr", "lib", "pkgconfig"),
			filepath.Join("/usr", "share", "pkgconfig"),
			filepath.Join("/usr", "local", "lib", "pkgconfig"),
			filepath.Join("/usr", "local", "share", "pkgconfig"),
		}
	}
}
