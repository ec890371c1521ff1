package env

import (
	"runtime"
	"strings"
	"testing"
)

func TestPkgConfigDirsNonEmptyOnUnix(t *testing.T) {
	dirs := PkgConfigDirs()

	if runtime.GOOS == "windows" {
		if dirs != nil {
			t.Fatalf("expected nil dirs on windows, got %v", dirs)
		}
		return
	}

	if len(dirs) == 0 {
		t.Fatalf("expected at least one conventional pkgconfig dir on %s", runtime.GOOS)
	}

	for _, d := range dirs {
		if !strings.HasSuffix(d, "pkgconfig") {
			t.Errorf("dir %q does not end in pkgconfig", d)
		}
	}
}

func TestPkgConfigDirsLinuxIncludesShare(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-specific layout assertions")
	}

	dirs := PkgConfigDirs()
	found := false
	for _, d := range dirs {
		if d == "/usr/share/pkgconfig" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected /usr/share/pkgconfig among %v", dirs)
	}
}
