package pcfile

import (
	"strings"
	"testing"
)

func newTestCache(files map[string]string, searchPaths []string) *PackageCache {
	c := NewPackageCache(Config{SearchPaths: searchPaths}, false)
	c.fs = memFS{files: files}
	return c
}

func TestLoadPrefersUninstalled(t *testing.T) {
	files := map[string]string{
		"test/foo-uninstalled.pc": "Name:foo\nVersion:9.9.9\nDescription:uninstalled\n",
		"test/foo.pc":             "Name:foo\nVersion:1.0.0\nDescription:installed\n",
	}
	c := newTestCache(files, []string{"test"})
	pkg, err := c.Load("foo", true)
	if err != nil {
		t.Fatal(err)
	}
	if pkg.Version != "9.9.9" || !pkg.Uninstalled {
		t.Fatalf("expected the uninstalled package to win, got %+v", pkg)
	}
}

func TestLoadFallsBackWhenNoUninstalled(t *testing.T) {
	files := map[string]string{
		"test/foo.pc": "Name:foo\nVersion:1.0.0\nDescription:installed\n",
	}
	c := newTestCache(files, []string{"test"})
	pkg, err := c.Load("foo", true)
	if err != nil {
		t.Fatal(err)
	}
	if pkg.Version != "1.0.0" || pkg.Uninstalled {
		t.Fatalf("got %+v", pkg)
	}
}

func TestLoadSetsPathPosition(t *testing.T) {
	files := map[string]string{
		"d2/foo.pc": "Name:foo\nVersion:1\nDescription:d\n",
	}
	c := newTestCache(files, []string{"d1", "d2"})
	pkg, err := c.Load("foo", true)
	if err != nil {
		t.Fatal(err)
	}
	if pkg.PathPosition != 2 {
		t.Fatalf("got PathPosition %d, want 2", pkg.PathPosition)
	}
}

func TestLoadNotFoundFails(t *testing.T) {
	c := newTestCache(map[string]string{}, []string{"test"})
	_, err := c.Load("nope", true)
	if err == nil || !strings.Contains(err.Error(), `Package "nope" was not found in the PkgConfig searchPath`) {
		t.Fatalf("got %v", err)
	}
}

func TestLoadNotMustExistReturnsNil(t *testing.T) {
	c := newTestCache(map[string]string{}, []string{"test"})
	pkg, err := c.Load("nope", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg != nil {
		t.Fatalf("expected nil package, got %+v", pkg)
	}
}

func TestCacheAliasFilenameKeyedByBasename(t *testing.T) {
	files := map[string]string{
		"test/foo.pc":  "Name:foo\nVersion:1.0.0\nDescription:plain\n",
		"other/foo.pc": "Name:foo\nVersion:2.0.0\nDescription:byfile\n",
	}
	c := newTestCache(files, []string{"test"})

	byPlainName, err := c.Load("foo", true)
	if err != nil {
		t.Fatal(err)
	}
	if byPlainName.Version != "1.0.0" {
		t.Fatalf("got %+v", byPlainName)
	}

	byFile, err := c.Load("other/foo.pc", true)
	if err != nil {
		t.Fatal(err)
	}
	if byFile.Version != "2.0.0" {
		t.Fatalf("got %+v", byFile)
	}

	// The filename load overwrote the shared "foo" cache slot: a second
	// plain-name lookup now returns the most recently stored entry
	// instead of re-resolving from the search path, replicating the
	// reference implementation's key-aliasing quirk.
	again, err := c.Load("foo", true)
	if err != nil {
		t.Fatal(err)
	}
	if again.Version != "2.0.0" {
		t.Fatalf("got %+v, want the filename-loaded entry to win", again)
	}
}

func TestSyntheticPkgConfigPackageVersion(t *testing.T) {
	c := newTestCache(map[string]string{}, []string{"test"})
	pkg, err := c.Load("pkg-config", true)
	if err != nil {
		t.Fatal(err)
	}
	if pkg.Version != "0.29.2" {
		t.Fatalf("got version %q, want 0.29.2", pkg.Version)
	}
}

func TestRequiresAgainstSyntheticPkgConfigPackage(t *testing.T) {
	files := map[string]string{
		"test/foo.pc": "Name:foo\nVersion:1\nDescription:d\nRequires: pkg-config >= 0.29\n",
	}
	c := newTestCache(files, []string{"test"})
	pkg, err := c.Load("foo", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(pkg.Requires) != 1 || pkg.Requires[0].Key != "pkg-config" {
		t.Fatalf("got %+v", pkg.Requires)
	}
}

func TestDefineVariableOverridesPackageVariable(t *testing.T) {
	files := map[string]string{
		"test/foo.pc": "prefix = /usr\nName:foo\nVersion:1\nDescription:d\nLibs: -L${prefix}/lib\n",
	}
	c := NewPackageCache(Config{SearchPaths: []string{"test"}, DefineVariables: map[string]string{"prefix": "/opt"}}, false)
	c.fs = memFS{files: files}
	pkg, err := c.Load("foo", true)
	if err != nil {
		t.Fatal(err)
	}
	if pkg.Libs[0].Args[0] != "-L/opt/lib" {
		t.Fatalf("got %+v", pkg.Libs)
	}
}
