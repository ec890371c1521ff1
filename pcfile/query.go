package pcfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Result is the outcome of a facade query: the ordered flag tokens and
// the set of ".pc" files consulted to produce them.
type Result struct {
	Flags []string
	Files []string
}

// Facade runs cflags/libs/staticLibs queries against a fixed, immutable
// search-path configuration. Each query builds and discards its own
// PackageCache; nothing is shared across queries.
type Facade struct {
	cfg Config
}

// NewFacade builds a Facade over the given search-path configuration.
func NewFacade(cfg Config) *Facade {
	return &Facade{cfg: cfg}
}

// Cflags resolves the compiler flags needed to build against names.
func (f *Facade) Cflags(names []string) (Result, error) {
	return f.query("cflags", names, false, cflagsMergeConfig)
}

// Libs resolves the public linker flags needed to link against names.
func (f *Facade) Libs(names []string) (Result, error) {
	return f.query("libs", names, true, libsMergeConfig)
}

// StaticLibs resolves the full (including private) linker flags needed
// for a static link against names.
func (f *Facade) StaticLibs(names []string) (Result, error) {
	return f.query("static-libs", names, false, staticLibsMergeConfig)
}

func (f *Facade) query(op string, names []string, ignorePrivateReqs bool, mcfg mergeConfig) (Result, error) {
	cache := NewPackageCache(f.cfg, ignorePrivateReqs)

	var roots []*Package
	for _, expr := range names {
		pred, err := ParseUserArg(expr)
		if err != nil {
			return Result{}, &Error{Op: op, Module: expr, Err: err}
		}
		pkg, err := cache.Load(pred.Name, true)
		if err != nil {
			return Result{}, &Error{Op: op, Module: pred.Name, Err: err}
		}
		if !pred.Test(pkg.Version) {
			err := verificationErrorf("Requested '%s' but version of %s is %s", expr, pkg.Key, pkg.Version)
			return Result{}, &Error{Op: op, Module: pkg.Key, Err: err}
		}
		roots = append(roots, pkg)
	}

	flags := merge(roots, mcfg)
	files := distinctFiles(cache.entries)

	return Result{Flags: flags, Files: files}, nil
}

// ModVersion resolves name and returns its declared Version.
func (f *Facade) ModVersion(name string) (string, error) {
	cache := NewPackageCache(f.cfg, false)
	pkg, err := cache.Load(name, true)
	if err != nil {
		return "", &Error{Op: "modversion", Module: name, Err: err}
	}
	return pkg.Version, nil
}

// ModuleSummary is one entry in a list-all enumeration: a module's key
// and the Name/Description declared in its .pc file.
type ModuleSummary struct {
	Key         string
	Name        string
	Description string
}

// ListAll enumerates every distinct ".pc" file reachable from the
// configured search paths, without walking its dependency graph or
// running Verify, and returns one summary per module, sorted by key. A
// .pc file that would fail resolution or verification — an unresolvable
// Requires, a version conflict, a missing sibling — still contributes
// its Name/Description as long as it parses; only a file that fails to
// parse at all is skipped.
func (f *Facade) ListAll() ([]ModuleSummary, error) {
	seen := make(map[string]bool)
	var out []ModuleSummary
	cache := NewPackageCache(f.cfg, true)

	for _, dir := range f.cfg.SearchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pc") {
				continue
			}
			key := strings.TrimSuffix(entry.Name(), ".pc")
			if seen[key] {
				continue
			}
			seen[key] = true

			pkg, err := cache.LoadSummary(filepath.Join(dir, entry.Name()))
			if err != nil {
				continue
			}
			out = append(out, ModuleSummary{Key: pkg.Key, Name: pkg.Name, Description: pkg.Description})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func distinctFiles(entries map[string]*Package) []string {
	seen := make(map[string]bool)
	var files []string
	for _, pkg := range entries {
		if pkg.PcFile == "" || seen[pkg.PcFile] {
			continue
		}
		seen[pkg.PcFile] = true
		files = append(files, pkg.PcFile)
	}
	return files
}
