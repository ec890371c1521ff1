package pcfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts the filesystem calls the resolver needs, so tests
// can substitute an in-memory implementation without touching disk.
type FileSystem interface {
	// StatRegular reports whether path exists and is a regular file.
	StatRegular(path string) bool
	// Open opens path for reading.
	Open(path string) (io.ReadCloser, error)
}

// osFileSystem is the FileSystem backed by the real filesystem.
type osFileSystem struct{}

func (osFileSystem) StatRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (osFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// PackageVersion is the synthetic version reported for the "pkg-config"
// pseudo-package, matched against Requires entries that constrain the
// tool's own declared version.
const PackageVersion = "0.29.2"

// PackageCache resolves module names to loaded, verified Packages,
// memoizing every load for the lifetime of a single query.
type PackageCache struct {
	cfg     Config
	fs      FileSystem
	entries map[string]*Package
	// ignorePrivateReqs is threaded down into every ParsePackage call,
	// used by the Libs query to keep private transitive deps out.
	ignorePrivateReqs bool
}

// NewPackageCache constructs a cache for a single query. Per §5 of the
// resolution model, a cache must never be reused across queries.
func NewPackageCache(cfg Config, ignorePrivateReqs bool) *PackageCache {
	c := &PackageCache{
		cfg:               cfg,
		fs:                osFileSystem{},
		entries:           make(map[string]*Package),
		ignorePrivateReqs: ignorePrivateReqs,
	}
	c.entries["pkg-config"] = &Package{
		Key:         "pkg-config",
		Name:        "pkg-config",
		Version:     PackageVersion,
		Description: "pkg-config-compatible flag resolver",
		URL:         "https://github.com/arc-tools/pkgconf",
	}
	return c
}

// Load resolves name to a verified Package, per §4.7. mustExist controls
// whether a missing module is a hard failure or a nil, nil result.
func (c *PackageCache) Load(name string, mustExist bool) (*Package, error) {
	return c.load(name, mustExist, "")
}

func (c *PackageCache) load(name string, mustExist bool, requiredBy string) (*Package, error) {
	if pkg, ok := c.entries[name]; ok {
		return pkg, nil
	}

	var path string
	var key string
	var pathPosition int

	switch {
	case strings.HasSuffix(name, ".pc"):
		path = name
		base := filepath.Base(name)
		key = strings.TrimSuffix(base, ".pc")

	default:
		if !strings.HasSuffix(name, "-uninstalled") && !c.cfg.DisableUninstalled {
			if pkg, err := c.load(name+"-uninstalled", false, requiredBy); err == nil && pkg != nil {
				return pkg, nil
			}
		}
		found := false
		for i, dir := range c.cfg.SearchPaths {
			candidate := filepath.Join(dir, name+".pc")
			if c.fs.StatRegular(candidate) {
				path = candidate
				pathPosition = i + 1
				found = true
				break
			}
		}
		if !found {
			if mustExist {
				if requiredBy != "" {
					return nil, notFoundErrorf("Package '%s', required by '%s', not found", name, requiredBy)
				}
				return nil, notFoundErrorf("Package \"%s\" was not found in the PkgConfig searchPath", name)
			}
			return nil, nil
		}
		key = name
	}

	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	tl, err := NewTextLoader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	pkg := &Package{
		Key:          key,
		PcFile:       abs,
		PathPosition: pathPosition,
		Uninstalled:  strings.Contains(path, "uninstalled.pc"),
		Vars:         map[string]string{"pcfiledir": filepath.Dir(abs)},
	}

	opts := ParseOptions{IgnorePrivateReqs: c.ignorePrivateReqs, PredefinedVars: c.cfg.DefineVariables}
	if err := ParsePackage(tl, abs, pkg, opts); err != nil {
		return nil, err
	}

	c.entries[key] = pkg

	pkg.RequiredVersions = make(map[string]VersionPredicate)

	requires, err := c.resolveAll(pkg.RequiresEntries, key)
	if err != nil {
		return nil, err
	}
	pkg.Requires = requires
	for i, dep := range requires {
		pkg.RequiredVersions[dep.Key] = pkg.RequiresEntries[i]
	}

	requiresPrivate, err := c.resolveAll(pkg.RequiresPrivateEntries, key)
	if err != nil {
		return nil, err
	}
	pkg.RequiresPrivate = requiresPrivate
	for i, dep := range requiresPrivate {
		pkg.RequiredVersions[dep.Key] = pkg.RequiresPrivateEntries[i]
	}

	pkg.RequiresPrivate = append(pkg.RequiresPrivate, pkg.Requires...)

	if err := Verify(pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// LoadSummary parses the ".pc" file at path for its Name/Description
// only: no Requires/Requires.private resolution, no Verify. list-all
// uses this instead of load so that one individually broken .pc file —
// an unresolvable dependency, a version conflict, a missing field — does
// not keep its own Name/Description from being reported.
func (c *PackageCache) LoadSummary(path string) (*Package, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	tl, err := NewTextLoader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	pkg := &Package{
		Key:    strings.TrimSuffix(filepath.Base(path), ".pc"),
		PcFile: abs,
		Vars:   map[string]string{"pcfiledir": filepath.Dir(abs)},
	}

	opts := ParseOptions{IgnorePrivateReqs: true, PredefinedVars: c.cfg.DefineVariables}
	if err := ParsePackage(tl, abs, pkg, opts); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (c *PackageCache) resolveAll(preds []VersionPredicate, requiredBy string) ([]*Package, error) {
	out := make([]*Package, 0, len(preds))
	for _, pred := range preds {
		dep, err := c.load(pred.Name, true, requiredBy)
		if err != nil {
			return nil, err
		}
		out = append(out, dep)
	}
	return out, nil
}
