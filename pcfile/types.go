// Package pcfile implements a pkg-config compatible resolver: it parses
// ".pc" metadata files describing installed libraries and computes the
// compiler and linker flags needed to build against a set of named
// modules, honoring transitive dependencies, version constraints and
// conflict declarations.
package pcfile

// FlagClass categorizes a single compiler/linker token.
type FlagClass int

const (
	// CflagsI is an include-path flag: "-I...", or "-isystem"/"-idirafter"
	// paired with its directory argument.
	CflagsI FlagClass = iota
	// CflagsOther is any Cflags token that isn't an include-path flag.
	CflagsOther
	// LibsL is a library search-path flag: "-L...".
	LibsL
	// LibsSmallL is a link-library flag: "-l...".
	LibsSmallL
	// LibsOther is any Libs token that is neither -L nor -l, including
	// "-framework"/"-Wl,-framework" paired with its argument.
	LibsOther
)

func (c FlagClass) String() string {
	switch c {
	case CflagsI:
		return "CflagsI"
	case CflagsOther:
		return "CflagsOther"
	case LibsL:
		return "LibsL"
	case LibsSmallL:
		return "LibsSmallL"
	case LibsOther:
		return "LibsOther"
	default:
		return "Unknown"
	}
}

// Flag is a single classified compiler/linker flag. Args preserves the
// original token form(s); most flags carry one token, but "-isystem DIR",
// "-idirafter DIR" and "-framework NAME" carry two.
type Flag struct {
	Class FlagClass
	Args  []string
}

// Equal reports whether two flags have the same class and identical args.
func (f Flag) Equal(other Flag) bool {
	if f.Class != other.Class || len(f.Args) != len(other.Args) {
		return false
	}
	for i := range f.Args {
		if f.Args[i] != other.Args[i] {
			return false
		}
	}
	return true
}

// Package is a loaded, verified ".pc" file.
type Package struct {
	Key  string // basename without ".pc"; the cache key
	Name string
	// PcFile is the absolute path actually read.
	PcFile string
	// PathPosition is the 1-based index within the search path where this
	// package was found, or 0 when resolved by an explicit filename.
	PathPosition int
	// Uninstalled is true when PcFile's path contains "uninstalled.pc".
	Uninstalled bool

	Version     string
	Description string
	URL         string

	Vars map[string]string

	Cflags      []Flag
	Libs        []Flag
	PrivateLibs []Flag

	RequiresEntries        []VersionPredicate
	RequiresPrivateEntries []VersionPredicate
	Conflicts              []VersionPredicate

	Requires        []*Package
	RequiresPrivate []*Package

	// RequiredVersions maps a required package's key to the predicate that
	// was declared against it (from Requires or Requires.private).
	RequiredVersions map[string]VersionPredicate
}

// Config configures a Resolver / PackageCache.
type Config struct {
	// SearchPaths is the ordered list of directories consulted for
	// module-by-name lookups.
	SearchPaths []string
	// DisableUninstalled skips the "<name>-uninstalled" preference.
	DisableUninstalled bool
	// DefineVariables overrides package variables by name for every
	// package loaded through this configuration: the values are seeded
	// before parsing, and a package's own definition of the same name is
	// skipped.
	DefineVariables map[string]string
}
