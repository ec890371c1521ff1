package pcfile

import "sort"

// mergePass selects flags of the classes in mask from each package's flag
// source, optionally stably sorted by the owning package's path position.
type mergePass struct {
	classes  map[FlagClass]bool
	sortPath bool
}

// mergeConfig declares one query's merge behavior, per §4.8's "two modes
// per query" note: a source sequence selector, whether to include
// private transitive requires in the expansion, and an ordered list of
// passes over the expanded package list.
type mergeConfig struct {
	includePrivate bool
	source         func(p *Package) []Flag
	passes         []mergePass
}

var cflagsMergeConfig = mergeConfig{
	includePrivate: true,
	source:         func(p *Package) []Flag { return p.Cflags },
	passes: []mergePass{
		{classes: classSet(CflagsOther)},
		{classes: classSet(CflagsI), sortPath: true},
	},
}

var libsMergeConfig = mergeConfig{
	includePrivate: false,
	source:         func(p *Package) []Flag { return p.Libs },
	passes: []mergePass{
		{classes: classSet(LibsL), sortPath: true},
		{classes: classSet(LibsOther, LibsSmallL)},
	},
}

var staticLibsMergeConfig = mergeConfig{
	includePrivate: true,
	source:         func(p *Package) []Flag { return p.PrivateLibs },
	passes: []mergePass{
		{classes: classSet(LibsL), sortPath: true},
		{classes: classSet(LibsOther, LibsSmallL)},
	},
}

func classSet(classes ...FlagClass) map[FlagClass]bool {
	m := make(map[FlagClass]bool, len(classes))
	for _, c := range classes {
		m[c] = true
	}
	return m
}

// expand performs the post-order dependency-DAG walk described in
// §4.8.1: roots are walked in reverse request order, each package's
// dependencies (reversed) are visited before the package itself, and a
// package is placed in the result only on its first visit.
func expand(roots []*Package, includePrivate bool) []*Package {
	visited := make(map[string]bool)
	var expanded []*Package

	var visit func(p *Package)
	visit = func(p *Package) {
		if visited[p.Key] {
			return
		}
		deps := p.Requires
		if includePrivate {
			deps = p.RequiresPrivate
		}
		for i := len(deps) - 1; i >= 0; i-- {
			visit(deps[i])
		}
		if !visited[p.Key] {
			visited[p.Key] = true
			expanded = append([]*Package{p}, expanded...)
		}
	}

	for i := len(roots) - 1; i >= 0; i-- {
		visit(roots[i])
	}
	return expanded
}

// merge runs the full FlagMerger algorithm for cfg over roots: expand,
// then for each pass, optionally path-sort, select and dedup, then
// flatten every pass's flags in order into the final token sequence.
func merge(roots []*Package, cfg mergeConfig) []string {
	expanded := expand(roots, cfg.includePrivate)

	var tokens []string
	for _, pass := range cfg.passes {
		ordered := expanded
		if pass.sortPath {
			ordered = make([]*Package, len(expanded))
			copy(ordered, expanded)
			sort.SliceStable(ordered, func(i, j int) bool {
				return ordered[i].PathPosition < ordered[j].PathPosition
			})
		}

		var lastEmitted *Flag
		for _, pkg := range ordered {
			var selected []Flag
			for _, flag := range cfg.source(pkg) {
				if pass.classes[flag.Class] {
					selected = append(selected, flag)
				}
			}
			if pass.sortPath {
				// A plain "-I" and an "-isystem"/"-idirafter" pair share
				// the CflagsI class but not search precedence: within one
				// package's own contribution, one-arg entries (-I, -L)
				// must precede two-arg ones so system/after directories
				// are searched after ordinary ones, matching a compiler's
				// own -I-before-isystem-before-idirafter convention.
				sort.SliceStable(selected, func(i, j int) bool {
					return len(selected[i].Args) < len(selected[j].Args)
				})
			}
			for _, flag := range selected {
				f := flag
				if lastEmitted != nil && lastEmitted.Equal(f) {
					continue
				}
				tokens = append(tokens, f.Args...)
				lastEmitted = &f
			}
		}
	}
	return tokens
}
