package pcfile

import (
	"regexp"
	"strings"
)

var fieldLineRe = regexp.MustCompile(`^([A-Za-z0-9_.]+)\s*(:|=)\s*(.*)$`)

// ParseOptions tunes PackageParser for the query it's being run under.
type ParseOptions struct {
	// IgnorePrivateReqs drops Requires.private entries silently, the way
	// the Libs query does to avoid pulling in unwanted private deps.
	IgnorePrivateReqs bool
	// PredefinedVars seeds pkg.Vars before parsing begins (from
	// --define-variable); the file's own definition of the same name is
	// skipped rather than rejected as a duplicate.
	PredefinedVars map[string]string
}

// fieldSeen tracks which single-valued fields have already been assigned,
// to enforce the duplicate-field rules.
type fieldSeen struct {
	name, version, description, url      bool
	cflags, libs, libsPrivate            bool
	conflictsNonEmpty, conflictsAnyEmpty bool
}

// ParsePackage reads every logical line from cs and populates pkg's
// fields and variables. path is used only for error messages.
func ParsePackage(cs CharSource, path string, pkg *Package, opts ParseOptions) error {
	if pkg.Vars == nil {
		pkg.Vars = make(map[string]string)
	}
	predefined := make(map[string]bool, len(opts.PredefinedVars))
	for k, v := range opts.PredefinedVars {
		pkg.Vars[k] = v
		predefined[k] = true
	}
	var seen fieldSeen

	for {
		raw, ok := ReadLogicalLine(cs)
		if !ok {
			break
		}
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := fieldLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		tag, sep, rest := m[1], m[2], m[3]

		if sep == "=" {
			if predefined[tag] {
				continue
			}
			if _, dup := pkg.Vars[tag]; dup {
				return parseErrorf("Duplicate definition of variable '%s' in '%s'", tag, path)
			}
			val, err := substitute(rest, pkg.Vars, path)
			if err != nil {
				return err
			}
			pkg.Vars[tag] = val
			continue
		}

		if err := applyField(pkg, tag, rest, path, opts, &seen); err != nil {
			return err
		}
	}
	return nil
}

func applyField(pkg *Package, tag, rest, path string, opts ParseOptions, seen *fieldSeen) error {
	switch tag {
	case "Name":
		if seen.name {
			return parseErrorf("Name field occurs multiple times in '%s'", path)
		}
		v, err := substitute(rest, pkg.Vars, path)
		if err != nil {
			return err
		}
		pkg.Name = v
		seen.name = true

	case "Version":
		if seen.version {
			return parseErrorf("Version field occurs more than once in '%s'", path)
		}
		v, err := substitute(rest, pkg.Vars, path)
		if err != nil {
			return err
		}
		pkg.Version = v
		seen.version = true

	case "Description":
		if seen.description {
			return parseErrorf("Description field occurs twice in '%s'", path)
		}
		v, err := substitute(rest, pkg.Vars, path)
		if err != nil {
			return err
		}
		pkg.Description = v
		seen.description = true

	case "URL":
		if seen.url {
			return parseErrorf("URL field occurs multiple times in '%s'", path)
		}
		v, err := substitute(rest, pkg.Vars, path)
		if err != nil {
			return err
		}
		pkg.URL = v
		seen.url = true

	case "Cflags", "CFlags":
		if seen.cflags {
			return parseErrorf("Cflags field occurs more than once in '%s'", path)
		}
		flags, err := parseCflagsField(rest, pkg.Vars, path)
		if err != nil {
			return err
		}
		pkg.Cflags = classifyCflags(flags)
		if len(pkg.Cflags) > 0 {
			seen.cflags = true
		}

	case "Libs":
		if seen.libs {
			return parseErrorf("Libs field occurs more than once in '%s'", path)
		}
		flags, err := parseFlagField(rest, pkg.Vars, path, "Libs")
		if err != nil {
			return err
		}
		classified := classifyLibs(flags)
		pkg.Libs = classified
		pkg.PrivateLibs = append(pkg.PrivateLibs, classified...)
		seen.libs = true

	case "Libs.private":
		if seen.libsPrivate {
			return parseErrorf("Libs.private field occurs more than once in '%s'", path)
		}
		flags, err := parseFlagField(rest, pkg.Vars, path, "Libs.private")
		if err != nil {
			return err
		}
		classified := classifyLibs(flags)
		pkg.PrivateLibs = append(pkg.PrivateLibs, classified...)
		if len(classified) > 0 {
			seen.libsPrivate = true
		}

	case "Requires":
		v, err := substitute(rest, pkg.Vars, path)
		if err != nil {
			return err
		}
		preds, err := ParseModuleList(v, path)
		if err != nil {
			return err
		}
		pkg.RequiresEntries = preds

	case "Requires.private":
		if opts.IgnorePrivateReqs {
			return nil
		}
		v, err := substitute(rest, pkg.Vars, path)
		if err != nil {
			return err
		}
		preds, err := ParseModuleList(v, path)
		if err != nil {
			return err
		}
		pkg.RequiresPrivateEntries = preds

	case "Conflicts":
		v, err := substitute(rest, pkg.Vars, path)
		if err != nil {
			return err
		}
		preds, err := ParseModuleList(v, path)
		if err != nil {
			return err
		}
		nonEmpty := len(preds) > 0
		if seen.conflictsNonEmpty || (seen.conflictsAnyEmpty && nonEmpty) {
			return parseErrorf("Conflicts field occurs more than once in '%s'", path)
		}
		pkg.Conflicts = preds
		if nonEmpty {
			seen.conflictsNonEmpty = true
		} else {
			seen.conflictsAnyEmpty = true
		}

	default:
		// Unknown tags are ignored for forward compatibility.
	}
	return nil
}

// substitute resolves "${name}" references against vars and collapses
// "$$" to a literal "$".
func substitute(s string, vars map[string]string, path string) (string, error) {
	var out strings.Builder
	runes := []rune(s)
	n := len(runes)
	for i := 0; i < n; i++ {
		c := runes[i]
		if c != '$' {
			out.WriteRune(c)
			continue
		}
		if i+1 >= n {
			out.WriteRune(c)
			continue
		}
		switch runes[i+1] {
		case '$':
			out.WriteRune('$')
			i++
		case '{':
			end := i + 2
			for end < n && runes[end] != '}' {
				end++
			}
			if end >= n {
				out.WriteRune(c)
				continue
			}
			name := string(runes[i+2 : end])
			val, ok := vars[name]
			if !ok {
				return "", parseErrorf("Variable '%s' not defined in '%s'", name, path)
			}
			out.WriteString(val)
			i = end
		default:
			out.WriteRune(c)
		}
	}
	return out.String(), nil
}

func parseFlagField(rest string, vars map[string]string, path, fieldName string) ([]string, error) {
	sub, err := substitute(rest, vars, path)
	if err != nil {
		return nil, err
	}
	tokens, err := SplitArgs(sub)
	if err != nil {
		return nil, parseErrorf("Couldn't parse %s field into an argument vector: %s", fieldName, err.Error())
	}
	return tokens, nil
}

// parseCflagsField is parseFlagField specialized for the Cflags field: it
// additionally re-merges a bare "-I" token with its successor, using the
// literal text between them (whatever whitespace the .pc file used), the
// same single-arg flag that a glued "-Iinclude/dir" token already is.
func parseCflagsField(rest string, vars map[string]string, path string) ([]string, error) {
	sub, err := substitute(rest, vars, path)
	if err != nil {
		return nil, err
	}
	tokens, spans, err := splitArgsSpans(sub)
	if err != nil {
		return nil, parseErrorf("Couldn't parse Cflags field into an argument vector: %s", err.Error())
	}
	return mergeBareInclude(tokens, spans, sub), nil
}

// mergeBareInclude folds a bare "-I" token into its successor, producing
// one token equal to the literal source text spanning both (the space(s)
// between them included) rather than two separate tokens.
func mergeBareInclude(tokens []string, spans []tokenSpan, raw string) []string {
	runes := []rune(raw)
	var out []string
	for i := 0; i < len(tokens); i++ {
		if tokens[i] == "-I" && i+1 < len(tokens) {
			out = append(out, string(runes[spans[i].Start:spans[i+1].End]))
			i++
			continue
		}
		out = append(out, tokens[i])
	}
	return out
}

// classifyCflags classifies a token stream from a Cflags/CFlags field.
// A token starting with "-I" is already the whole flag as a single arg
// by this point: parseCflagsField has folded a bare "-I" together with
// its successor before classification ever sees it.
func classifyCflags(tokens []string) []Flag {
	var flags []Flag
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case strings.HasPrefix(tok, "-I"):
			flags = append(flags, Flag{Class: CflagsI, Args: []string{tok}})
		case tok == "-idirafter" || tok == "-isystem":
			if i+1 < len(tokens) {
				flags = append(flags, Flag{Class: CflagsI, Args: []string{tok, tokens[i+1]}})
				i++
			} else {
				flags = append(flags, Flag{Class: CflagsOther, Args: []string{tok}})
			}
		default:
			flags = append(flags, Flag{Class: CflagsOther, Args: []string{tok}})
		}
	}
	return flags
}

// classifyLibs classifies a token stream from a Libs/Libs.private field.
func classifyLibs(tokens []string) []Flag {
	var flags []Flag
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case strings.HasPrefix(tok, "-l") && !strings.HasPrefix(tok, "-lib:"):
			flags = append(flags, Flag{Class: LibsSmallL, Args: []string{tok}})
		case strings.HasPrefix(tok, "-L"):
			flags = append(flags, Flag{Class: LibsL, Args: []string{tok}})
		case tok == "-framework" || tok == "-Wl,-framework":
			if i+1 < len(tokens) {
				flags = append(flags, Flag{Class: LibsOther, Args: []string{tok, tokens[i+1]}})
				i++
			} else {
				flags = append(flags, Flag{Class: LibsOther, Args: []string{tok}})
			}
		default:
			flags = append(flags, Flag{Class: LibsOther, Args: []string{tok}})
		}
	}
	return flags
}

// Verify checks the post-parse invariants on pkg: required metadata
// fields are present, resolved dependency versions satisfy their
// declared predicates, and no package in the transitive closure of
// pkg's requires matches one of pkg's own Conflicts predicates.
func Verify(pkg *Package) error {
	switch {
	case pkg.Name == "":
		return verificationErrorf("Package '%s' has no Name: field", pkg.Key)
	case pkg.Version == "":
		return verificationErrorf("Package '%s' has no Version: field", pkg.Key)
	case pkg.Description == "":
		return verificationErrorf("Package '%s' has no Description: field", pkg.Key)
	}

	for key, pred := range pkg.RequiredVersions {
		dep := findRequired(pkg, key)
		if dep == nil || pred.Test(dep.Version) {
			continue
		}
		msg := verificationErrorf("Package '%s' requires '%s' but version of %s is %s", pkg.Key, pred.String(), dep.Key, dep.Version)
		if dep.URL != "" {
			msg = verificationErrorf("Package '%s' requires '%s' but version of %s is %s\nYou may find new versions of %s at %s", pkg.Key, pred.String(), dep.Key, dep.Version, dep.Key, dep.URL)
		}
		return msg
	}

	closure := transitiveRequires(pkg)
	for _, dep := range closure {
		for _, conflict := range pkg.Conflicts {
			if conflict.Name == dep.Key && conflict.Test(dep.Version) {
				return verificationErrorf("Version '%s' of %s creates a conflict. (%s conflicts with %s '%s')", dep.Version, dep.Key, conflict.String(), pkg.Key, pkg.Version)
			}
		}
	}
	return nil
}

func findRequired(pkg *Package, key string) *Package {
	for _, d := range pkg.RequiresPrivate {
		if d.Key == key {
			return d
		}
	}
	for _, d := range pkg.Requires {
		if d.Key == key {
			return d
		}
	}
	return nil
}

func transitiveRequires(pkg *Package) []*Package {
	visited := make(map[string]bool)
	var out []*Package
	var walk func(p *Package)
	walk = func(p *Package) {
		for _, d := range p.RequiresPrivate {
			if visited[d.Key] {
				continue
			}
			visited[d.Key] = true
			out = append(out, d)
			walk(d)
		}
	}
	walk(pkg)
	return out
}
