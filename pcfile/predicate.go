package pcfile

import (
	"fmt"
	"strings"
)

// PredicateOp is a version comparison operator, or OpAny for an
// unconstrained predicate.
type PredicateOp int

const (
	OpAny PredicateOp = iota
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

func (op PredicateOp) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	default:
		return ""
	}
}

func parseOp(s string) (PredicateOp, bool) {
	switch s {
	case "=":
		return OpEqual, true
	case "!=":
		return OpNotEqual, true
	case "<":
		return OpLess, true
	case "<=":
		return OpLessEqual, true
	case ">":
		return OpGreater, true
	case ">=":
		return OpGreaterEqual, true
	default:
		return OpAny, false
	}
}

// VersionPredicate constrains an acceptable version for a named module.
type VersionPredicate struct {
	Name    string
	Op      PredicateOp
	Version string
}

// String renders the predicate the way it appears in error messages.
func (p VersionPredicate) String() string {
	if p.Op == OpAny {
		return p.Name
	}
	return fmt.Sprintf("%s %s %s", p.Name, p.Op, p.Version)
}

// Test reports whether version v satisfies the predicate.
func (p VersionPredicate) Test(v string) bool {
	if p.Op == OpAny {
		return true
	}
	c := VersionCompare(v, p.Version)
	switch p.Op {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	default:
		return false
	}
}

// ParseUserArg parses a user-supplied command-line module expression:
// whitespace-split into up to three tokens. A single token is a bare
// name (any-match); three tokens are name, op, version. Any other token
// count is an error.
func ParseUserArg(s string) (VersionPredicate, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return VersionPredicate{Name: fields[0], Op: OpAny}, nil
	case 3:
		op, ok := parseOp(fields[1])
		if !ok {
			return VersionPredicate{}, fmt.Errorf("unknown version comparison operator %q in %q", fields[1], s)
		}
		return VersionPredicate{Name: fields[0], Op: op, Version: fields[2]}, nil
	default:
		return VersionPredicate{}, fmt.Errorf("malformed module expression %q", s)
	}
}

type moduleListState int

const (
	mlOutside moduleListState = iota
	mlInName
	mlBeforeOp
	mlInOp
	mlAfterOp
	mlInVersion
)

func isModuleSep(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n'
}

func isOpChar(r rune) bool {
	switch r {
	case '=', '!', '<', '>':
		return true
	default:
		return false
	}
}

// ParseModuleList parses a comma- or whitespace-separated sequence of
// "name [op version]" entries, as found in a .pc file's Requires,
// Requires.private, or Conflicts field. path is used only to produce
// file-scoped error messages. Like Tokenize, the walk is driven by a
// Cursor over a Buffer holding s.
func ParseModuleList(s, path string) ([]VersionPredicate, error) {
	var preds []VersionPredicate
	c := NewCursor(Buffer([]rune(s)))

	state := mlOutside
	var name, opText, version strings.Builder

	flush := func() error {
		switch state {
		case mlOutside:
			return nil
		case mlInName:
			if name.Len() == 0 {
				return parseErrorf("Empty package name in Requires or Conflicts in file '%s'", path)
			}
			preds = append(preds, VersionPredicate{Name: name.String(), Op: OpAny})
		case mlBeforeOp:
			if name.Len() == 0 {
				return parseErrorf("Empty package name in Requires or Conflicts in file '%s'", path)
			}
			preds = append(preds, VersionPredicate{Name: name.String(), Op: OpAny})
		case mlInOp, mlAfterOp:
			return parseErrorf("Comparison operator but no version after package name '%s' in file '%s'", name.String(), path)
		case mlInVersion:
			op, ok := parseOp(opText.String())
			if !ok {
				return parseErrorf("Unknown version comparison operator '%s' after package name '%s' in file '%s'", opText.String(), name.String(), path)
			}
			if version.Len() == 0 {
				return parseErrorf("Comparison operator but no version after package name '%s' in file '%s'", name.String(), path)
			}
			preds = append(preds, VersionPredicate{Name: name.String(), Op: op, Version: version.String()})
		}
		name.Reset()
		opText.Reset()
		version.Reset()
		state = mlOutside
		return nil
	}

	for !c.AtEnd() {
		r := c.Peek(0)

		switch state {
		case mlOutside:
			if isModuleSep(r) {
				break
			}
			if isOpChar(r) {
				return nil, parseErrorf("Empty package name in Requires or Conflicts in file '%s'", path)
			}
			name.WriteRune(r)
			state = mlInName

		case mlInName:
			switch {
			case isModuleSep(r):
				state = mlBeforeOp
				if r == ',' {
					if err := flush(); err != nil {
						return nil, err
					}
				}
			case isOpChar(r):
				opText.WriteRune(r)
				state = mlInOp
			default:
				name.WriteRune(r)
			}

		case mlBeforeOp:
			switch {
			case isModuleSep(r):
				if r == ',' {
					if err := flush(); err != nil {
						return nil, err
					}
				}
			case isOpChar(r):
				opText.WriteRune(r)
				state = mlInOp
			default:
				if err := flush(); err != nil {
					return nil, err
				}
				name.WriteRune(r)
				state = mlInName
			}

		case mlInOp:
			switch {
			case isOpChar(r):
				opText.WriteRune(r)
			case isModuleSep(r):
				state = mlAfterOp
			default:
				state = mlInVersion
				version.WriteRune(r)
			}

		case mlAfterOp:
			if !isModuleSep(r) {
				state = mlInVersion
				version.WriteRune(r)
			}

		case mlInVersion:
			if isModuleSep(r) {
				if err := flush(); err != nil {
					return nil, err
				}
			} else {
				version.WriteRune(r)
			}
		}

		c.Advance()
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return preds, nil
}
