package pcfile

import "fmt"

// quoteState drives Tokenize's single-variable state machine.
type quoteState rune

const (
	quoteNone   quoteState = 0
	quoteDouble quoteState = '"'
	quoteSingle quoteState = '\''
	quoteBack   quoteState = '\\'
	quoteHash   quoteState = '#'
)

// tokenSpan records the half-open rune range [Start,End) of s that
// produced one of Tokenize's tokens. mergeBareInclude uses spans to
// recover the literal text between a bare "-I" and its successor,
// including whatever whitespace separated them in the .pc file.
type tokenSpan struct {
	Start, End int
}

// Tokenize splits s into shell-style argument tokens without removing
// quoting or escapes — that's Unquote's job. Single and double quoted
// runs (including their delimiters) and backslash-escaped pairs are
// copied through verbatim so token boundaries match a real shell's, and
// '#' starts a comment running to end-of-line only at a token boundary
// (start of input, or just after whitespace).
//
// The walk is driven by a Cursor over a Buffer holding s, the same way
// the reference splitter for module lists and .pc field values walks
// its input: one rune at a time, never re-slicing the source string.
func Tokenize(s string) ([]string, error) {
	tokens, _, err := tokenizeSpans(s)
	return tokens, err
}

func tokenizeSpans(s string) ([]string, []tokenSpan, error) {
	c := NewCursor(Buffer([]rune(s)))

	var tokens []string
	var spans []tokenSpan
	var cur []rune
	haveCur := false
	start := 0
	state := quoteNone
	atBoundary := true

	emit := func(end int) {
		tokens = append(tokens, string(cur))
		spans = append(spans, tokenSpan{Start: start, End: end})
		cur = nil
		haveCur = false
	}

	for !c.AtEnd() {
		ch := c.Peek(0)
		advance := true

		switch state {
		case quoteBack:
			if ch != '\n' {
				cur = append(cur, '\\', ch)
				haveCur = true
			}
			state = quoteNone

		case quoteHash:
			if ch == '\n' {
				state = quoteNone
				advance = false // reprocess the newline as an unquoted delimiter
			}

		case quoteDouble, quoteSingle:
			cur = append(cur, ch)
			haveCur = true
			if rune(state) == ch {
				if state == quoteDouble && precedingBackslashesOdd(cur[:len(cur)-1]) {
					// escaped quote: stays literal, stay in quoted mode
				} else {
					state = quoteNone
				}
			}

		default: // unquoted
			switch ch {
			case '\n', ' ', '\t':
				if haveCur {
					emit(c.pos())
				}
				atBoundary = true
			case '\'', '"':
				if !haveCur {
					start = c.pos()
				}
				cur = append(cur, ch)
				haveCur = true
				state = quoteState(ch)
				atBoundary = false
			case '\\':
				if !haveCur {
					start = c.pos()
				}
				state = quoteBack
				atBoundary = false
			case '#':
				if atBoundary {
					state = quoteHash
				} else {
					cur = append(cur, ch)
					haveCur = true
				}
			default:
				if !haveCur {
					start = c.pos()
				}
				cur = append(cur, ch)
				haveCur = true
				atBoundary = false
			}
		}

		if advance {
			c.Advance()
		}
	}

	if haveCur {
		emit(c.pos())
	}

	switch state {
	case quoteBack:
		return nil, nil, fmt.Errorf("Text ended just after a '\\' character")
	case quoteDouble, quoteSingle:
		return nil, nil, fmt.Errorf("Text ended before matching quote was found for %c", rune(state))
	}
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("Text was empty (or contained only whitespace)")
	}
	return tokens, spans, nil
}

// precedingBackslashesOdd reports whether buf ends in an odd run of
// backslashes (used to decide whether a '"' is escaped).
func precedingBackslashesOdd(buf []rune) bool {
	count := 0
	for i := len(buf) - 1; i >= 0 && buf[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}

// isDoubleQuoteEscape reports whether c is one of the characters Unquote
// treats as escapable inside a double-quoted run; a backslash before any
// other character is kept literal.
func isDoubleQuoteEscape(c rune) bool {
	switch c {
	case '"', '\\', '`', '$', '\n':
		return true
	default:
		return false
	}
}

// Unquote strips quoting and resolves backslash escapes from a single
// token produced by Tokenize.
func Unquote(tok string) (string, error) {
	runes := []rune(tok)
	n := len(runes)
	var out []rune

	for i := 0; i < n; {
		c := runes[i]
		switch c {
		case '\\':
			if i+1 >= n {
				return "", fmt.Errorf("Text ended just after a '\\' character")
			}
			if runes[i+1] == '\n' {
				i += 2
				continue
			}
			out = append(out, runes[i+1])
			i += 2

		case '"':
			i++
			closed := false
			for i < n {
				cc := runes[i]
				if cc == '"' {
					i++
					closed = true
					break
				}
				if cc == '\\' && i+1 < n && isDoubleQuoteEscape(runes[i+1]) {
					if runes[i+1] == '\n' {
						i += 2
						continue
					}
					out = append(out, runes[i+1])
					i += 2
					continue
				}
				out = append(out, cc)
				i++
			}
			if !closed {
				return "", fmt.Errorf("Text ended before matching quote was found for \"")
			}

		case '\'':
			i++
			closed := false
			for i < n {
				cc := runes[i]
				if cc == '\'' {
					i++
					closed = true
					break
				}
				out = append(out, cc)
				i++
			}
			if !closed {
				return "", fmt.Errorf("Text ended before matching quote was found for '")
			}

		default:
			out = append(out, c)
			i++
		}
	}
	return string(out), nil
}

// SplitArgs tokenizes and unquotes s in one step, the form PackageParser
// uses for Libs/Libs.private fields.
func SplitArgs(s string) ([]string, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		u, err := Unquote(tok)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// splitArgsSpans tokenizes and unquotes s like SplitArgs, additionally
// returning each output token's span in s so a caller can recover the
// original text between two adjacent tokens. Used by parseCflagsField for
// the Cflags field, where a bare "-I" must be re-merged with its
// successor using the literal whitespace that separated them.
func splitArgsSpans(s string) ([]string, []tokenSpan, error) {
	tokens, spans, err := tokenizeSpans(s)
	if err != nil {
		return nil, nil, err
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		u, err := Unquote(tok)
		if err != nil {
			return nil, nil, err
		}
		out[i] = u
	}
	return out, spans, nil
}
