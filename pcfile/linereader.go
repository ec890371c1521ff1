package pcfile

// lineState drives the logical-line assembly state machine.
type lineState int

const (
	lineDefault lineState = iota
	lineComment
	lineQuoted
)

// ReadLogicalLine assembles one logical line from cs: physical lines are
// joined across a trailing backslash per the rules below, comments
// starting with '#' are stripped, and CR/LF variants are consumed. It
// returns ok=false only when the stream is already at EOF with nothing
// read (mirroring the underlying text loader's own EOF signal).
//
// The state machine intentionally reproduces an asymmetry between quoted
// and unquoted CRLF handling: unquoted mode swallows a trailing "\n\r"
// pair (note the reversed order) while quoted (post-backslash)
// continuation swallows either "\r\n" or "\n\r". This matches the
// reference implementation and must not be "fixed".
func ReadLogicalLine(cs CharSource) (string, bool) {
	var buf []rune
	state := lineDefault
	sawAny := false

	for {
		next := cs.GetChar()
		if next == "" {
			if state == lineQuoted {
				buf = append(buf, '\\')
			}
			if !sawAny && len(buf) == 0 {
				return "", false
			}
			return string(buf), true
		}
		sawAny = true
		c := []rune(next)[0]

		switch state {
		case lineDefault:
			switch c {
			case '#':
				state = lineComment
			case '\\':
				state = lineQuoted
			case '\n':
				consumeCompanion(cs, '\r')
				return string(buf), true
			default:
				buf = append(buf, c)
			}

		case lineComment:
			if c == '\n' {
				consumeCompanion(cs, '\r')
				return string(buf), true
			}
			// discard comment characters

		case lineQuoted:
			switch c {
			case '#':
				buf = append(buf, '#')
				state = lineDefault
			case '\r':
				consumeCompanion(cs, '\n')
				state = lineDefault
			case '\n':
				consumeCompanion(cs, '\r')
				state = lineDefault
			default:
				buf = append(buf, '\\', c)
				state = lineDefault
			}
		}
	}
}

// consumeCompanion reads one more character from cs; if it equals want,
// it is consumed (part of a CR/LF pair), otherwise it is pushed back.
func consumeCompanion(cs CharSource, want rune) {
	next := cs.GetChar()
	if next == "" {
		return
	}
	c := []rune(next)[0]
	if c != want {
		cs.UngetChar(c)
	}
}
