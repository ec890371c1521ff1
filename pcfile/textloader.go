package pcfile

import (
	"fmt"
	"io"
)

// CharSource is a one-character-lookahead stream: GetChar returns the
// empty string at EOF, and UngetChar pushes back the single most
// recently returned character.
type CharSource interface {
	GetChar() string
	UngetChar(c rune) error
}

// TextLoader reads a file's full contents into memory once and exposes it
// as a CharSource with one-character pushback.
type TextLoader struct {
	data    []rune
	pos     int
	last    rune
	hasLast bool
}

// NewTextLoader reads all of r into memory as a TextLoader.
func NewTextLoader(r io.Reader) (*TextLoader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}
	return &TextLoader{data: []rune(string(b))}, nil
}

// GetChar returns the next character, or "" at EOF.
func (t *TextLoader) GetChar() string {
	if t.pos >= len(t.data) {
		t.hasLast = false
		return ""
	}
	c := t.data[t.pos]
	t.pos++
	t.last = c
	t.hasLast = true
	return string(c)
}

// UngetChar pushes c back onto the stream. c must be the character most
// recently returned by GetChar.
func (t *TextLoader) UngetChar(c rune) error {
	if !t.hasLast || c != t.last {
		return fmt.Errorf("ungetChar: %q does not match last character returned", c)
	}
	t.pos--
	t.hasLast = false
	return nil
}
