package pcfile

import (
	"strings"
	"testing"
)

func lines(t *testing.T, input string) []string {
	t.Helper()
	tl, err := NewTextLoader(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	var out []string
	for {
		line, ok := ReadLogicalLine(tl)
		if !ok {
			break
		}
		out = append(out, line)
	}
	return out
}

func TestReadLogicalLineBasic(t *testing.T) {
	got := lines(t, "Name: foo\nVersion: 1\n")
	want := []string{"Name: foo", "Version: 1"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadLogicalLineComment(t *testing.T) {
	got := lines(t, "Name: foo # a comment\nVersion: 1\n")
	want := []string{"Name: foo ", "Version: 1"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadLogicalLineContinuation(t *testing.T) {
	got := lines(t, "Cflags: -a \\\n-b\n")
	want := []string{"Cflags: -a -b"}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadLogicalLineLiteralBackslashChar(t *testing.T) {
	got := lines(t, "Description: a\\$b\n")
	want := []string{"Description: a\\$b"}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadLogicalLineEOFWhileQuoted(t *testing.T) {
	got := lines(t, "Cflags: -a \\")
	want := []string{"Cflags: -a \\"}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadLogicalLineCRLFContinuation(t *testing.T) {
	got := lines(t, "Cflags: -a \\\r\n-b\n")
	want := []string{"Cflags: -a -b"}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadLogicalLineEmptyInputNoLines(t *testing.T) {
	got := lines(t, "")
	if len(got) != 0 {
		t.Fatalf("got %q, want no lines", got)
	}
}
