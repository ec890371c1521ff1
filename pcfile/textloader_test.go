package pcfile

import (
	"strings"
	"testing"
)

func TestTextLoaderGetCharEOF(t *testing.T) {
	tl, err := NewTextLoader(strings.NewReader("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if got := tl.GetChar(); got != "a" {
		t.Fatalf("GetChar() = %q, want %q", got, "a")
	}
	if got := tl.GetChar(); got != "b" {
		t.Fatalf("GetChar() = %q, want %q", got, "b")
	}
	if got := tl.GetChar(); got != "" {
		t.Fatalf("GetChar() at EOF = %q, want empty string", got)
	}
}

func TestTextLoaderUngetChar(t *testing.T) {
	tl, err := NewTextLoader(strings.NewReader("xy"))
	if err != nil {
		t.Fatal(err)
	}
	tl.GetChar() // 'x'
	if err := tl.UngetChar('x'); err != nil {
		t.Fatalf("UngetChar: %v", err)
	}
	if got := tl.GetChar(); got != "x" {
		t.Fatalf("GetChar() after unget = %q, want %q", got, "x")
	}
}

func TestTextLoaderUngetCharMismatch(t *testing.T) {
	tl, err := NewTextLoader(strings.NewReader("xy"))
	if err != nil {
		t.Fatal(err)
	}
	tl.GetChar() // 'x'
	if err := tl.UngetChar('z'); err == nil {
		t.Fatal("expected error ungetting a character that wasn't last returned")
	}
}

func TestTextLoaderUngetCharWithoutPriorGet(t *testing.T) {
	tl, err := NewTextLoader(strings.NewReader("xy"))
	if err != nil {
		t.Fatal(err)
	}
	if err := tl.UngetChar('x'); err == nil {
		t.Fatal("expected error ungetting before any GetChar call")
	}
}
