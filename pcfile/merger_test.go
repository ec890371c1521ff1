package pcfile

import (
	"reflect"
	"testing"
)

func flag(class FlagClass, args ...string) Flag {
	return Flag{Class: class, Args: args}
}

func TestMergeCflagsBasic(t *testing.T) {
	pkg := &Package{Key: "cflags-abc", Cflags: []Flag{
		flag(CflagsOther, "-a"),
		flag(CflagsOther, "-b"),
		flag(CflagsOther, "-c"),
	}}
	got := merge([]*Package{pkg}, cflagsMergeConfig)
	want := []string{"-a", "-b", "-c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMergeCflagsIncludeSort(t *testing.T) {
	// Mirrors the Flag shape parseCflagsField actually produces for a
	// bare "-I" followed by its path: one CflagsI flag whose single Args
	// entry is the literal source text, whitespace included.
	pkg := &Package{Key: "cflags-i-other", PathPosition: 1, Cflags: []Flag{
		flag(CflagsI, "-isystem", "isystem/option"),
		flag(CflagsI, "-idirafter", "idirafter/option"),
		flag(CflagsI, "-I  include/dir"),
		flag(CflagsOther, "--other"),
	}}
	got := merge([]*Package{pkg}, cflagsMergeConfig)
	want := []string{"--other", "-I  include/dir", "-isystem", "isystem/option", "-idirafter", "idirafter/option"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMergeCflagsPathOrdering(t *testing.T) {
	mod1 := &Package{Key: "mod1", PathPosition: 1, Cflags: []Flag{
		flag(CflagsOther, "--other1"),
		flag(CflagsOther, "--another1"),
		flag(CflagsI, "-Iinclude/d1"),
		flag(CflagsI, "-isystem", "s1"),
	}}
	mod2 := &Package{Key: "mod2", PathPosition: 2, Cflags: []Flag{
		flag(CflagsOther, "--other2"),
		flag(CflagsOther, "--another2"),
		flag(CflagsI, "-Iinclude/d2"),
		flag(CflagsI, "-isystem", "s2"),
	}}
	got := merge([]*Package{mod2, mod1}, cflagsMergeConfig)
	want := []string{
		"--other2", "--another2", "--other1", "--another1",
		"-Iinclude/d1", "-isystem", "s1", "-Iinclude/d2", "-isystem", "s2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMergeStaticLibsClosure(t *testing.T) {
	public := &Package{Key: "public", PathPosition: 1, PrivateLibs: []Flag{
		flag(LibsL, "-L/lib/public"),
		flag(LibsSmallL, "-lpublic"),
	}}
	private := &Package{Key: "private", PathPosition: 2, PrivateLibs: []Flag{
		flag(LibsL, "-L/lib/private"),
		flag(LibsSmallL, "-lprivate"),
	}}
	root := &Package{
		Key:             "req-pubpriv",
		PathPosition:    3,
		Requires:        []*Package{public},
		RequiresPrivate: []*Package{private, public},
		PrivateLibs: []Flag{
			flag(LibsL, "-L/lib/pubpriv"),
			flag(LibsSmallL, "-lreq"),
		},
	}

	got := merge([]*Package{root}, staticLibsMergeConfig)
	want := []string{
		"-L/lib/pubpriv", "-L/lib/private", "-L/lib/public",
		"-lreq", "-lprivate", "-lpublic",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMergeConsecutiveDuplicateSuppression(t *testing.T) {
	pkg := &Package{Key: "dup", Cflags: []Flag{
		flag(CflagsOther, "-a"),
		flag(CflagsOther, "-a"),
		flag(CflagsOther, "-b"),
		flag(CflagsOther, "-a"),
	}}
	got := merge([]*Package{pkg}, cflagsMergeConfig)
	want := []string{"-a", "-b", "-a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}
