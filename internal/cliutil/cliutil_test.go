package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("min-length", 0, "")
	fs.Bool("quiet", false, "")
	return fs
}

func TestSplitArgsInterleaved(t *testing.T) {
	flags, pos := SplitArgs(newFS(), []string{"a.fa", "--min-length", "100", "b.fa", "--quiet", "-"})
	if !reflect.DeepEqual(flags, []string{"--min-length", "100", "--quiet"}) {
		t.Errorf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"a.fa", "b.fa", "-"}) {
		t.Errorf("pos = %v", pos)
	}
}

func TestSplitArgsEquals(t *testing.T) {
	flags, pos := SplitArgs(newFS(), []string{"--min-length=5", "in.fa"})
	if !reflect.DeepEqual(flags, []string{"--min-length=5"}) || !reflect.DeepEqual(pos, []string{"in.fa"}) {
		t.Errorf("flags=%v pos=%v", flags, pos)
	}
}

func TestSplitArgsDoubleDash(t *testing.T) {
	flags, pos := SplitArgs(newFS(), []string{"--quiet", "--", "--min-length", "weird.fa"})
	if !reflect.DeepEqual(flags, []string{"--quiet"}) {
		t.Errorf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"--min-length", "weird.fa"}) {
		t.Errorf("pos = %v", pos)
	}
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fa"} {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	out, err := ExpandGlobs([]string{filepath.Join(dir, "*.fa"), "-"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(out) != 3 || out[2] != "-" {
		t.Fatalf("out = %v", out)
	}
}

func TestExpandGlobsNoMatch(t *testing.T) {
	if _, err := ExpandGlobs([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatalf("expected error for unmatched glob")
	}
}
