// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// boolFlags returns the names of registered flags that take no value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitArgs separates flag-like arguments from positionals so tools can
// accept flags and input paths in any order. '-' is a positional (stdin),
// '--' ends flag parsing, and '--x=y' stays a single flag argument. Flags
// must already be registered on fs so value-taking flags can consume the
// following argument.
func SplitArgs(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	bools := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			posArgs = append(posArgs, argv[i+1:]...)
			return
		case arg == "-":
			posArgs = append(posArgs, arg)
		case strings.HasPrefix(arg, "-"):
			flagArgs = append(flagArgs, arg)
			if strings.Contains(arg, "=") {
				continue
			}
			name := strings.TrimLeft(arg, "-")
			if !bools[name] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		default:
			posArgs = append(posArgs, arg)
		}
	}
	return
}

// ExpandGlobs expands shell-style patterns among path positionals, so
// batch invocations work even when the caller's shell did not expand
// them. Non-glob arguments pass through untouched; a pattern matching
// nothing is an error rather than a silent no-op.
func ExpandGlobs(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		if a == "-" || !strings.ContainsAny(a, "*?[") {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
