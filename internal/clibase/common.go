// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"fakit/internal/cliutil"
	"fakit/internal/version"
)

// Common holds the CLI fields every fakit tool shares.
type Common struct {
	Inputs []string

	Quiet   bool
	Verbose bool
	Version bool
}

// Register wires the shared flags onto fs and returns a pointer to the
// help bool the caller checks after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress informational logging")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
	help := false
	fs.BoolVar(&help, "h", false, "show this help message")
	return &help
}

// AfterParse expands glob positionals into Common.Inputs ('-' = stdin,
// the default when none are given) and applies shared validation.
func AfterParse(c *Common, posArgs []string) error {
	inputs, err := cliutil.ExpandGlobs(posArgs)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	c.Inputs = inputs

	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// Usage returns the usage func for a tool's flag set.
func Usage(fs *flag.FlagSet, name, oneline, operands string) func() {
	return func() {
		fmt.Fprintf(fs.Output(), `%s: %s

Version: %s

Usage: %s [options] %s
`, name, oneline, version.Version, name, operands)
		fs.PrintDefaults()
	}
}
