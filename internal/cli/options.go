// internal/cli/options.go
package cli

import (
	"errors"
	"flag"

	"fakit/internal/clibase"
	"fakit/internal/cliutil"
)

// Options holds all falen flags and arguments.
type Options struct {
	clibase.Common

	MinLen int
	MaxLen int

	Output  string // "" or "-" = stdout
	Derived bool   // write <input-base>_filtered.fa next to each input
	Threads int    // derived mode only (0 = all CPUs)
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = clibase.Usage(fs, name,
		"keep FASTA records within a sequence length range, re-emitted verbatim",
		"[input.fa ...]")
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Threshold bounds themselves are validated by the filter engine.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.IntVar(&opt.MinLen, "min-length", 0, "minimum sequence length, inclusive (required, > 0)")
	fs.IntVar(&opt.MinLen, "m", 0, "alias of --min-length")
	fs.IntVar(&opt.MaxLen, "max-length", 0, "maximum sequence length, inclusive (0 = unbounded)")
	fs.StringVar(&opt.Output, "output", "", "output file ('-' or empty = stdout)")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.BoolVar(&opt.Derived, "derived", false, "write <input-base>_filtered.fa next to each input instead of stdout")
	fs.IntVar(&opt.Threads, "threads", 0, "derived mode: input files processed in parallel (0 = all CPUs)")
	help := clibase.Register(fs, &opt.Common)

	flagArgs, posArgs := cliutil.SplitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if *help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if err := clibase.AfterParse(&opt.Common, posArgs); err != nil {
		return opt, err
	}

	// Validation
	if opt.MinLen == 0 {
		return opt, errors.New("--min-length is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.Derived {
		if opt.Output != "" && opt.Output != "-" {
			return opt, errors.New("--derived conflicts with --output")
		}
		for _, in := range opt.Inputs {
			if in == "-" {
				return opt, errors.New("--derived requires file inputs, not stdin")
			}
		}
	}
	return opt, nil
}
