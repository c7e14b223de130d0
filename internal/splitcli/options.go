// internal/splitcli/options.go
package splitcli

import (
	"errors"
	"flag"

	"fakit/internal/clibase"
	"fakit/internal/cliutil"
)

// Options holds all fasplit flags and arguments.
type Options struct {
	clibase.Common

	Input string // single input ('-' = stdin)
	Dir   string // per-record mode: one <id>.fasta per record under Dir
	Parts int    // part mode: round-robin into <base>_part<i>.fa
	Base  string // part naming base (required for stdin part mode)
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = clibase.Usage(fs, name,
		"split a multi-FASTA into per-record files or round-robin parts",
		"[input.fa]")
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Dir, "dir", "", "write one <id>.fasta per record into this directory")
	fs.IntVar(&opt.Parts, "parts", 0, "round-robin records into this many <base>_part<i>.fa files")
	fs.StringVar(&opt.Base, "base", "", "part naming base (defaults to the input name; required for stdin)")
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

	if len(opt.Inputs) != 1 {
		return opt, errors.New("exactly one input is required")
	}
	opt.Input = opt.Inputs[0]

	switch {
	case opt.Dir == "" && opt.Parts == 0:
		return opt, errors.New("provide --dir or --parts")
	case opt.Dir != "" && opt.Parts != 0:
		return opt, errors.New("--dir conflicts with --parts")
	case opt.Parts < 0:
		return opt, errors.New("--parts must be positive")
	}
	if opt.Parts > 0 && opt.Input == "-" && opt.Base == "" {
		return opt, errors.New("--base is required when splitting stdin into parts")
	}
	return opt, nil
}
