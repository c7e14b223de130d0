// internal/statscli/options.go
package statscli

import (
	"errors"
	"flag"
	"fmt"

	"fakit/internal/clibase"
	"fakit/internal/cliutil"
)

// Options holds all fastats flags and arguments.
type Options struct {
	clibase.Common

	Output string // text | tsv | json
	Each   bool   // per-record name/length rows instead of summaries
	Pretty bool   // styled terminal block (text summaries only)
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = clibase.Usage(fs, name,
		"sequence length statistics (N50 and friends) for FASTA inputs",
		"[input.fa ...]")
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Output, "output", "text", "output format: text | tsv | json")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Each, "each", false, "emit one name/length row per sequence instead of summaries")
	fs.BoolVar(&opt.Pretty, "pretty", false, "styled summary block (text output only)")
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

	switch opt.Output {
	case "text", "tsv", "json":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Pretty && opt.Each {
		return opt, errors.New("--pretty applies to summaries, not --each rows")
	}
	if opt.Pretty && opt.Output != "text" {
		return opt, errors.New("--pretty requires text output")
	}
	return opt, nil
}
