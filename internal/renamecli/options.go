// internal/renamecli/options.go
package renamecli

import (
	"errors"
	"flag"

	"fakit/internal/clibase"
	"fakit/internal/cliutil"
)

// Options holds all farename flags and arguments.
type Options struct {
	clibase.Common

	Prefix   string // counter mode: headers become >PREFIX_<n>
	MapFile  string // map mode: TSV old<TAB>new ID rewrites
	KeepDesc bool   // counter mode: retain the original description
	Strict   bool   // map mode: unmapped IDs are an error
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = clibase.Usage(fs, name,
		"rewrite FASTA headers with a counter prefix or a TSV ID map",
		"[input.fa ...]")
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Prefix, "prefix", "", "rename headers to >PREFIX_<n> in input order")
	fs.StringVar(&opt.MapFile, "map", "", "TSV file of old<TAB>new ID rewrites")
	fs.BoolVar(&opt.KeepDesc, "keep-desc", false, "with --prefix, keep the original description after the new ID")
	fs.BoolVar(&opt.Strict, "strict", false, "with --map, fail on IDs missing from the map")
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

	switch {
	case opt.Prefix == "" && opt.MapFile == "":
		return opt, errors.New("provide --prefix or --map")
	case opt.Prefix != "" && opt.MapFile != "":
		return opt, errors.New("--prefix conflicts with --map")
	case opt.KeepDesc && opt.Prefix == "":
		return opt, errors.New("--keep-desc requires --prefix")
	case opt.Strict && opt.MapFile == "":
		return opt, errors.New("--strict requires --map")
	}
	return opt, nil
}
