// internal/getseqcli/options.go
package getseqcli

import (
	"errors"
	"flag"
	"strings"

	"fakit/internal/clibase"
	"fakit/internal/cliutil"
)

// Options holds all fagetseq flags and arguments.
type Options struct {
	clibase.Common

	IDs    string // comma-separated record IDs
	IDFile string // file of record IDs, one per line
	Invert bool   // emit records NOT in the ID set
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = clibase.Usage(fs, name,
		"extract FASTA records by ID",
		"[input.fa ...]")
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.IDs, "ids", "", "comma-separated record IDs to extract")
	fs.StringVar(&opt.IDFile, "id-file", "", "file of record IDs, one per line")
	fs.BoolVar(&opt.Invert, "invert", false, "emit records whose ID is NOT in the set")
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

	if opt.IDs == "" && opt.IDFile == "" {
		return opt, errors.New("provide --ids or --id-file")
	}
	return opt, nil
}

// SeedIDs returns the IDs given directly on the command line.
func (o Options) SeedIDs() []string {
	if o.IDs == "" {
		return nil
	}
	var out []string
	for _, id := range strings.Split(o.IDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
