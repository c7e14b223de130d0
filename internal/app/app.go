// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"

	"fakit-core/fasta"
	"fakit-core/filter"
	"fakit/internal/appcore"
	"fakit/internal/cli"
	"fakit/internal/cmdutil"
	"fakit/internal/version"
)

// FilteredSuffix is the standalone-tool naming convention for derived
// outputs: reads.fa → reads_filtered.fa.
const FilteredSuffix = "_filtered.fa"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("falen")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "falen version %s\n", version.Version)
		return 0
	}

	fo := filter.Options{MinLen: opts.MinLen, MaxLen: opts.MaxLen}
	if err := fo.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := cmdutil.NewLogger(stderr, "falen", opts.Verbose, opts.Quiet)

	var scanned, kept atomic.Int64
	visit := func(rec fasta.Record) (bool, fasta.Record, error) {
		scanned.Add(1)
		if !fo.Keep(rec.Length) {
			return false, fasta.Record{}, nil
		}
		kept.Add(1)
		return true, rec, nil
	}

	co := appcore.Options{
		Inputs:  opts.Inputs,
		Threads: opts.Threads,
	}
	if opts.Derived {
		co.Suffix = FilteredSuffix
		co.Report = func(input, output string, n int) {
			logger.Info("wrote filtered records", "input", input, "output", output, "kept", n)
		}
	}

	var code int
	if !opts.Derived && opts.Output != "" && opts.Output != "-" {
		code = runToFile(parent, opts.Output, stderr, co, visit, logger)
	} else {
		code = appcore.Run(parent, stdout, stderr, co, visit)
	}
	if code == 0 {
		logger.Debug("filter pass complete",
			"scanned", scanned.Load(), "kept", kept.Load(),
			"min", fo.MinLen, "max", fo.MaxLen)
	}
	return code
}

// runToFile runs the pass against a temp file and renames it into place
// only on success, so a failed run never leaves a truncated output.
func runToFile(ctx context.Context, path string, stderr io.Writer, o appcore.Options, visit appcore.Visit, logger *charmlog.Logger) int {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	code := appcore.Run(ctx, tmp, stderr, o, visit)
	cerr := tmp.Close()
	if code != 0 || cerr != nil {
		_ = os.Remove(tmp.Name())
		if code == 0 {
			fmt.Fprintln(stderr, cerr)
			return 3
		}
		return code
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		fmt.Fprintln(stderr, err)
		return 3
	}
	logger.Info("wrote filtered output", "path", path)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
