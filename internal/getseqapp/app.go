// internal/getseqapp/app.go
package getseqapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fakit-core/fasta"
	"fakit/internal/appcore"
	"fakit/internal/cmdutil"
	"fakit/internal/getseqcli"
	"fakit/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := getseqcli.NewFlagSet("fagetseq")
	fs.SetOutput(io.Discard)

	opts, err := getseqcli.ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "fagetseq version %s\n", version.Version)
		return 0
	}

	logger := cmdutil.NewLogger(stderr, "fagetseq", opts.Verbose, opts.Quiet)

	want, err := buildIDSet(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	logger.Debug("built ID set", "ids", len(want), "invert", opts.Invert)

	visit := func(rec fasta.Record) (bool, fasta.Record, error) {
		if want[rec.ID()] == opts.Invert {
			return false, fasta.Record{}, nil
		}
		return true, rec, nil
	}

	co := appcore.Options{
		Inputs:          opts.Inputs,
		NoMatchExitCode: 1,
	}
	return appcore.Run(parent, stdout, stderr, co, visit)
}

// buildIDSet merges --ids and --id-file into one lookup set.
func buildIDSet(opts getseqcli.Options) (map[string]bool, error) {
	want := make(map[string]bool)
	for _, id := range opts.SeedIDs() {
		want[id] = true
	}
	if opts.IDFile == "" {
		return want, nil
	}

	f, err := os.Open(opts.IDFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		id := strings.TrimSpace(sc.Text())
		if id == "" || strings.HasPrefix(id, "#") {
			continue
		}
		want[id] = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opts.IDFile, err)
	}
	return want, nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
