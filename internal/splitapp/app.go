// internal/splitapp/app.go
package splitapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"fakit-core/fasta"
	"fakit/internal/cmdutil"
	"fakit/internal/pipeline"
	"fakit/internal/splitcli"
	"fakit/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := splitcli.NewFlagSet("fasplit")
	fs.SetOutput(io.Discard)

	opts, err := splitcli.ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "fasplit version %s\n", version.Version)
		return 0
	}

	logger := cmdutil.NewLogger(stderr, "fasplit", opts.Verbose, opts.Quiet)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	if opts.Dir != "" {
		err = splitPerRecord(ctx, cancel, opts.Input, opts.Dir, logger)
	} else {
		err = splitParts(ctx, opts, logger)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// splitPerRecord writes each record into <dir>/<id>.fasta.
func splitPerRecord(ctx context.Context, cancel context.CancelFunc, input, dir string, logger *charmlog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	recs, errc, err := fasta.StreamCtx(ctx, input)
	if err != nil {
		return err
	}

	n := 0
	var werr error
	for rec := range recs {
		n++
		name := sanitizeName(rec.ID())
		if name == "" {
			name = fmt.Sprintf("record_%d", n)
		}
		if werr = writeRecordFile(filepath.Join(dir, name+".fasta"), rec); werr != nil {
			cancel()
			break
		}
	}
	for range recs {
		// drain after an early break so the scanner goroutine can exit
	}
	serr := <-errc
	if werr != nil {
		return werr
	}
	if serr != nil && !errors.Is(serr, context.Canceled) {
		return serr
	}
	logger.Info("split complete", "records", n, "dir", dir)
	return nil
}

// splitParts round-robins records into <base>_part<i>.fa files.
func splitParts(ctx context.Context, opts splitcli.Options, logger *charmlog.Logger) error {
	base := opts.Base
	if base == "" {
		// parts go next to the input: dir/in.fa → dir/in_part<i>.fa
		base = pipeline.DerivedPath(opts.Input, "")
	}

	paths := make([]string, opts.Parts)
	files := make([]*os.File, opts.Parts)
	bufs := make([]*bufio.Writer, opts.Parts)
	cleanup := func() {
		for i, f := range files {
			if f != nil {
				_ = f.Close()
			}
			if paths[i] != "" {
				_ = os.Remove(paths[i])
			}
		}
	}
	for i := range paths {
		paths[i] = fmt.Sprintf("%s_part%d.fa", base, i+1)
		f, err := os.Create(paths[i])
		if err != nil {
			cleanup()
			return err
		}
		files[i] = f
		bufs[i] = bufio.NewWriter(f)
	}

	n := 0
	err := fasta.ScanPathCtx(ctx, opts.Input, func(rec fasta.Record) error {
		_, werr := rec.WriteTo(bufs[n%opts.Parts])
		n++
		return werr
	})
	if err != nil {
		cleanup()
		return err
	}
	for i := range files {
		ferr := bufs[i].Flush()
		if cerr := files[i].Close(); ferr == nil {
			ferr = cerr
		}
		files[i] = nil
		if ferr != nil {
			cleanup()
			return ferr
		}
	}
	logger.Info("split complete", "records", n, "parts", opts.Parts, "base", base)
	return nil
}

// writeRecordFile writes one record to its own file, removing the file
// again if the write fails part way.
func writeRecordFile(path string, rec fasta.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	_, err = rec.WriteTo(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
	}
	return err
}

// sanitizeName keeps record IDs usable as file names.
func sanitizeName(id string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, id)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
