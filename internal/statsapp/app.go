// internal/statsapp/app.go
package statsapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"fakit-core/fasta"
	"fakit-core/stats"
	"fakit/internal/cmdutil"
	"fakit/internal/output"
	"fakit/internal/pretty"
	"fakit/internal/statscli"
	"fakit/internal/version"
	"fakit/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := statscli.NewFlagSet("fastats")
	fs.SetOutput(io.Discard)

	opts, err := statscli.ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "fastats version %s\n", version.Version)
		return 0
	}

	logger := cmdutil.NewLogger(stderr, "fastats", opts.Verbose, opts.Quiet)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		reports []stats.Report
		rows    []output.RecordRow
	)
	for _, path := range opts.Inputs {
		sum, perFile, err := scanOne(ctx, path, opts.Each)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			fmt.Fprintln(stderr, err)
			return 3
		}
		reports = append(reports, sum.Report(displayName(path)))
		rows = append(rows, perFile...)
		logger.Debug("scanned input", "path", path, "sequences", sum.Count(), "total_bp", sum.Total())
	}

	outw := bufio.NewWriter(stdout)
	switch {
	case opts.Each:
		err = writers.WritePerRecord(opts.Output, outw, rows)
	case opts.Pretty:
		for i, r := range reports {
			if i > 0 {
				if _, err = fmt.Fprintln(outw); err != nil {
					break
				}
			}
			if _, err = io.WriteString(outw, pretty.RenderSummary(r)); err != nil {
				break
			}
		}
	default:
		err = writers.WriteSummary(opts.Output, outw, reports)
	}
	if err == nil {
		err = outw.Flush()
	}
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// scanOne reads one FASTA input through the biogo scanner and folds the
// sequence lengths into a summary. Wrapping does not matter here, so the
// ecosystem reader is fine; gzip and '-' handling comes from our opener.
func scanOne(ctx context.Context, path string, each bool) (*stats.Summary, []output.RecordRow, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	r := biofasta.NewReader(rc, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)

	var (
		sum  stats.Summary
		rows []output.RecordRow
	)
	for sc.Next() {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}
		s := sc.Seq()
		sum.Add(s.Len())
		if each {
			rows = append(rows, output.RecordRow{Name: s.Name(), Length: s.Len()})
		}
	}
	if err := sc.Error(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sum, rows, nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
