// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"fakit-core/fasta"
	"fakit/internal/pipeline"
	"fakit/internal/writers"
)

// Options configure one record-stream run shared by the record tools
// (falen, farename, fagetseq).
type Options struct {
	Inputs []string

	// Suffix switches on derived-output mode: each input file gets its
	// own "<base><Suffix>" output next to it and files run in parallel.
	// Empty means records stream to stdout sequentially, in input order.
	Suffix  string
	Threads int

	// Report, when set, is called once per completed derived output.
	Report func(input, output string, kept int)

	// NoMatchExitCode is returned when the run succeeds but keeps zero
	// records (0 unless a tool wants grep semantics).
	NoMatchExitCode int
}

// Visit inspects one record and decides whether, and as what, it is
// emitted. In derived-output mode it may be called concurrently.
type Visit func(fasta.Record) (keep bool, out fasta.Record, err error)

// Run drives a whole pass and maps its outcome onto process exit codes:
// 0 success, 3 data/IO errors, 130 cancellation. A broken pipe on the
// way out is success: the consumer simply stopped reading.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, visit Visit) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	if o.Suffix != "" {
		kept, err := pipeline.RunPerFile(ctx, o.Threads, o.Inputs, o.Suffix, visit, o.Report)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			fmt.Fprintln(stderr, err)
			return 3
		}
		if kept == 0 {
			return o.NoMatchExitCode
		}
		return 0
	}

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.StartRecordWriter(outw, 64)

	kept := 0
	var perr error
	for _, path := range o.Inputs {
		perr = fasta.ScanPathCtx(ctx, path, func(rec fasta.Record) error {
			keep, out, err := visit(rec)
			if err != nil {
				return err
			}
			if !keep {
				return nil
			}
			select {
			case inCh <- out:
				kept++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if perr != nil {
			break
		}
	}
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if kept == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
