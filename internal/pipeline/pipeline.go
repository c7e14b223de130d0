// internal/pipeline/pipeline.go
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"fakit-core/fasta"
)

// DerivedPath returns the conventional standalone output name for an
// input: the input with any .gz and FASTA extension stripped, plus
// suffix. "reads.fa.gz" + "_filtered.fa" → "reads_filtered.fa", placed
// next to the input.
func DerivedPath(input, suffix string) string {
	base := input
	if strings.EqualFold(filepath.Ext(base), ".gz") {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".fa", ".fasta", ".fna":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base + suffix
}

// RunPerFile processes each input file into its own derived output.
// Files are independent instances of the same stateless pass, so an
// errgroup runs up to threads of them at once (0 = all CPUs); visit must
// therefore be safe for concurrent use. Each output is atomic: records
// go to a temp file in the destination directory which is renamed only
// on success and removed on any failure, so a broken run never leaves a
// truncated output behind.
//
// report, when non-nil, is called once per completed file. The total
// number of kept records and the first error are returned.
func RunPerFile(
	ctx context.Context,
	threads int,
	inputs []string,
	suffix string,
	visit func(fasta.Record) (bool, fasta.Record, error),
	report func(input, output string, kept int),
) (int, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	var total atomic.Int64
	for _, input := range inputs {
		input := input
		g.Go(func() error {
			kept, err := runOne(gctx, input, suffix, visit)
			if err != nil {
				return err
			}
			total.Add(int64(kept))
			if report != nil {
				report(input, DerivedPath(input, suffix), kept)
			}
			return nil
		})
	}
	err := g.Wait()
	return int(total.Load()), err
}

func runOne(ctx context.Context, input, suffix string, visit func(fasta.Record) (bool, fasta.Record, error)) (int, error) {
	if input == "-" {
		return 0, fmt.Errorf("derived output requires file inputs, not stdin")
	}
	outPath := DerivedPath(input, suffix)

	tmp, err := os.CreateTemp(filepath.Dir(outPath), filepath.Base(outPath)+".tmp-*")
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(tmp)

	kept := 0
	err = fasta.ScanPathCtx(ctx, input, func(rec fasta.Record) error {
		keep, out, verr := visit(rec)
		if verr != nil {
			return verr
		}
		if !keep {
			return nil
		}
		if _, werr := out.WriteTo(bw); werr != nil {
			return werr
		}
		kept++
		return nil
	})
	if err == nil {
		err = bw.Flush()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), outPath)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return 0, err
	}
	return kept, nil
}
