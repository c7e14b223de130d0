// core/fasta/path.go
package fasta

import "context"

// ScanPathCtx opens path (gzip and "-" aware) and scans its records into
// emit. See ScanCtx for parsing semantics.
func ScanPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ScanCtx(ctx, rc, emit)
}

// StreamCtx is the channel wrapper around ScanPathCtx. Open errors for
// non-stdin paths are reported up front, before any goroutine starts.
// Scan errors are delivered on the error channel once the record channel
// has been closed.
func StreamCtx(ctx context.Context, path string) (<-chan Record, <-chan error, error) {
	if path != "-" {
		rc, err := Open(path)
		if err != nil {
			return nil, nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		errc <- ScanPathCtx(ctx, path, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, errc, nil
}
