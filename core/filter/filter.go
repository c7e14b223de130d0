// core/filter/filter.go
package filter

import (
	"context"
	"fmt"
	"io"

	"fakit-core/fasta"
)

// Options are the inclusive sequence length bounds a record must satisfy
// to be kept. MaxLen == 0 means no upper bound.
type Options struct {
	MinLen int
	MaxLen int
}

// InvalidThresholdError reports an unusable MinLen/MaxLen combination.
type InvalidThresholdError struct {
	Reason string
}

func (e *InvalidThresholdError) Error() string { return "filter: " + e.Reason }

func (o Options) Validate() error {
	if o.MinLen <= 0 {
		return &InvalidThresholdError{Reason: fmt.Sprintf("minimum length must be positive, got %d", o.MinLen)}
	}
	if o.MaxLen != 0 && o.MaxLen < o.MinLen {
		return &InvalidThresholdError{Reason: fmt.Sprintf("maximum length %d is smaller than minimum length %d", o.MaxLen, o.MinLen)}
	}
	return nil
}

// Keep reports whether a sequence of the given length is within bounds.
func (o Options) Keep(length int) bool {
	if length < o.MinLen {
		return false
	}
	if o.MaxLen != 0 && length > o.MaxLen {
		return false
	}
	return true
}

// Stats counts one filter pass.
type Stats struct {
	Scanned int
	Kept    int
}

// Run streams FASTA from r to w keeping only records within bounds.
// One forward pass, one buffered record at a time. Kept records are
// written verbatim and whole, in input order; an empty result is not an
// error. The final record is evaluated at end of input like any other.
func Run(ctx context.Context, o Options, r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	if err := o.Validate(); err != nil {
		return st, err
	}
	err := fasta.ScanCtx(ctx, r, func(rec fasta.Record) error {
		st.Scanned++
		if !o.Keep(rec.Length) {
			return nil
		}
		if _, werr := rec.WriteTo(w); werr != nil {
			return werr
		}
		st.Kept++
		return nil
	})
	return st, err
}
