// internal/writers/record.go
package writers

import (
	"io"

	"fakit-core/fasta"
)

// StartRecordWriter spins up the writer goroutine that re-emits records
// verbatim. Whole records only: a record is either fully written or not
// written at all. The first write error is remembered and delivered on
// the error channel after the input channel closes; later records are
// drained so producers never block on a dead writer.
func StartRecordWriter(out io.Writer, bufSize int) (chan<- fasta.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan fasta.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for rec := range in {
			if err != nil {
				continue
			}
			_, err = rec.WriteTo(out)
		}
		errCh <- err
	}()

	return in, errCh
}
