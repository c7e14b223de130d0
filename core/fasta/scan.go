// core/fasta/scan.go
package fasta

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// MalformedInputError reports sequence data encountered before any '>'
// header line.
type MalformedInputError struct {
	Line int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("fasta: line %d: sequence data before any '>' header", e.Line)
}

// ScanCtx parses FASTA from r and calls emit once per complete record, in
// input order. Records keep their original body lines so callers can
// re-emit them verbatim; at most one record is buffered at a time.
//
// A record is evaluated when the next header is sighted AND on end of
// input, so the final record is never dropped. Blank lines before the
// first header are ignored; any other content before the first header is
// a MalformedInputError.
//
// It is cancelable: returning promptly when ctx is Done, even mid-record.
func ScanCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur    Record
		active bool
		lineNo int
	)

	flush := func() error {
		if !active {
			return nil
		}
		rec := cur
		cur = Record{}
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			cur = Record{Header: line}
			active = true
			continue
		}
		if !active {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return &MalformedInputError{Line: lineNo}
		}
		cur.Body = append(cur.Body, line)
		cur.Length += len(strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}
