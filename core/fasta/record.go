// core/fasta/record.go
package fasta

import (
	"io"
	"strings"
)

// Record is one FASTA record: the header line (including the '>' marker)
// and the body lines exactly as they appeared in the input, so a record
// can be re-emitted byte-for-byte. Length is the sequence character count
// with wrap boundaries and surrounding whitespace excluded.
type Record struct {
	Header string
	Body   []string
	Length int
}

// ID returns the first whitespace-delimited token after the '>' marker.
func (r Record) ID() string {
	h := strings.TrimPrefix(r.Header, ">")
	if f := strings.Fields(h); len(f) > 0 {
		return f[0]
	}
	return ""
}

// Seq returns the logical sequence with wrap boundaries removed.
func (r Record) Seq() string {
	var b strings.Builder
	b.Grow(r.Length)
	for _, l := range r.Body {
		b.WriteString(strings.TrimSpace(l))
	}
	return b.String()
}

// WriteTo re-emits the record verbatim: original header, original line
// wrapping. Implements io.WriterTo.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	var n int64
	m, err := io.WriteString(w, r.Header)
	n += int64(m)
	if err != nil {
		return n, err
	}
	m, err = io.WriteString(w, "\n")
	n += int64(m)
	if err != nil {
		return n, err
	}
	for _, l := range r.Body {
		m, err = io.WriteString(w, l)
		n += int64(m)
		if err != nil {
			return n, err
		}
		m, err = io.WriteString(w, "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
