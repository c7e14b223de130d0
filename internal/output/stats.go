// internal/output/stats.go
package output

import (
	"fmt"
	"io"

	"fakit-core/stats"
)

const SummaryHeader = "file\tsequences\ttotal_bp\tmin\tmax\tmean\tn50\tn90"

// WriteSummaryTSV writes one tab-delimited row per input file.
func WriteSummaryTSV(w io.Writer, rows []stats.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SummaryHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.1f\t%d\t%d\n",
			r.Name, r.Sequences, r.TotalLength, r.MinLength, r.MaxLength, r.MeanLength, r.N50, r.N90,
		); err != nil {
			return err
		}
	}
	return nil
}

// RecordRow is one name/length pair for per-record output.
type RecordRow struct {
	Name   string
	Length int
}

const RecordRowHeader = "name\tlength"

// WriteRecordRowsTSV writes one tab-delimited row per sequence.
func WriteRecordRowsTSV(w io.Writer, rows []RecordRow, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, RecordRowHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", r.Name, r.Length); err != nil {
			return err
		}
	}
	return nil
}
