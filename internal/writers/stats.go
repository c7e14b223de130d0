// internal/writers/stats.go
package writers

import (
	"fmt"
	"io"

	"fakit-core/stats"
	"fakit/internal/output"
)

// Format → handler registries for fastats payloads, filled at init so
// dispatch stays a map lookup rather than a switch.
var (
	summaryWriters   = map[string]func(io.Writer, []stats.Report) error{}
	perRecordWriters = map[string]func(io.Writer, []output.RecordRow) error{}
)

func init() {
	summaryWriters["text"] = func(w io.Writer, rows []stats.Report) error {
		return output.WriteSummaryTSV(w, rows, true)
	}
	summaryWriters["tsv"] = func(w io.Writer, rows []stats.Report) error {
		return output.WriteSummaryTSV(w, rows, false)
	}
	summaryWriters["json"] = output.WriteSummaryJSON

	perRecordWriters["text"] = func(w io.Writer, rows []output.RecordRow) error {
		return output.WriteRecordRowsTSV(w, rows, true)
	}
	perRecordWriters["tsv"] = func(w io.Writer, rows []output.RecordRow) error {
		return output.WriteRecordRowsTSV(w, rows, false)
	}
	perRecordWriters["json"] = output.WriteRecordRowsJSON
}

// WriteSummary dispatches per-file summaries to the writer registered
// for format.
func WriteSummary(format string, w io.Writer, rows []stats.Report) error {
	fn, ok := summaryWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, rows)
}

// WritePerRecord dispatches per-sequence rows to the writer registered
// for format.
func WritePerRecord(format string, w io.Writer, rows []output.RecordRow) error {
	fn, ok := perRecordWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, rows)
}
