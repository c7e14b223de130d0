// internal/output/json.go
package output

import (
	"io"

	"fakit-core/stats"
	"fakit/internal/jsonutil"
	"fakit/pkg/api"
)

// ToAPIReport converts a domain report to the stable wire schema (v1).
func ToAPIReport(r stats.Report) api.StatsReportV1 {
	return api.StatsReportV1{
		Name:        r.Name,
		Sequences:   r.Sequences,
		TotalLength: r.TotalLength,
		MinLength:   r.MinLength,
		MaxLength:   r.MaxLength,
		MeanLength:  r.MeanLength,
		N50:         r.N50,
		N90:         r.N90,
	}
}

func toAPIReports(list []stats.Report) []api.StatsReportV1 {
	out := make([]api.StatsReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteSummaryJSON writes a single JSON array of v1 summaries.
func WriteSummaryJSON(w io.Writer, list []stats.Report) error {
	return jsonutil.EncodePretty(w, toAPIReports(list))
}

func toAPIRows(list []RecordRow) []api.RecordRowV1 {
	out := make([]api.RecordRowV1, 0, len(list))
	for _, r := range list {
		out = append(out, api.RecordRowV1{Name: r.Name, Length: r.Length})
	}
	return out
}

// WriteRecordRowsJSON writes a single JSON array of v1 per-sequence rows.
func WriteRecordRowsJSON(w io.Writer, list []RecordRow) error {
	return jsonutil.EncodePretty(w, toAPIRows(list))
}
