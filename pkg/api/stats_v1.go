// pkg/api/stats_v1.go
package api

// StatsReportV1 is the stable JSON schema for per-file summaries.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StatsReportV1 struct {
	Name        string  `json:"name"`
	Sequences   int     `json:"sequences"`
	TotalLength int     `json:"total_length"`
	MinLength   int     `json:"min_length"`
	MaxLength   int     `json:"max_length"`
	MeanLength  float64 `json:"mean_length"`
	N50         int     `json:"n50"`
	N90         int     `json:"n90"`
}

// RecordRowV1 is the stable schema for per-sequence rows.
type RecordRowV1 struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}
