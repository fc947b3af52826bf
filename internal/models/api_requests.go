package models

import "time"

// Match list filters
const (
	FilterAll       = "all"
	FilterCorrect   = "correct"
	FilterIncorrect = "incorrect"
)

// Match list sort keys
const (
	SortRound      = "round"
	SortConfidence = "confidence"
	SortAccuracy   = "accuracy"
)

// MatchQuery selects and orders annotated matches. Zero values mean
// "all matches, by round, ascending".
type MatchQuery struct {
	Filter string `json:"filter" validate:"omitempty,oneof=all correct incorrect"`
	Search string `json:"search" validate:"max=100"`
	Level  string `json:"level" validate:"omitempty,oneof=High Medium Low"`
	Round  int    `json:"round" validate:"gte=0"`
	Sort   string `json:"sort" validate:"omitempty,oneof=round confidence accuracy"`
	Order  string `json:"order" validate:"omitempty,oneof=asc desc"`
}

// Export formats
const (
	ExportCSV     = "csv"
	ExportJSON    = "json"
	ExportSummary = "summary"
)

// ExportFormats lists every supported export format.
var ExportFormats = []string{ExportCSV, ExportJSON, ExportSummary}

// SummaryResponse is the payload of the summary endpoint
type SummaryResponse struct {
	SnapshotID  string           `json:"snapshot_id"`
	Metrics     AccuracyMetrics  `json:"metrics"`
	Diagnostics ParseDiagnostics `json:"diagnostics"`
}

// MatchListResponse wraps a filtered match list
type MatchListResponse struct {
	Total   int              `json:"total"`
	Matches []AnnotatedMatch `json:"matches"`
}

// ExportMetadata describes a JSON export
type ExportMetadata struct {
	SnapshotID   string          `json:"snapshot_id"`
	ExportDate   time.Time       `json:"export_date"`
	TotalMatches int             `json:"total_matches"`
	Metrics      AccuracyMetrics `json:"metrics"`
}

// ExportDocument is the full JSON export
type ExportDocument struct {
	Metadata        ExportMetadata   `json:"metadata"`
	Matches         []AnnotatedMatch `json:"matches"`
	ConfusionMatrix ConfusionMatrix  `json:"confusion_matrix"`
	Diagnostics     ParseDiagnostics `json:"diagnostics"`
}
