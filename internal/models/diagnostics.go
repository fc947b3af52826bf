package models

// RowIssue describes a data line the parser could not use as-is.
type RowIssue struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ParseDiagnostics collects everything the load tolerated instead of failing.
type ParseDiagnostics struct {
	RowsRead                int        `json:"rows_read"`
	SkippedRows             []RowIssue `json:"skipped_rows"`
	InvalidNumericFields    []RowIssue `json:"invalid_numeric_fields"`
	UnknownLabels           int        `json:"unknown_labels"`
	CorrectnessMismatches   int        `json:"correctness_mismatches"`
	ConfusionDropped        int        `json:"confusion_dropped"`
	IncompleteProbabilities int        `json:"incomplete_probabilities"`
}

// ParseResult is the parser's output.
type ParseResult struct {
	Records     []MatchRecord
	Diagnostics ParseDiagnostics
}
