package logic

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/predictlab/rydercup-stats/internal/models"
)

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// ExportFileName is the download name for each format.
var ExportFileName = map[string]string{
	models.ExportCSV:     "ryder_cup_analysis_results.csv",
	models.ExportJSON:    "ryder_cup_analysis_complete.json",
	models.ExportSummary: "ryder_cup_analysis_summary.txt",
}

// ExportContentType is the MIME type for each format.
var ExportContentType = map[string]string{
	models.ExportCSV:     "text/csv",
	models.ExportJSON:    "application/json",
	models.ExportSummary: "text/plain; charset=utf-8",
}

// Render serialises the snapshot in the given format.
func Render(snap *models.Snapshot, format string) ([]byte, error) {
	switch format {
	case models.ExportCSV:
		return ExportCSV(snap)
	case models.ExportJSON:
		return ExportJSON(snap)
	case models.ExportSummary:
		return ExportSummary(snap), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ExportCSV writes one row per match with probabilities as percentages.
func ExportCSV(snap *models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{
		"Round", "Match ID", "US Win Prob", "EU Win Prob", "Draw Prob", "Predicted", "Actual", "Correct",
	}); err != nil {
		return nil, err
	}
	for _, m := range snap.Matches {
		correct := "No"
		if m.IsCorrect {
			correct = "Yes"
		}
		if err := w.Write([]string{
			m.Round.String(),
			m.MatchID,
			percent(m.USWinProb),
			percent(m.EUWinProb),
			percent(m.DrawProb),
			m.PredictedOutcome,
			m.ActualOutcome,
			correct,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// percent formats a probability as "55.0%"; absent values are empty.
func percent(p models.NullFloat) string {
	if !p.Valid {
		return ""
	}
	return strconv.FormatFloat(p.Float64*100, 'f', 1, 64) + "%"
}

// ExportJSON writes the full snapshot document, indented.
func ExportJSON(snap *models.Snapshot) ([]byte, error) {
	doc := models.ExportDocument{
		Metadata: models.ExportMetadata{
			SnapshotID:   snap.ID,
			ExportDate:   snap.GeneratedAt,
			TotalMatches: len(snap.Matches),
			Metrics:      snap.Metrics,
		},
		Matches:         snap.Matches,
		ConfusionMatrix: snap.Confusion,
		Diagnostics:     snap.Diagnostics,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ExportSummary renders the plain-text report.
func ExportSummary(snap *models.Snapshot) []byte {
	m := snap.Metrics
	var b strings.Builder

	b.WriteString("RYDER CUP - ML PREDICTION ANALYSIS SUMMARY\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", snap.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	b.WriteString("OVERALL PERFORMANCE\n")
	b.WriteString("===================\n")
	fmt.Fprintf(&b, "Total Matches: %d\n", m.TotalMatches)
	fmt.Fprintf(&b, "Correct Predictions: %d\n", m.CorrectPredictions)
	fmt.Fprintf(&b, "Overall Accuracy: %.2f%%\n", m.OverallAccuracy)
	fmt.Fprintf(&b, "Random Baseline: %.2f%%\n", RandomBaseline)
	fmt.Fprintf(&b, "Performance vs Baseline: %.2f%%\n\n", snap.Insights.VsBaseline)

	b.WriteString("ACCURACY BY OUTCOME\n")
	b.WriteString("===================\n")
	for _, k := range models.KnownOutcomes {
		o := m.AccuracyByOutcome[k]
		fmt.Fprintf(&b, "%s: %.2f%% (%d/%d)\n", k.Label(), o.Accuracy, o.Correct, o.Total)
	}
	b.WriteString("\n")

	b.WriteString("ACCURACY BY ROUND\n")
	b.WriteString("=================\n")
	for _, r := range m.Rounds {
		rb := m.AccuracyByRound[r]
		fmt.Fprintf(&b, "Round %d: %.2f%% (%d/%d)\n", r, rb.Accuracy, rb.Correct, rb.Total)
	}
	b.WriteString("\n")

	b.WriteString("KEY FINDINGS\n")
	b.WriteString("============\n")
	if hasFlag(snap.Insights, models.FlagBelowBaseline) {
		b.WriteString("! Model performs below random chance\n")
	} else {
		b.WriteString("+ Model performs at or above random chance\n")
	}
	if hasFlag(snap.Insights, models.FlagZeroDrawAccuracy) {
		b.WriteString("! Critical: 0% accuracy on draw predictions\n")
	}
	if n := snap.Insights.HighConfidenceMisses; n > 0 {
		fmt.Fprintf(&b, "! %d high-confidence predictions were incorrect\n", n)
	}

	d := snap.Diagnostics
	if len(d.SkippedRows) > 0 || d.UnknownLabels > 0 || d.CorrectnessMismatches > 0 {
		b.WriteString("\nDATA QUALITY\n")
		b.WriteString("============\n")
		fmt.Fprintf(&b, "Skipped rows: %d\n", len(d.SkippedRows))
		fmt.Fprintf(&b, "Unknown outcome labels: %d\n", d.UnknownLabels)
		fmt.Fprintf(&b, "Correctness mismatches: %d\n", d.CorrectnessMismatches)
	}

	return []byte(b.String())
}

func hasFlag(in models.Insights, flag string) bool {
	for _, f := range in.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
