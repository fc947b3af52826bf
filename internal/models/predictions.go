package models

import "time"

// OutcomeKey is the canonical form of a match outcome label.
type OutcomeKey string

const (
	OutcomeUSWin   OutcomeKey = "uswin"
	OutcomeEUWin   OutcomeKey = "euwin"
	OutcomeDraw    OutcomeKey = "draw"
	OutcomeUnknown OutcomeKey = "unknown"
)

// KnownOutcomes lists the three real outcomes in display order.
var KnownOutcomes = []OutcomeKey{OutcomeUSWin, OutcomeEUWin, OutcomeDraw}

// Known reports whether k is one of the three real outcomes.
func (k OutcomeKey) Known() bool {
	return k == OutcomeUSWin || k == OutcomeEUWin || k == OutcomeDraw
}

// Label returns a human readable name for the outcome.
func (k OutcomeKey) Label() string {
	switch k {
	case OutcomeUSWin:
		return "US Win"
	case OutcomeEUWin:
		return "EU Win"
	case OutcomeDraw:
		return "Draw"
	}
	return "Unknown"
}

// MatchRecord is one tournament match: the model's probabilities, its
// prediction and the actual result. Records are never mutated after parsing.
type MatchRecord struct {
	Round            NullInt   `json:"round"`
	MatchID          string    `json:"match_id"`
	USWinProb        NullFloat `json:"us_win_prob"`
	EUWinProb        NullFloat `json:"eu_win_prob"`
	DrawProb         NullFloat `json:"draw_prob"`
	MatchStanding    string    `json:"match_standing"`
	ActualOutcome    string    `json:"actual_outcome"`
	PredictedOutcome string    `json:"predicted_outcome"`
	IsCorrect        bool      `json:"is_correct"`
}

// AccuracyBucket is a correct/total tally. Accuracy is a percentage and is
// exactly 0 when Total is 0.
type AccuracyBucket struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// AccuracyMetrics summarises prediction accuracy over a record set
type AccuracyMetrics struct {
	TotalMatches       int                           `json:"total_matches"`
	CorrectPredictions int                           `json:"correct_predictions"`
	OverallAccuracy    float64                       `json:"overall_accuracy"`
	AccuracyByOutcome  map[OutcomeKey]AccuracyBucket `json:"accuracy_by_outcome"`
	AccuracyByRound    map[int]AccuracyBucket        `json:"accuracy_by_round"`
	Rounds             []int                         `json:"rounds"` // ascending
	UnknownOutcomes    int                           `json:"unknown_outcomes"`
	UngroupedRounds    int                           `json:"ungrouped_rounds"`
}

// ConfusionMatrix counts predicted (outer key) against actual (inner key)
// outcomes. Cells is always fully populated for the three known outcomes.
type ConfusionMatrix struct {
	Cells   map[OutcomeKey]map[OutcomeKey]int `json:"cells"`
	Dropped int                               `json:"dropped"`
}

// Get returns the count for a predicted/actual pair.
func (m ConfusionMatrix) Get(predicted, actual OutcomeKey) int {
	return m.Cells[predicted][actual]
}

// Diagonal is the number of tallied records where prediction matched.
func (m ConfusionMatrix) Diagonal() int {
	n := 0
	for _, k := range KnownOutcomes {
		n += m.Cells[k][k]
	}
	return n
}

// Total is the sum of all nine cells.
func (m ConfusionMatrix) Total() int {
	n := 0
	for _, p := range KnownOutcomes {
		for _, a := range KnownOutcomes {
			n += m.Cells[p][a]
		}
	}
	return n
}

// OutcomeScore is precision and recall for one outcome, in percent.
type OutcomeScore struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
}

// ConfidenceLevel buckets the model's top probability.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// ConfidenceLevels lists levels from most to least confident.
var ConfidenceLevels = []ConfidenceLevel{ConfidenceHigh, ConfidenceMedium, ConfidenceLow}

// ConfidenceAnnotation is the per-record confidence.
type ConfidenceAnnotation struct {
	Confidence float64         `json:"confidence"`
	Level      ConfidenceLevel `json:"confidence_level"`
	Complete   bool            `json:"complete"` // all three probabilities parsed
}

// AnnotatedMatch pairs a record with its confidence annotation.
type AnnotatedMatch struct {
	MatchRecord
	ConfidenceAnnotation
}

// ConfidenceBreakdown holds accuracy per confidence level
type ConfidenceBreakdown struct {
	Levels map[ConfidenceLevel]AccuracyBucket `json:"levels"`
}

// RoundTrend is a least-squares fit of accuracy over round number.
type RoundTrend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Direction string  `json:"direction"` // "improving", "declining", "stable"
}

// Insights holds narrative findings derived from the metrics
type Insights struct {
	Baseline             float64    `json:"baseline"`
	VsBaseline           float64    `json:"vs_baseline"`
	AboveBaseline        bool       `json:"above_baseline"`
	WorstRounds          []int      `json:"worst_rounds"`
	HighConfidenceMisses int        `json:"high_confidence_misses"`
	LowConfidenceHits    int        `json:"low_confidence_hits"`
	DrawPredictions      int        `json:"draw_predictions"`
	ActualDraws          int        `json:"actual_draws"`
	AverageRoundAccuracy float64    `json:"average_round_accuracy"`
	Trend                RoundTrend `json:"trend"`
	Flags                []string   `json:"flags"`
}

// Insight flags
const (
	FlagBelowBaseline    = "below_baseline"
	FlagZeroDrawAccuracy = "zero_draw_accuracy"
	FlagOverconfident    = "overconfident"
)

// Snapshot is the immutable result of one load: records plus every derived
// structure. It is built once and only read afterwards.
type Snapshot struct {
	ID          string                      `json:"id"`
	Fingerprint string                      `json:"fingerprint"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Matches     []AnnotatedMatch            `json:"matches"`
	Metrics     AccuracyMetrics             `json:"metrics"`
	Confusion   ConfusionMatrix             `json:"confusion_matrix"`
	Scores      map[OutcomeKey]OutcomeScore `json:"outcome_scores"`
	Confidence  ConfidenceBreakdown         `json:"confidence"`
	Insights    Insights                    `json:"insights"`
	Diagnostics ParseDiagnostics            `json:"diagnostics"`
}

// Records returns the plain match records in input order.
func (s *Snapshot) Records() []MatchRecord {
	out := make([]MatchRecord, len(s.Matches))
	for i, m := range s.Matches {
		out[i] = m.MatchRecord
	}
	return out
}
