package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/predictlab/rydercup-stats/internal/models"
)

func insightsFor(records []models.MatchRecord) models.Insights {
	return BuildInsights(ComputeMetrics(records), AnnotateAll(records))
}

func TestBuildInsights_Empty(t *testing.T) {
	in := insightsFor(nil)

	if in.Flags == nil || len(in.Flags) != 0 {
		t.Errorf("Flags = %#v, want empty non-nil", in.Flags)
	}
	if in.WorstRounds == nil || len(in.WorstRounds) != 0 {
		t.Errorf("WorstRounds = %#v, want empty non-nil", in.WorstRounds)
	}
	if in.VsBaseline != 0 || in.AboveBaseline {
		t.Errorf("VsBaseline = %v AboveBaseline = %v, want 0 false", in.VsBaseline, in.AboveBaseline)
	}
	if in.Trend.Direction != "stable" {
		t.Errorf("Direction = %q, want stable", in.Trend.Direction)
	}
}

func TestBuildInsights_Flags(t *testing.T) {
	tests := []struct {
		name    string
		records []models.MatchRecord
		want    []string
	}{
		{
			name: "confident and wrong",
			records: []models.MatchRecord{
				{Round: models.Int(1), USWinProb: models.Float(0.8), PredictedOutcome: "US Win", ActualOutcome: "EU Win"},
				{Round: models.Int(1), EUWinProb: models.Float(0.5), PredictedOutcome: "EU Win", ActualOutcome: "Draw"},
			},
			want: []string{models.FlagBelowBaseline, models.FlagZeroDrawAccuracy, models.FlagOverconfident},
		},
		{
			name: "no draws played",
			records: []models.MatchRecord{
				rec(1, "US Win", "US Win", true),
				rec(1, "EU Win", "EU Win", true),
			},
			want: []string{},
		},
		{
			name: "draw called right",
			records: []models.MatchRecord{
				rec(1, "Draw", "Draw", true),
				rec(2, "US Win", "EU Win", false),
			},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insightsFor(tt.records).Flags
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Flags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildInsights_ConfidenceCounts(t *testing.T) {
	records := []models.MatchRecord{
		{USWinProb: models.Float(0.7), PredictedOutcome: "US Win", ActualOutcome: "Draw"},
		{USWinProb: models.Float(0.61), PredictedOutcome: "US Win", ActualOutcome: "EU Win"},
		{USWinProb: models.Float(0.45), PredictedOutcome: "US Win", ActualOutcome: "US Win", IsCorrect: true},
		{DrawProb: models.Float(0.5), PredictedOutcome: "Draw", ActualOutcome: "Draw", IsCorrect: true},
		{EUWinProb: models.Float(0.55), PredictedOutcome: "EU Win", ActualOutcome: "EU Win", IsCorrect: true},
	}

	in := insightsFor(records)

	if in.HighConfidenceMisses != 2 {
		t.Errorf("HighConfidenceMisses = %d, want 2", in.HighConfidenceMisses)
	}
	if in.LowConfidenceHits != 2 {
		t.Errorf("LowConfidenceHits = %d, want 2", in.LowConfidenceHits)
	}
	if in.DrawPredictions != 1 || in.ActualDraws != 2 {
		t.Errorf("draws predicted/actual = %d/%d, want 1/2", in.DrawPredictions, in.ActualDraws)
	}
}

func TestBuildInsights_WorstRoundsTieBreak(t *testing.T) {
	records := []models.MatchRecord{
		rec(5, "Draw", "Draw", false),
		rec(2, "Draw", "Draw", false),
		rec(1, "Draw", "Draw", true),
		rec(3, "Draw", "Draw", false),
	}

	got := insightsFor(records).WorstRounds
	if diff := cmp.Diff([]int{2, 3}, got); diff != "" {
		t.Errorf("WorstRounds mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInsights_Trend(t *testing.T) {
	tests := []struct {
		name    string
		records []models.MatchRecord
		want    models.RoundTrend
		mean    float64
	}{
		{
			name:    "single round is flat",
			records: []models.MatchRecord{rec(3, "Draw", "Draw", true), rec(3, "Draw", "Draw", false)},
			want:    models.RoundTrend{Intercept: 50, Direction: "stable"},
			mean:    50,
		},
		{
			name:    "improving",
			records: []models.MatchRecord{rec(1, "Draw", "Draw", false), rec(2, "Draw", "Draw", true)},
			want:    models.RoundTrend{Slope: 100, Intercept: -100, Direction: "improving"},
			mean:    50,
		},
		{
			name:    "level",
			records: []models.MatchRecord{rec(1, "Draw", "Draw", true), rec(2, "Draw", "Draw", true)},
			want:    models.RoundTrend{Slope: 0, Intercept: 100, Direction: "stable"},
			mean:    100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := insightsFor(tt.records)
			if diff := cmp.Diff(tt.want, in.Trend); diff != "" {
				t.Errorf("Trend mismatch (-want +got):\n%s", diff)
			}
			if in.AverageRoundAccuracy != tt.mean {
				t.Errorf("AverageRoundAccuracy = %v, want %v", in.AverageRoundAccuracy, tt.mean)
			}
		})
	}
}

func TestBuildInsights_ExactlyChance(t *testing.T) {
	tests := []struct {
		name    string
		records []models.MatchRecord
		above   bool
	}{
		{
			name: "one of three",
			records: []models.MatchRecord{
				rec(1, "US Win", "US Win", true),
				rec(1, "US Win", "EU Win", false),
				rec(1, "EU Win", "Draw", false),
			},
			above: true,
		},
		{
			name: "two of six",
			records: []models.MatchRecord{
				rec(1, "US Win", "US Win", true),
				rec(1, "US Win", "EU Win", false),
				rec(1, "EU Win", "US Win", false),
				rec(2, "EU Win", "EU Win", true),
				rec(2, "US Win", "EU Win", false),
				rec(2, "EU Win", "US Win", false),
			},
			above: true,
		},
		{
			name: "one of four",
			records: []models.MatchRecord{
				rec(1, "US Win", "US Win", true),
				rec(1, "US Win", "EU Win", false),
				rec(1, "EU Win", "US Win", false),
				rec(1, "EU Win", "US Win", false),
			},
			above: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := insightsFor(tt.records)
			if in.AboveBaseline != tt.above {
				t.Errorf("AboveBaseline = %v, want %v", in.AboveBaseline, tt.above)
			}
			below := false
			for _, f := range in.Flags {
				below = below || f == models.FlagBelowBaseline
			}
			if below == tt.above {
				t.Errorf("Flags = %v, below_baseline present = %v", in.Flags, below)
			}
			if tt.above && in.VsBaseline != 0 {
				t.Errorf("VsBaseline = %v, want 0 at chance", in.VsBaseline)
			}
		})
	}
}
