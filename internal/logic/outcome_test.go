package logic

import (
	"testing"

	"github.com/predictlab/rydercup-stats/internal/models"
)

func TestCanonicalOutcome(t *testing.T) {
	tests := []struct {
		label string
		want  models.OutcomeKey
	}{
		{"US Win", models.OutcomeUSWin},
		{"us win", models.OutcomeUSWin},
		{"USWIN", models.OutcomeUSWin},
		{" US\tWin ", models.OutcomeUSWin},
		{"EU Win", models.OutcomeEUWin},
		{"Eu  Win", models.OutcomeEUWin},
		{"Draw", models.OutcomeDraw},
		{"DRAW", models.OutcomeDraw},
		{"Halved", models.OutcomeUnknown},
		{"US Wins", models.OutcomeUnknown},
		{"", models.OutcomeUnknown},
		{"unknown", models.OutcomeUnknown},
	}

	for _, tt := range tests {
		if got := CanonicalOutcome(tt.label); got != tt.want {
			t.Errorf("CanonicalOutcome(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestLabelsAgree(t *testing.T) {
	tests := []struct {
		name      string
		rec       models.MatchRecord
		wantAgree bool
		wantOK    bool
	}{
		{"same", rec(1, "US Win", "us win", true), true, true},
		{"different", rec(1, "US Win", "Draw", false), false, true},
		{"unknown actual", rec(1, "US Win", "Tie", false), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agree, ok := LabelsAgree(tt.rec)
			if agree != tt.wantAgree || ok != tt.wantOK {
				t.Errorf("LabelsAgree() = (%v, %v), want (%v, %v)", agree, ok, tt.wantAgree, tt.wantOK)
			}
		})
	}
}
