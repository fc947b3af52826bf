package logic

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/predictlab/rydercup-stats/internal/models"
)

const testHeader = "Round,Match ID,US Match Win,EU Match Win,Match Draw,Match Standing,Match Outcome,Predicted Outcome,Is Correct"

func csvOf(rows ...string) string {
	return testHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestParseMatches_Basic(t *testing.T) {
	input := csvOf(
		"1,R1M1,0.55,0.25,0.2,2&1,US Win,US Win,True",
		"1,R1M2,0.3,0.5,0.2,AS,Draw,EU Win,False",
	)

	res, err := ParseMatchesString(input, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseMatches() error = %v", err)
	}

	want := []models.MatchRecord{
		{
			Round: models.Int(1), MatchID: "R1M1",
			USWinProb: models.Float(0.55), EUWinProb: models.Float(0.25), DrawProb: models.Float(0.2),
			MatchStanding: "2&1", ActualOutcome: "US Win", PredictedOutcome: "US Win", IsCorrect: true,
		},
		{
			Round: models.Int(1), MatchID: "R1M2",
			USWinProb: models.Float(0.3), EUWinProb: models.Float(0.5), DrawProb: models.Float(0.2),
			MatchStanding: "AS", ActualOutcome: "Draw", PredictedOutcome: "EU Win", IsCorrect: false,
		},
	}
	if diff := cmp.Diff(want, res.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if res.Diagnostics.RowsRead != 2 {
		t.Errorf("RowsRead = %d, want 2", res.Diagnostics.RowsRead)
	}
}

func TestParseMatches_ColumnsByName(t *testing.T) {
	input := "Is Correct,Predicted Outcome,Match Outcome,Match Standing,Match Draw,EU Match Win,US Match Win,Match ID,Round,Notes\n" +
		"True,EU Win,EU Win,1 UP,0.1,0.7,0.2,R4M2,4,extra column\n"

	res, err := ParseMatchesString(input, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseMatches() error = %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
	rec := res.Records[0]
	if rec.Round != models.Int(4) || rec.MatchID != "R4M2" || rec.EUWinProb != models.Float(0.7) || !rec.IsCorrect {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestParseMatches_IsCorrectToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"True", true},
		{" True ", true},
		{"true", false},
		{"TRUE", false},
		{"1", false},
		{"Yes", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			res, err := ParseMatchesString(csvOf("1,M,0.5,0.3,0.2,AS,Draw,Draw,"+tt.token), ParseOptions{})
			if err != nil {
				t.Fatalf("ParseMatches() error = %v", err)
			}
			if got := res.Records[0].IsCorrect; got != tt.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseMatches_InvalidNumericIsAbsent(t *testing.T) {
	res, err := ParseMatchesString(csvOf(
		"R1,M1,n/a,0.5,,AS,Draw,Draw,True",
		"0,M2,0.2,0.5,0.3,AS,Draw,Draw,True",
	), ParseOptions{})
	if err != nil {
		t.Fatalf("ParseMatches() error = %v", err)
	}

	rec := res.Records[0]
	if rec.Round.Valid || rec.USWinProb.Valid || rec.DrawProb.Valid {
		t.Errorf("expected absent round/us/draw, got %+v", rec)
	}
	if !rec.EUWinProb.Valid {
		t.Errorf("EUWinProb should be present")
	}
	if res.Records[1].Round.Valid {
		t.Errorf("round 0 should be treated as absent")
	}

	issues := res.Diagnostics.InvalidNumericFields
	if len(issues) != 4 {
		t.Fatalf("got %d invalid field issues, want 4: %+v", len(issues), issues)
	}
	if issues[0].Line != 2 || !strings.HasPrefix(issues[0].Reason, "Round:") {
		t.Errorf("first issue = %+v", issues[0])
	}
}

func TestParseMatches_MalformedRows(t *testing.T) {
	input := csvOf(
		"1,M1,0.5,0.3,0.2,AS,Draw,Draw,True",
		"1,M2,0.5,0.3",
		"2,M1,0.5,0.3,0.2,AS,Draw,Draw,True,extra",
		"2,M2,0.5,0.3,0.2,AS,Draw,Draw,False",
	)

	t.Run("lenient skips and records", func(t *testing.T) {
		res, err := ParseMatchesString(input, ParseOptions{})
		if err != nil {
			t.Fatalf("ParseMatches() error = %v", err)
		}
		if len(res.Records) != 2 {
			t.Fatalf("got %d records, want 2", len(res.Records))
		}
		if res.Records[1].MatchID != "M2" || res.Records[1].Round != models.Int(2) {
			t.Errorf("order not preserved: %+v", res.Records[1])
		}
		want := []models.RowIssue{
			{Line: 3, Reason: "expected 9 fields, got 4"},
			{Line: 4, Reason: "expected 9 fields, got 10"},
		}
		if diff := cmp.Diff(want, res.Diagnostics.SkippedRows); diff != "" {
			t.Errorf("skipped rows mismatch (-want +got):\n%s", diff)
		}
		if res.Diagnostics.RowsRead != 4 {
			t.Errorf("RowsRead = %d, want 4", res.Diagnostics.RowsRead)
		}
	})

	t.Run("strict aborts", func(t *testing.T) {
		_, err := ParseMatchesString(input, ParseOptions{Strict: true})
		var rowErr *RowError
		if !errors.As(err, &rowErr) {
			t.Fatalf("expected *RowError, got %v", err)
		}
		if rowErr.Line != 3 {
			t.Errorf("Line = %d, want 3", rowErr.Line)
		}
	})
}

func TestParseMatches_StructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyInput},
		{"blank lines", "\n\n", ErrEmptyInput},
		{"missing column", "Round,Match ID,US Match Win\n1,M1,0.5\n", ErrMissingColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMatchesString(tt.input, ParseOptions{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseMatches_HeaderOnly(t *testing.T) {
	res, err := ParseMatchesString(testHeader+"\n", ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("ParseMatches() error = %v", err)
	}
	if res.Records == nil || len(res.Records) != 0 {
		t.Errorf("expected empty non-nil records, got %#v", res.Records)
	}
}

func TestParseMatches_CRLFAndBOM(t *testing.T) {
	input := "\ufeff" + testHeader + "\r\n1,M1,0.5,0.3,0.2,AS,US Win,US Win,True\r\n"

	res, err := ParseMatchesString(input, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseMatches() error = %v", err)
	}
	if len(res.Records) != 1 || !res.Records[0].IsCorrect || res.Records[0].Round != models.Int(1) {
		t.Errorf("unexpected records %+v", res.Records)
	}
}

func TestParseMatches_Fixture(t *testing.T) {
	f, err := os.Open("testdata/messy.csv")
	if err != nil {
		t.Fatalf("Failed to open fixture: %v", err)
	}
	defer f.Close()

	res, err := ParseMatches(f, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseMatches() error = %v", err)
	}
	if len(res.Records) != 8 {
		t.Errorf("got %d records, want 8", len(res.Records))
	}
	want := []models.RowIssue{{Line: 8, Reason: "expected 9 fields, got 4"}}
	if diff := cmp.Diff(want, res.Diagnostics.SkippedRows); diff != "" {
		t.Errorf("skipped rows mismatch (-want +got):\n%s", diff)
	}
	if n := len(res.Diagnostics.InvalidNumericFields); n != 2 {
		t.Errorf("invalid numeric fields = %d, want 2", n)
	}
}
