package logic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/predictlab/rydercup-stats/internal/models"
)

// Column names in the prediction CSV
const (
	ColRound            = "Round"
	ColMatchID          = "Match ID"
	ColUSWin            = "US Match Win"
	ColEUWin            = "EU Match Win"
	ColDraw             = "Match Draw"
	ColMatchStanding    = "Match Standing"
	ColMatchOutcome     = "Match Outcome"
	ColPredictedOutcome = "Predicted Outcome"
	ColIsCorrect        = "Is Correct"
)

// RequiredColumns is the header every input must carry, in source order.
var RequiredColumns = []string{
	ColRound, ColMatchID, ColUSWin, ColEUWin, ColDraw,
	ColMatchStanding, ColMatchOutcome, ColPredictedOutcome, ColIsCorrect,
}

var (
	// ErrEmptyInput means there was no header line at all.
	ErrEmptyInput = errors.New("empty input: no header line")
	// ErrMissingColumn means the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
)

// RowError reports a data line with the wrong shape. Only strict parsing
// returns it; lenient parsing records it in the diagnostics instead.
type RowError struct {
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ParseOptions controls how malformed rows are handled.
type ParseOptions struct {
	// Strict aborts the whole parse on the first malformed row.
	Strict bool
}

// ParseMatches reads the prediction CSV. Columns are located by header name,
// so column order does not matter. Unparseable numeric fields become absent
// values and are listed in the diagnostics; rows whose field count differs
// from the header are skipped unless opts.Strict is set.
func ParseMatches(r io.Reader, opts ParseOptions) (*models.ParseResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	result := &models.ParseResult{Records: []models.MatchRecord{}}
	diag := &result.Diagnostics

	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var pe *csv.ParseError
		if errors.As(err, &pe) {
			diag.RowsRead++
			issue := models.RowIssue{Line: pe.StartLine, Reason: pe.Err.Error()}
			if opts.Strict {
				return nil, &RowError{Line: issue.Line, Reason: issue.Reason}
			}
			diag.SkippedRows = append(diag.SkippedRows, issue)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read rows: %w", err)
		}

		line, _ := cr.FieldPos(0)
		diag.RowsRead++
		if len(fields) != len(header) {
			issue := models.RowIssue{
				Line:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(fields)),
			}
			if opts.Strict {
				return nil, &RowError{Line: issue.Line, Reason: issue.Reason}
			}
			diag.SkippedRows = append(diag.SkippedRows, issue)
			continue
		}

		rec := cols.record(fields)
		for _, name := range invalidNumeric(rec) {
			diag.InvalidNumericFields = append(diag.InvalidNumericFields, models.RowIssue{
				Line:   line,
				Reason: fmt.Sprintf("%s: invalid number %q", name, cols.value(fields, name)),
			})
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

// ParseMatchesString is a convenience wrapper for in-memory input.
func ParseMatchesString(s string, opts ParseOptions) (*models.ParseResult, error) {
	return ParseMatches(strings.NewReader(s), opts)
}

type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c columnIndex) value(fields []string, name string) string {
	return strings.TrimSpace(fields[c[name]])
}

func (c columnIndex) record(fields []string) models.MatchRecord {
	rec := models.MatchRecord{
		Round:            models.ParseNullInt(c.value(fields, ColRound)),
		MatchID:          c.value(fields, ColMatchID),
		USWinProb:        models.ParseNullFloat(c.value(fields, ColUSWin)),
		EUWinProb:        models.ParseNullFloat(c.value(fields, ColEUWin)),
		DrawProb:         models.ParseNullFloat(c.value(fields, ColDraw)),
		MatchStanding:    c.value(fields, ColMatchStanding),
		ActualOutcome:    c.value(fields, ColMatchOutcome),
		PredictedOutcome: c.value(fields, ColPredictedOutcome),
		IsCorrect:        c.value(fields, ColIsCorrect) == "True",
	}
	// rounds are numbered from 1
	if rec.Round.Valid && rec.Round.Int < 1 {
		rec.Round = models.NullInt{}
	}
	return rec
}

func invalidNumeric(rec models.MatchRecord) []string {
	var names []string
	if !rec.Round.Valid {
		names = append(names, ColRound)
	}
	if !rec.USWinProb.Valid {
		names = append(names, ColUSWin)
	}
	if !rec.EUWinProb.Valid {
		names = append(names, ColEUWin)
	}
	if !rec.DrawProb.Valid {
		names = append(names, ColDraw)
	}
	return names
}
