package logic

import (
	"strings"
	"unicode"

	"github.com/predictlab/rydercup-stats/internal/models"
)

// CanonicalOutcome maps a free-text outcome label to its key. Matching is
// case-insensitive and ignores all whitespace, so "US Win", "us win" and
// "USWIN" are the same outcome. Anything else is OutcomeUnknown.
func CanonicalOutcome(label string) models.OutcomeKey {
	key := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, label)

	switch models.OutcomeKey(key) {
	case models.OutcomeUSWin:
		return models.OutcomeUSWin
	case models.OutcomeEUWin:
		return models.OutcomeEUWin
	case models.OutcomeDraw:
		return models.OutcomeDraw
	}
	return models.OutcomeUnknown
}

// LabelsAgree recomputes correctness from the labels. ok is false when either
// label is unknown and no comparison is possible.
func LabelsAgree(rec models.MatchRecord) (agree, ok bool) {
	p := CanonicalOutcome(rec.PredictedOutcome)
	a := CanonicalOutcome(rec.ActualOutcome)
	if !p.Known() || !a.Known() {
		return false, false
	}
	return p == a, true
}
