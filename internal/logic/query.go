package logic

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/predictlab/rydercup-stats/internal/models"
)

// QueryMatches filters and orders matches per q. The input slice is not
// modified. Sorting is stable, so equal keys keep input order.
func QueryMatches(matches []models.AnnotatedMatch, q models.MatchQuery) []models.AnnotatedMatch {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.AnnotatedMatch, 0, len(matches))
	for _, m := range matches {
		switch q.Filter {
		case models.FilterCorrect:
			if !m.IsCorrect {
				continue
			}
		case models.FilterIncorrect:
			if m.IsCorrect {
				continue
			}
		}
		if q.Level != "" && string(m.Level) != q.Level {
			continue
		}
		if q.Round > 0 && (!m.Round.Valid || m.Round.Int != q.Round) {
			continue
		}
		if search != "" && !matchesSearch(m, search) {
			continue
		}
		out = append(out, m)
	}

	less := lessFor(q.Sort)
	desc := q.Order == "desc"
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func matchesSearch(m models.AnnotatedMatch, search string) bool {
	return strings.Contains(strings.ToLower(m.MatchID), search) ||
		strings.Contains(m.Round.String(), search) ||
		strings.Contains(strings.ToLower(m.PredictedOutcome), search) ||
		strings.Contains(strings.ToLower(m.ActualOutcome), search)
}

// lessFor returns the ascending order for a sort key. "confidence" and
// "accuracy" put the most confident and the correct matches first, which is
// how the dashboard reads them.
func lessFor(key string) func(a, b models.AnnotatedMatch) bool {
	switch key {
	case models.SortConfidence:
		return func(a, b models.AnnotatedMatch) bool { return a.Confidence > b.Confidence }
	case models.SortAccuracy:
		return func(a, b models.AnnotatedMatch) bool { return a.IsCorrect && !b.IsCorrect }
	default:
		return func(a, b models.AnnotatedMatch) bool { return roundKey(a) < roundKey(b) }
	}
}

// roundKey orders matches without a round after every numbered round.
func roundKey(m models.AnnotatedMatch) int {
	if !m.Round.Valid {
		return math.MaxInt
	}
	return m.Round.Int
}

// ParseMatchQuery reads a MatchQuery from URL-style parameters. An
// unparseable round is reported as -1 so validation rejects it.
func ParseMatchQuery(get func(string) string) models.MatchQuery {
	q := models.MatchQuery{
		Filter: get("filter"),
		Search: get("search"),
		Level:  get("level"),
		Sort:   get("sort"),
		Order:  get("order"),
	}
	if r := get("round"); r != "" {
		n, err := strconv.Atoi(r)
		if err != nil {
			n = -1
		}
		q.Round = n
	}
	return q
}
