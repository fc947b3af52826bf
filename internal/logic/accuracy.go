package logic

import (
	"sort"

	"github.com/predictlab/rydercup-stats/internal/models"
)

// NewAccuracyBucket builds a bucket, guarding the empty case so accuracy is
// 0 rather than NaN.
func NewAccuracyBucket(total, correct int) models.AccuracyBucket {
	b := models.AccuracyBucket{Total: total, Correct: correct}
	if total > 0 {
		b.Accuracy = float64(correct) / float64(total) * 100
	}
	return b
}

type tally struct {
	total   int
	correct int
}

func (t *tally) add(correct bool) {
	t.total++
	if correct {
		t.correct++
	}
}

func (t tally) bucket() models.AccuracyBucket {
	return NewAccuracyBucket(t.total, t.correct)
}

// ComputeMetrics derives overall, per-outcome and per-round accuracy.
// Correctness is taken from each record's IsCorrect flag. Records with an
// unknown actual outcome count toward the overall figures only, and records
// without a round are left out of the round breakdown.
func ComputeMetrics(records []models.MatchRecord) models.AccuracyMetrics {
	var overall tally
	byOutcome := make(map[models.OutcomeKey]*tally, len(models.KnownOutcomes))
	for _, k := range models.KnownOutcomes {
		byOutcome[k] = &tally{}
	}
	byRound := make(map[int]*tally)

	m := models.AccuracyMetrics{}
	for _, rec := range records {
		overall.add(rec.IsCorrect)

		if t, ok := byOutcome[CanonicalOutcome(rec.ActualOutcome)]; ok {
			t.add(rec.IsCorrect)
		} else {
			m.UnknownOutcomes++
		}

		if !rec.Round.Valid {
			m.UngroupedRounds++
			continue
		}
		t, ok := byRound[rec.Round.Int]
		if !ok {
			t = &tally{}
			byRound[rec.Round.Int] = t
		}
		t.add(rec.IsCorrect)
	}

	m.TotalMatches = overall.total
	m.CorrectPredictions = overall.correct
	m.OverallAccuracy = overall.bucket().Accuracy

	m.AccuracyByOutcome = make(map[models.OutcomeKey]models.AccuracyBucket, len(byOutcome))
	for k, t := range byOutcome {
		m.AccuracyByOutcome[k] = t.bucket()
	}

	m.AccuracyByRound = make(map[int]models.AccuracyBucket, len(byRound))
	m.Rounds = make([]int, 0, len(byRound))
	for round, t := range byRound {
		m.AccuracyByRound[round] = t.bucket()
		m.Rounds = append(m.Rounds, round)
	}
	sort.Ints(m.Rounds)

	return m
}
