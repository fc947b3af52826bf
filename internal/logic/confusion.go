package logic

import "github.com/predictlab/rydercup-stats/internal/models"

// NewConfusionMatrix returns a matrix with all nine cells set to zero.
func NewConfusionMatrix() models.ConfusionMatrix {
	cells := make(map[models.OutcomeKey]map[models.OutcomeKey]int, len(models.KnownOutcomes))
	for _, p := range models.KnownOutcomes {
		row := make(map[models.OutcomeKey]int, len(models.KnownOutcomes))
		for _, a := range models.KnownOutcomes {
			row[a] = 0
		}
		cells[p] = row
	}
	return models.ConfusionMatrix{Cells: cells}
}

// ComputeConfusionMatrix tallies predicted against actual outcomes.
// A record whose predicted or actual label is not a known outcome is not
// tallied; it is counted in Dropped so the shortfall stays visible.
func ComputeConfusionMatrix(records []models.MatchRecord) models.ConfusionMatrix {
	m := NewConfusionMatrix()
	for _, rec := range records {
		p := CanonicalOutcome(rec.PredictedOutcome)
		a := CanonicalOutcome(rec.ActualOutcome)
		if !p.Known() || !a.Known() {
			m.Dropped++
			continue
		}
		m.Cells[p][a]++
	}
	return m
}

// ScoreOutcomes computes per-outcome precision (share of predictions of k
// that were right) and recall (share of actual k results that were
// predicted). Empty denominators score 0.
func ScoreOutcomes(m models.ConfusionMatrix) map[models.OutcomeKey]models.OutcomeScore {
	scores := make(map[models.OutcomeKey]models.OutcomeScore, len(models.KnownOutcomes))
	for _, k := range models.KnownOutcomes {
		var predicted, actual int
		for _, other := range models.KnownOutcomes {
			predicted += m.Cells[k][other]
			actual += m.Cells[other][k]
		}
		hit := m.Cells[k][k]
		scores[k] = models.OutcomeScore{
			Precision: NewAccuracyBucket(predicted, hit).Accuracy,
			Recall:    NewAccuracyBucket(actual, hit).Accuracy,
		}
	}
	return scores
}
