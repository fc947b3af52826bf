package logic

import "github.com/predictlab/rydercup-stats/internal/models"

// Confidence thresholds on the top probability
const (
	HighConfidenceAbove   = 0.6
	MediumConfidenceAbove = 0.4
)

// LevelFor buckets a confidence value.
func LevelFor(confidence float64) models.ConfidenceLevel {
	switch {
	case confidence > HighConfidenceAbove:
		return models.ConfidenceHigh
	case confidence > MediumConfidenceAbove:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// AnnotateConfidence takes the largest of the three probabilities as the
// model's confidence. Absent probabilities count as 0, so a record with no
// usable probabilities has confidence 0 and level Low.
func AnnotateConfidence(rec models.MatchRecord) models.ConfidenceAnnotation {
	probs := [...]models.NullFloat{rec.USWinProb, rec.EUWinProb, rec.DrawProb}

	complete := true
	top := 0.0
	for _, p := range probs {
		if !p.Valid {
			complete = false
			continue
		}
		if p.Float64 > top {
			top = p.Float64
		}
	}

	return models.ConfidenceAnnotation{
		Confidence: top,
		Level:      LevelFor(top),
		Complete:   complete,
	}
}

// AnnotateAll annotates every record, preserving order.
func AnnotateAll(records []models.MatchRecord) []models.AnnotatedMatch {
	out := make([]models.AnnotatedMatch, len(records))
	for i, rec := range records {
		out[i] = models.AnnotatedMatch{
			MatchRecord:          rec,
			ConfidenceAnnotation: AnnotateConfidence(rec),
		}
	}
	return out
}

// ComputeConfidenceBreakdown reports accuracy within each confidence level.
// All three levels are always present.
func ComputeConfidenceBreakdown(matches []models.AnnotatedMatch) models.ConfidenceBreakdown {
	tallies := make(map[models.ConfidenceLevel]*tally, len(models.ConfidenceLevels))
	for _, l := range models.ConfidenceLevels {
		tallies[l] = &tally{}
	}
	for _, m := range matches {
		if t, ok := tallies[m.Level]; ok {
			t.add(m.IsCorrect)
		}
	}

	b := models.ConfidenceBreakdown{Levels: make(map[models.ConfidenceLevel]models.AccuracyBucket, len(tallies))}
	for l, t := range tallies {
		b.Levels[l] = t.bucket()
	}
	return b
}
