package logic

import (
	"sort"

	"github.com/predictlab/rydercup-stats/internal/models"
)

// RandomBaseline is the accuracy of guessing uniformly among three outcomes.
const RandomBaseline = 100.0 / 3

// LowConfidenceAtMost marks predictions that were close calls.
const LowConfidenceAtMost = 0.5

const worstRoundCount = 2

// BuildInsights derives the narrative findings shown alongside the metrics.
func BuildInsights(metrics models.AccuracyMetrics, matches []models.AnnotatedMatch) models.Insights {
	in := models.Insights{
		Baseline:    RandomBaseline,
		WorstRounds: worstRounds(metrics, worstRoundCount),
		Flags:       []string{},
	}
	if metrics.TotalMatches > 0 {
		// Compared in counts so exactly one in three is not lost to rounding.
		chance := 3*metrics.CorrectPredictions - metrics.TotalMatches
		in.AboveBaseline = chance >= 0
		if chance != 0 {
			in.VsBaseline = metrics.OverallAccuracy - RandomBaseline
		}
	}

	for _, m := range matches {
		if m.Confidence > HighConfidenceAbove && !m.IsCorrect {
			in.HighConfidenceMisses++
		}
		if m.Confidence <= LowConfidenceAtMost && m.IsCorrect {
			in.LowConfidenceHits++
		}
		if CanonicalOutcome(m.PredictedOutcome) == models.OutcomeDraw {
			in.DrawPredictions++
		}
		if CanonicalOutcome(m.ActualOutcome) == models.OutcomeDraw {
			in.ActualDraws++
		}
	}

	in.AverageRoundAccuracy, in.Trend = roundTrend(metrics)

	if metrics.TotalMatches > 0 && !in.AboveBaseline {
		in.Flags = append(in.Flags, models.FlagBelowBaseline)
	}
	if draw := metrics.AccuracyByOutcome[models.OutcomeDraw]; draw.Total > 0 && draw.Correct == 0 {
		in.Flags = append(in.Flags, models.FlagZeroDrawAccuracy)
	}
	if in.HighConfidenceMisses > 0 {
		in.Flags = append(in.Flags, models.FlagOverconfident)
	}
	return in
}

// worstRounds returns up to n rounds with the lowest accuracy, lower round
// first on ties.
func worstRounds(metrics models.AccuracyMetrics, n int) []int {
	rounds := append([]int(nil), metrics.Rounds...)
	sort.SliceStable(rounds, func(i, j int) bool {
		ai := metrics.AccuracyByRound[rounds[i]].Accuracy
		aj := metrics.AccuracyByRound[rounds[j]].Accuracy
		if ai != aj {
			return ai < aj
		}
		return rounds[i] < rounds[j]
	})
	if len(rounds) > n {
		rounds = rounds[:n]
	}
	if rounds == nil {
		rounds = []int{}
	}
	return rounds
}

// roundTrend fits accuracy = slope*round + intercept by least squares.
// With fewer than two rounds the trend is flat at the mean.
func roundTrend(metrics models.AccuracyMetrics) (float64, models.RoundTrend) {
	n := float64(len(metrics.Rounds))
	if n == 0 {
		return 0, models.RoundTrend{Direction: "stable"}
	}

	var sumX, sumY, sumXY, sumX2 float64
	for _, r := range metrics.Rounds {
		x := float64(r)
		y := metrics.AccuracyByRound[r].Accuracy
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	mean := sumY / n

	denom := n*sumX2 - sumX*sumX
	if n < 2 || denom == 0 {
		return mean, models.RoundTrend{Intercept: mean, Direction: "stable"}
	}

	slope := (n*sumXY - sumX*sumY) / denom
	trend := models.RoundTrend{
		Slope:     slope,
		Intercept: (sumY - slope*sumX) / n,
		Direction: "stable",
	}
	switch {
	case slope > 0:
		trend.Direction = "improving"
	case slope < 0:
		trend.Direction = "declining"
	}
	return mean, trend
}
