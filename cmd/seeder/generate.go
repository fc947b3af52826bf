package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/predictlab/rydercup-stats/internal/logic"
	"github.com/predictlab/rydercup-stats/internal/models"
)

// GenerateOptions shapes the synthetic tournament.
type GenerateOptions struct {
	MatchesPerRound []int
	Seed            uint64
}

var winMargins = []string{"1 UP", "2 UP", "2&1", "3&2", "4&3", "5&4"}

// Generate writes one row per match. The prediction is the most likely
// outcome and the result is drawn from the same probabilities.
func Generate(w io.Writer, opts GenerateOptions) error {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	cw := csv.NewWriter(w)

	if err := cw.Write(logic.RequiredColumns); err != nil {
		return err
	}
	for i, n := range opts.MatchesPerRound {
		round := i + 1
		for m := 1; m <= n; m++ {
			if err := cw.Write(matchRow(rng, round, m)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

func matchRow(rng *rand.Rand, round, match int) []string {
	// Rounded to three places; draw absorbs the remainder so the row sums to 1.
	us := float64(150+rng.IntN(400)) / 1000
	eu := float64(150+rng.IntN(int(850-us*1000-100))) / 1000
	draw := float64(1000-int(us*1000+0.5)-int(eu*1000+0.5)) / 1000

	probs := [3]float64{us, eu, draw}
	predicted := models.KnownOutcomes[argmax(probs)]
	actual := models.KnownOutcomes[sample(rng, probs)]

	standing := "AS"
	if actual != models.OutcomeDraw {
		standing = winMargins[rng.IntN(len(winMargins))]
	}
	correct := "False"
	if predicted == actual {
		correct = "True"
	}

	return []string{
		strconv.Itoa(round),
		fmt.Sprintf("R%dM%d", round, match),
		strconv.FormatFloat(us, 'f', -1, 64),
		strconv.FormatFloat(eu, 'f', -1, 64),
		strconv.FormatFloat(draw, 'f', -1, 64),
		standing,
		actual.Label(),
		predicted.Label(),
		correct,
	}
}

func argmax(p [3]float64) int {
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i] > p[best] {
			best = i
		}
	}
	return best
}

func sample(rng *rand.Rand, p [3]float64) int {
	x := rng.Float64() * (p[0] + p[1] + p[2])
	for i, v := range p {
		if x < v {
			return i
		}
		x -= v
	}
	return len(p) - 1
}
