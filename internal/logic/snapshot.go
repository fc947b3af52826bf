package logic

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/predictlab/rydercup-stats/internal/models"
)

// BuildOptions configures snapshot construction.
type BuildOptions struct {
	Parse ParseOptions
	// Now stamps the snapshot; defaults to time.Now.
	Now func() time.Time
}

// LoadSnapshot reads the CSV at path and builds a snapshot from it.
func LoadSnapshot(ctx context.Context, path string, opts BuildOptions) (*models.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return BuildSnapshot(ctx, raw, opts)
}

// BuildSnapshot parses raw once and runs the independent aggregations
// concurrently over the parsed records. The returned snapshot is never
// modified afterwards.
func BuildSnapshot(ctx context.Context, raw []byte, opts BuildOptions) (*models.Snapshot, error) {
	start := time.Now()
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	parsed, err := ParseMatches(bytes.NewReader(raw), opts.Parse)
	if err != nil {
		parseFailures.Inc()
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	records := parsed.Records

	sum := sha256.Sum256(raw)
	snap := &models.Snapshot{
		ID:          uuid.NewString(),
		Fingerprint: hex.EncodeToString(sum[:]),
		GeneratedAt: now().UTC(),
		Diagnostics: parsed.Diagnostics,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Metrics = ComputeMetrics(records)
		return gctx.Err()
	})
	g.Go(func() error {
		snap.Confusion = ComputeConfusionMatrix(records)
		snap.Scores = ScoreOutcomes(snap.Confusion)
		return gctx.Err()
	})
	g.Go(func() error {
		snap.Matches = AnnotateAll(records)
		snap.Confidence = ComputeConfidenceBreakdown(snap.Matches)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	snap.Insights = BuildInsights(snap.Metrics, snap.Matches)
	fillDiagnostics(&snap.Diagnostics, snap)

	rowsParsed.Add(float64(len(records)))
	rowsSkipped.Add(float64(len(snap.Diagnostics.SkippedRows)))
	invalidFields.Add(float64(len(snap.Diagnostics.InvalidNumericFields)))
	unknownLabels.Add(float64(snap.Diagnostics.UnknownLabels))
	snapshotMatches.Set(float64(len(records)))
	snapshotBuildDuration.Observe(time.Since(start).Seconds())

	return snap, nil
}

// fillDiagnostics adds the per-record label and probability checks.
func fillDiagnostics(d *models.ParseDiagnostics, snap *models.Snapshot) {
	d.ConfusionDropped = snap.Confusion.Dropped
	for _, m := range snap.Matches {
		if !CanonicalOutcome(m.PredictedOutcome).Known() || !CanonicalOutcome(m.ActualOutcome).Known() {
			d.UnknownLabels++
		}
		if agree, ok := LabelsAgree(m.MatchRecord); ok && agree != m.IsCorrect {
			d.CorrectnessMismatches++
		}
		if !m.Complete {
			d.IncompleteProbabilities++
		}
	}
}
