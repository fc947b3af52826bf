package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/predictlab/rydercup-stats/internal/config"
	"github.com/predictlab/rydercup-stats/internal/logging"
	"github.com/predictlab/rydercup-stats/internal/logic"
	"github.com/predictlab/rydercup-stats/internal/models"
)

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = rootFlags.dataPath
	}
	if flags.Changed("strict") {
		cfg.StrictParse = rootFlags.strict
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	return logging.New(logging.Options{
		Production: cfg.IsProduction(),
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
	})
}

// loadSnapshot builds the snapshot and reports what the parser tolerated.
func loadSnapshot(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*models.Snapshot, error) {
	snap, err := logic.LoadSnapshot(ctx, cfg.DataPath, logic.BuildOptions{
		Parse: logic.ParseOptions{Strict: cfg.StrictParse},
	})
	if err != nil {
		logger.Errorw("Failed to load dataset", "path", cfg.DataPath, "strict", cfg.StrictParse, "error", err)
		return nil, err
	}

	d := snap.Diagnostics
	logger.Infow("Snapshot loaded",
		"path", cfg.DataPath,
		"snapshotId", snap.ID,
		"matches", len(snap.Matches),
		"accuracy", snap.Metrics.OverallAccuracy,
	)
	if len(d.SkippedRows) > 0 || len(d.InvalidNumericFields) > 0 || d.UnknownLabels > 0 || d.CorrectnessMismatches > 0 {
		logger.Warnw("Dataset has data quality issues",
			"skippedRows", len(d.SkippedRows),
			"invalidNumericFields", len(d.InvalidNumericFields),
			"unknownLabels", d.UnknownLabels,
			"correctnessMismatches", d.CorrectnessMismatches,
			"confusionDropped", d.ConfusionDropped,
		)
	}
	return snap, nil
}
