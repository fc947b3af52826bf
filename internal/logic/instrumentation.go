package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	rowsParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rydercup_rows_parsed_total",
		Help: "Total number of match rows parsed into records",
	})

	rowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rydercup_rows_skipped_total",
		Help: "Total number of malformed rows skipped by the parser",
	})

	invalidFields = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rydercup_invalid_numeric_fields_total",
		Help: "Total number of numeric fields that failed to parse",
	})

	unknownLabels = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rydercup_unknown_labels_total",
		Help: "Total number of records with an unrecognised outcome label",
	})

	parseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rydercup_parse_failures_total",
		Help: "Total number of dataset loads rejected by the parser",
	})

	snapshotMatches = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rydercup_snapshot_matches",
		Help: "Number of matches in the most recently built snapshot",
	})

	snapshotBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rydercup_snapshot_build_duration_seconds",
		Help:    "Duration of parsing and aggregating a dataset",
		Buckets: prometheus.DefBuckets,
	})

	exportsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rydercup_exports_total",
		Help: "Total number of exports served, by format and source",
	}, []string{"format", "source"})

	exportCacheErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rydercup_export_cache_errors_total",
		Help: "Total number of failed export cache reads or writes",
	})
)
