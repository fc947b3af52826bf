package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/predictlab/rydercup-stats/internal/models"
)

type analysisService struct {
	snap *models.Snapshot
}

// NewAnalysisService serves queries over snap. snap must not be modified
// after this call.
func NewAnalysisService(snap *models.Snapshot) AnalysisService {
	return &analysisService{snap: snap}
}

func (s *analysisService) Snapshot() *models.Snapshot {
	return s.snap
}

func (s *analysisService) Summary() models.SummaryResponse {
	return models.SummaryResponse{
		SnapshotID:  s.snap.ID,
		Metrics:     s.snap.Metrics,
		Diagnostics: s.snap.Diagnostics,
	}
}

func (s *analysisService) Matches(q models.MatchQuery) []models.AnnotatedMatch {
	return QueryMatches(s.snap.Matches, q)
}

func (s *analysisService) Round(round int) (models.AccuracyBucket, bool) {
	b, ok := s.snap.Metrics.AccuracyByRound[round]
	return b, ok
}

type exportService struct {
	snap   *models.Snapshot
	cache  RedisClient
	ttl    time.Duration
	logger *zap.SugaredLogger
}

// NewExportService renders exports of snap. cache may be nil, in which case
// every export is rendered on demand.
func NewExportService(snap *models.Snapshot, cache RedisClient, ttl time.Duration, logger *zap.SugaredLogger) ExportService {
	return &exportService{snap: snap, cache: cache, ttl: ttl, logger: logger}
}

// exportCacheKey includes the snapshot ID because rendered exports carry it
// along with the generation time.
func exportCacheKey(snap *models.Snapshot, format string) string {
	return fmt.Sprintf("rydercup:export:%s:%s:%s", snap.Fingerprint, snap.ID, format)
}

// Export returns the rendered export. Cache failures are logged and the
// export is rendered directly.
func (s *exportService) Export(ctx context.Context, format string) ([]byte, error) {
	if _, ok := ExportFileName[format]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	key := exportCacheKey(s.snap, format)
	if s.cache != nil {
		data, err := s.cache.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			exportsServed.WithLabelValues(format, "cache").Inc()
			return data, nil
		case !errors.Is(err, redis.Nil):
			exportCacheErrors.Inc()
			s.logger.Warnw("Export cache read failed", "format", format, "error", err)
		}
	}

	data, err := Render(s.snap, format)
	if err != nil {
		return nil, err
	}
	exportsServed.WithLabelValues(format, "render").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
			exportCacheErrors.Inc()
			s.logger.Warnw("Export cache write failed", "format", format, "error", err)
		}
	}
	return data, nil
}
