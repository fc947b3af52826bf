package logic

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/predictlab/rydercup-stats/internal/models"
)

// RedisClient defines the subset of the Redis client used for caching
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// AnalysisService answers read queries over the loaded snapshot
type AnalysisService interface {
	Snapshot() *models.Snapshot
	Summary() models.SummaryResponse
	Matches(q models.MatchQuery) []models.AnnotatedMatch
	Round(round int) (models.AccuracyBucket, bool)
}

// ExportService renders exports of the loaded snapshot
type ExportService interface {
	Export(ctx context.Context, format string) ([]byte, error)
}
