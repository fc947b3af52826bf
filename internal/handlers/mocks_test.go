package handlers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/predictlab/rydercup-stats/internal/models"
)

// MockAnalysisService
type MockAnalysisService struct {
	SnapshotFunc func() *models.Snapshot
	SummaryFunc  func() models.SummaryResponse
	MatchesFunc  func(q models.MatchQuery) []models.AnnotatedMatch
	RoundFunc    func(round int) (models.AccuracyBucket, bool)
}

func (m *MockAnalysisService) Snapshot() *models.Snapshot {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc()
	}
	return &models.Snapshot{ID: "mock"}
}

func (m *MockAnalysisService) Summary() models.SummaryResponse {
	if m.SummaryFunc != nil {
		return m.SummaryFunc()
	}
	return models.SummaryResponse{SnapshotID: "mock"}
}

func (m *MockAnalysisService) Matches(q models.MatchQuery) []models.AnnotatedMatch {
	if m.MatchesFunc != nil {
		return m.MatchesFunc(q)
	}
	return []models.AnnotatedMatch{}
}

func (m *MockAnalysisService) Round(round int) (models.AccuracyBucket, bool) {
	if m.RoundFunc != nil {
		return m.RoundFunc(round)
	}
	return models.AccuracyBucket{}, false
}

// MockExportService
type MockExportService struct {
	ExportFunc func(ctx context.Context, format string) ([]byte, error)
}

func (m *MockExportService) Export(ctx context.Context, format string) ([]byte, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, format)
	}
	return []byte("mock"), nil
}

// MockRedisClient
type MockRedisClient struct {
	PingFunc func(ctx context.Context) *redis.StatusCmd
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (m *MockRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return redis.NewStatusResult("PONG", nil)
}
