package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/predictlab/rydercup-stats/internal/logic"
)

type Config struct {
	Logger *zap.Logger
	// Redis is optional; when nil the readiness check skips it.
	Redis logic.RedisClient
	// Services
	Analysis logic.AnalysisService
	Exports  logic.ExportService
	// AllowedOrigins feeds the CORS middleware
	AllowedOrigins []string
}

type Handler struct {
	redis          logic.RedisClient
	logger         *zap.SugaredLogger
	validator      *validator.Validate
	analysis       logic.AnalysisService
	exports        logic.ExportService
	allowedOrigins []string
}

func New(cfg Config) *Handler {
	return &Handler{
		redis:          cfg.Redis,
		logger:         cfg.Logger.Sugar(),
		validator:      validator.New(),
		analysis:       cfg.Analysis,
		exports:        cfg.Exports,
		allowedOrigins: cfg.AllowedOrigins,
	}
}
