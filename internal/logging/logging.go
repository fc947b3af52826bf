// Package logging builds the process logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the encoder and destination.
type Options struct {
	Production bool
	// File, when set, receives logs through a size-rotated writer instead
	// of stderr.
	File      string
	MaxSizeMB int
}

// New returns a logger and a function that flushes it.
func New(opts Options) (*zap.Logger, func()) {
	encCfg := zap.NewDevelopmentEncoderConfig()
	level := zapcore.DebugLevel
	if opts.Production {
		encCfg = zap.NewProductionEncoderConfig()
		level = zapcore.InfoLevel
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if opts.Production {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	sink := zapcore.Lock(os.Stderr)
	var rotator *lumberjack.Logger
	if opts.File != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: 3,
			Compress:   true,
		}
		sink = zapcore.AddSync(rotator)
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller())
	return logger, func() {
		_ = logger.Sync()
		if rotator != nil {
			_ = rotator.Close()
		}
	}
}
