package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup builds the process logger and installs it as zap's global logger, so
// call sites can use zap.S(). The returned function flushes buffered entries.
func Setup(level string, development bool) (func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}
	restore := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		restore()
	}, nil
}
