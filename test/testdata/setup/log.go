package setup

import (
	"os"

	"go.uber.org/zap"
)

// NewTestLogger builds a development logger whose level comes from TEST_LOG_LEVEL,
// defaulting to debug.
func NewTestLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()

	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	if levelStr := os.Getenv("TEST_LOG_LEVEL"); levelStr != "" {
		level, err := zap.ParseAtomicLevel(levelStr)
		if err == nil {
			cfg.Level = level
		}
	}

	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.CallerKey = "caller"

	return cfg.Build()
}
