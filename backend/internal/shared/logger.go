package shared

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger for the given level and environment.
// Production uses the JSON encoder; everything else gets the console encoder.
func NewLogger(level, environment string) (*zap.Logger, error) {
	var config zap.Config
	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// BootstrapLogger builds a logger from LOG_LEVEL and ENVIRONMENT, installs
// it as the zap global and returns it. Falls back to a no-op logger.
func BootstrapLogger() *zap.Logger {
	logger, err := NewLogger(GetEnv("LOG_LEVEL", "info"), GetEnv("ENVIRONMENT", "development"))
	if err != nil {
		logger = zap.NewNop()
	}
	zap.ReplaceGlobals(logger)
	return logger
}
