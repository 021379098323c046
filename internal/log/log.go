// Package log holds the process logger. It starts as a no-op so the library
// packages stay silent unless the CLI opts into logging.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger = zap.NewNop()

func Get() *zap.Logger {
	return defaultLogger
}

// Set replaces the no-op process logger with a console logger writing to
// stderr at the given level.
func Set(level zapcore.Level) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	defaultLogger = logger
}

func Flush() {
	_ = defaultLogger.Sync()
}
