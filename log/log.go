// Package log wraps a process-wide zap logger so domain packages can emit
// structured logs without threading a logger through every call.
package log

import (
	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	logger, _ = zap.NewProduction(zap.AddCallerSkip(1))
}

// SetLogger replaces the package logger, mainly for tests and embedders
// that already own a zap instance.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Debug logs at debug level.
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info logs at info level.
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn logs at warn level.
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error logs at error level.
func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return logger.Sync()
}
