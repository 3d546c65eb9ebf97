// Package loggertest provides loggers for tests.
package loggertest

import (
	"testing"

	"github.com/Shivanand-hulikatti/activity-signup/internal/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// New routes log output through t.Log.
func New(t testing.TB) logger.Logger {
	return logger.FromZap(zaptest.NewLogger(t))
}

// Observed returns a logger that keeps every entry at debug level and above
// for later inspection.
func Observed() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}
