package logger_test

import (
	"errors"
	"testing"

	"github.com/Shivanand-hulikatti/activity-signup/internal/logger"
	"github.com/Shivanand-hulikatti/activity-signup/internal/logger/loggertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.name))
		})
	}
}

func TestBuild(t *testing.T) {
	z, err := logger.Build("warn", "json")
	require.NoError(t, err)
	assert.True(t, z.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, z.Core().Enabled(zapcore.InfoLevel))

	_, err = logger.Build("info", "xml")
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	l, logs := loggertest.Observed()

	l.WithFields(logger.Fields{"activity": "Chess Club"}).
		WithError(errors.New("boom")).
		Warn("journal write failed", logger.Fields{"event_id": "ev-1"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "journal write failed", entry.Message)
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	ctx := entry.ContextMap()
	assert.Equal(t, "Chess Club", ctx["activity"])
	assert.Equal(t, "ev-1", ctx["event_id"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestNop(t *testing.T) {
	l := logger.Nop()
	l.Info("ignored", nil)
	assert.NoError(t, l.Sync())
}
