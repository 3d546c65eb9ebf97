// Package logger wraps zap behind a small map-field interface shared by
// the service, journal and HTTP layers. Test helpers live in loggertest.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields are structured key/value pairs attached to one entry.
type Fields = map[string]interface{}

// Logger is the logging interface passed to every component.
type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	Sync() error
}

// ParseLevel maps a config level name to a zap level. Unknown names mean info.
func ParseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Build returns a zap logger for the given level and format. "json" selects
// the production encoder; "console" the development one.
func Build(level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	return cfg.Build()
}

// New builds a Logger from config values.
func New(level, format string) (Logger, error) {
	z, err := Build(level, format)
	if err != nil {
		return nil, err
	}
	return FromZap(z), nil
}

// FromZap adapts an existing *zap.Logger.
func FromZap(z *zap.Logger) Logger {
	return &zapLogger{z: z}
}

// Nop discards everything.
func Nop() Logger {
	return FromZap(zap.NewNop())
}

type zapLogger struct {
	z *zap.Logger
}

func (l *zapLogger) Debug(msg string, fields Fields) { l.z.Debug(msg, toZap(fields)...) }
func (l *zapLogger) Info(msg string, fields Fields)  { l.z.Info(msg, toZap(fields)...) }
func (l *zapLogger) Warn(msg string, fields Fields)  { l.z.Warn(msg, toZap(fields)...) }
func (l *zapLogger) Error(msg string, fields Fields) { l.z.Error(msg, toZap(fields)...) }

func (l *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{z: l.z.With(toZap(fields)...)}
}

func (l *zapLogger) WithError(err error) Logger {
	return &zapLogger{z: l.z.With(zap.Error(err))}
}

func (l *zapLogger) Sync() error {
	return l.z.Sync()
}

func toZap(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
