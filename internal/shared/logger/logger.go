package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/TundexSki/coursework-backend/internal/shared/contextkeys"

	"github.com/sirupsen/logrus"
)

// Constants for configuration
const (
	// Log levels
	logLevelDebug = "DEBUG"
	logLevelInfo  = "INFO"
	logLevelWarn  = "WARN"
	logLevelError = "ERROR"

	// Log formats
	logFormatJSON = "json"

	// Backends
	BackendLogrus = "logrus"
	BackendZap    = "zap"

	// Timestamp format
	timestampFormat = "2006-01-02T15:04:05.000Z07:00"
	textTimestamp   = "2006-01-02 15:04:05"
)

// Logger defines the interface for structured logging operations
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	WithFields(fields map[string]interface{}) Logger
	WithContext(ctx context.Context) Logger
	WithComponent(component string) Logger
}

// Config selects the backend, level and format of a logger.
type Config struct {
	Backend string    `env:"LOG_BACKEND" envDefault:"logrus"`
	Level   string    `env:"LOG_LEVEL" envDefault:"info"`
	Format  string    `env:"LOG_FORMAT" envDefault:"text"`
	Output  io.Writer
}

// New builds the logger described by cfg. Unknown backends fall back to logrus.
func New(cfg Config) Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if strings.EqualFold(cfg.Backend, BackendZap) {
		return newZapLogger(cfg)
	}
	return NewLoggerWithConfig(cfg.Level, cfg.Format, cfg.Output)
}

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLoggerWithConfig creates a logrus logger with custom configuration
func NewLoggerWithConfig(level string, format string, out io.Writer) Logger {
	logger := logrus.New()
	logger.SetLevel(parseLevel(level))
	logger.SetFormatter(getLogFormatter(format))
	logger.SetOutput(out)

	return &LogrusLogger{
		entry: logrus.NewEntry(logger),
	}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

// Info logs an info message
func (l *LogrusLogger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

// Error logs an error message
func (l *LogrusLogger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

// Debugf logs a formatted debug message
func (l *LogrusLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Infof logs a formatted info message
func (l *LogrusLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warnf logs a formatted warning message
func (l *LogrusLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Errorf logs a formatted error message
func (l *LogrusLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// WithFields adds structured fields to the logger
func (l *LogrusLogger) WithFields(fields map[string]interface{}) Logger {
	return &LogrusLogger{
		entry: l.entry.WithFields(logrus.Fields(fields)),
	}
}

// WithContext adds the run identifiers carried by ctx to the logger
func (l *LogrusLogger) WithContext(ctx context.Context) Logger {
	return &LogrusLogger{
		entry: l.entry.WithFields(logrus.Fields(contextFields(ctx))),
	}
}

// WithComponent adds component name to the logger
func (l *LogrusLogger) WithComponent(component string) Logger {
	return &LogrusLogger{
		entry: l.entry.WithField("component", component),
	}
}

// Helper functions

// contextFields extracts the known context values into a field map
func contextFields(ctx context.Context) map[string]interface{} {
	fields := map[string]interface{}{}
	addContextField(ctx, contextkeys.RunIDKey, "run_id", fields)
	addContextField(ctx, contextkeys.RunTimestampKey, "run_ts", fields)
	addContextField(ctx, contextkeys.ModeKey, "mode", fields)
	addContextField(ctx, contextkeys.ComponentKey, "component", fields)
	addContextField(ctx, contextkeys.CollectionKey, "collection", fields)
	return fields
}

// addContextField extracts a value from context and adds it to fields if present
func addContextField(ctx context.Context, key interface{}, fieldName string, fields map[string]interface{}) {
	if val := ctx.Value(key); val != nil {
		if strVal, ok := val.(string); ok && strVal != "" {
			fields[fieldName] = strVal
		}
	}
}

// parseLevel maps a level name to a logrus level, defaulting to info
func parseLevel(level string) logrus.Level {
	switch level {
	case logLevelDebug, "debug":
		return logrus.DebugLevel
	case logLevelInfo, "info":
		return logrus.InfoLevel
	case logLevelWarn, "warn", "WARNING", "warning":
		return logrus.WarnLevel
	case logLevelError, "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// getLogFormatter returns a JSON formatter for "json" and a text formatter otherwise
func getLogFormatter(format string) logrus.Formatter {
	if strings.EqualFold(format, logFormatJSON) {
		return &logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		}
	}

	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: textTimestamp,
	}
}
