package logger

import "context"

// NoOpLogger discards everything. Use it in tests.
type NoOpLogger struct{}

// NewNop creates a new no-op logger instance.
func NewNop() Logger {
	return &NoOpLogger{}
}

func (l *NoOpLogger) Debug(args ...interface{})                       {}
func (l *NoOpLogger) Info(args ...interface{})                        {}
func (l *NoOpLogger) Warn(args ...interface{})                        {}
func (l *NoOpLogger) Error(args ...interface{})                       {}
func (l *NoOpLogger) Debugf(format string, args ...interface{})       {}
func (l *NoOpLogger) Infof(format string, args ...interface{})        {}
func (l *NoOpLogger) Warnf(format string, args ...interface{})        {}
func (l *NoOpLogger) Errorf(format string, args ...interface{})       {}
func (l *NoOpLogger) WithFields(fields map[string]interface{}) Logger { return l }
func (l *NoOpLogger) WithContext(ctx context.Context) Logger          { return l }
func (l *NoOpLogger) WithComponent(component string) Logger           { return l }
