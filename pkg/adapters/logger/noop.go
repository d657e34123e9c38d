package logger

import "github.com/user/quotegen/pkg/ports"

// NoopLogger discards every message. The CLI uses it for --quiet and
// tests hand it to stages and the orchestrator.
type NoopLogger struct{}

// NewNoop creates a NoopLogger.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(msg string, args ...interface{}) {}
func (l *NoopLogger) Info(msg string, args ...interface{}) {}
func (l *NoopLogger) Warn(msg string, args ...interface{}) {}
func (l *NoopLogger) Error(msg string, args ...interface{}) {}

// WithComponent returns l; there is nothing to tag.
func (l *NoopLogger) WithComponent(component string) ports.Logger {
	return l
}

var _ ports.Logger = (*NoopLogger)(nil)
