package logger

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/user/quotegen/pkg/ports"
)

// StructuredLogger writes JSON log lines through logrus.
// The component name becomes a "component" field.
type StructuredLogger struct {
	level ports.LogLevel
	entry *logrus.Entry
}

// NewStructured creates a JSON logger writing to w.
func NewStructured(level ports.LogLevel, w io.Writer) *StructuredLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(toLogrusLevel(level))

	return &StructuredLogger{level: level, entry: logrus.NewEntry(l)}
}

// Debug logs a debug message.
func (l *StructuredLogger) Debug(msg string, args ...interface{}) {
	if l.level > ports.LevelDebug {
		return
	}
	l.entry.Debug(translate(msg, args...))
}

// Info logs an informational message.
func (l *StructuredLogger) Info(msg string, args ...interface{}) {
	if l.level > ports.LevelInfo {
		return
	}
	l.entry.Info(translate(msg, args...))
}

// Warn logs a warning message.
func (l *StructuredLogger) Warn(msg string, args ...interface{}) {
	if l.level > ports.LevelWarn {
		return
	}
	l.entry.Warn(translate(msg, args...))
}

// Error logs an error message.
func (l *StructuredLogger) Error(msg string, args ...interface{}) {
	if l.level > ports.LevelError {
		return
	}
	l.entry.Error(translate(msg, args...))
}

// WithComponent returns a logger that tags every line with component.
func (l *StructuredLogger) WithComponent(component string) ports.Logger {
	return &StructuredLogger{
		level: l.level,
		entry: l.entry.WithField("component", component),
	}
}

func toLogrusLevel(level ports.LogLevel) logrus.Level {
	switch level {
	case ports.LevelDebug:
		return logrus.DebugLevel
	case ports.LevelWarn:
		return logrus.WarnLevel
	case ports.LevelError:
		return logrus.ErrorLevel
	case ports.LevelQuiet:
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

var _ ports.Logger = (*StructuredLogger)(nil)
