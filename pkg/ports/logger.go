package ports

import "strings"

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug covers per-stage detail: layout results, encoded sizes.
	LevelDebug LogLevel = iota

	// LevelInfo covers export progress reported by the orchestrator.
	LevelInfo

	// LevelWarn covers problems that leave the export running, such as a
	// skipped font or an asset that could not be saved.
	LevelWarn

	// LevelError covers a failed preset or command.
	LevelError

	// LevelQuiet suppresses all log output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a level name case-insensitively. "warning" is
// accepted as logrus spells it. Unknown names yield LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error", "fatal", "panic":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger is the logging port used by stages, the orchestrator and the CLI.
// Messages are lexicon keys; adapters translate them before formatting.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that tags messages with the component
	// name, e.g. "composite" or "encode".
	WithComponent(component string) Logger
}
