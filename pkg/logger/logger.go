package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvLogLevel overrides the configured level when set.
const EnvLogLevel = "DAISY_LOG_LEVEL"

// Logger is a wrapper around charmbracelet/log.Logger
type Logger struct {
	*log.Logger
}

var (
	instance *Logger
	once     sync.Once
)

// GetLogger returns the singleton logger instance
func GetLogger() *Logger {
	once.Do(func() {
		instance = New(os.Stderr)
	})
	return instance
}

// New builds a logger writing to w. Tests use it to capture output.
func New(w io.Writer) *Logger {
	return &Logger{
		Logger: log.NewWithOptions(w, log.Options{
			Level:           log.InfoLevel,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "daisy",
		}),
	}
}

// ParseLevel maps a level name to a log.Level. Unknown names give info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetLogLevel sets the log level from a string
func (l *Logger) SetLogLevel(level string) {
	l.SetLevel(ParseLevel(level))
	l.Debug("Log level set", "level", level)
}

// ConfigureFromEnv applies DAISY_LOG_LEVEL if present.
func (l *Logger) ConfigureFromEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		l.SetLogLevel(level)
	}
}

// Debug logs a debug message through the shared logger
func Debug(msg string, keyvals ...interface{}) {
	GetLogger().Debug(msg, keyvals...)
}

// Info logs an info message through the shared logger
func Info(msg string, keyvals ...interface{}) {
	GetLogger().Info(msg, keyvals...)
}

// Fatal logs through the shared logger and exits with status 1
func Fatal(msg string, keyvals ...interface{}) {
	GetLogger().Fatal(msg, keyvals...)
}
