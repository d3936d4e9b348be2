// Package logger provides leveled key/value logging for codepet.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled messages with trailing key=value pairs
type Logger struct {
	mu     sync.RWMutex
	level  LogLevel
	logger *log.Logger
	fields []any
}

var defaultLogger = New(os.Stderr, INFO)

// New creates a logger writing to w
func New(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(w, "", log.LstdFlags),
	}
}

// Default returns the process-wide logger
func Default() *Logger {
	return defaultLogger
}

// SetLevel updates the level of the default logger
func SetLevel(level LogLevel) {
	defaultLogger.mu.Lock()
	defaultLogger.level = level
	defaultLogger.mu.Unlock()
}

// SetOutput redirects the default logger
func SetOutput(w io.Writer) {
	defaultLogger.mu.Lock()
	defaultLogger.logger.SetOutput(w)
	defaultLogger.mu.Unlock()
}

// With returns a child logger that always appends the given pairs
func (l *Logger) With(keysAndValues ...any) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fields := make([]any, 0, len(l.fields)+len(keysAndValues))
	fields = append(fields, l.fields...)
	fields = append(fields, keysAndValues...)
	return &Logger{level: l.level, logger: l.logger, fields: fields}
}

func (l *Logger) formatMessage(level LogLevel, msg string, keysAndValues []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)

	kv := append(append([]any{}, l.fields...), keysAndValues...)
	for i := 0; i < len(kv); i += 2 {
		var value any = ""
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", kv[i], value)
	}
	return b.String()
}

func (l *Logger) log(level LogLevel, msg string, keysAndValues []any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if level < l.level {
		return
	}
	l.logger.Println(l.formatMessage(level, msg, keysAndValues))
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, keysAndValues ...any) { l.log(DEBUG, msg, keysAndValues) }

// Info logs an info message
func (l *Logger) Info(msg string, keysAndValues ...any) { l.log(INFO, msg, keysAndValues) }

// Warn logs a warning message
func (l *Logger) Warn(msg string, keysAndValues ...any) { l.log(WARN, msg, keysAndValues) }

// Error logs an error message
func (l *Logger) Error(msg string, keysAndValues ...any) { l.log(ERROR, msg, keysAndValues) }

// Package-level convenience functions

func Debug(msg string, keysAndValues ...any) { defaultLogger.Debug(msg, keysAndValues...) }
func Info(msg string, keysAndValues ...any)  { defaultLogger.Info(msg, keysAndValues...) }
func Warn(msg string, keysAndValues ...any)  { defaultLogger.Warn(msg, keysAndValues...) }
func Error(msg string, keysAndValues ...any) { defaultLogger.Error(msg, keysAndValues...) }

// ParseLevel converts a string to a LogLevel, defaulting to INFO
func ParseLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// OpenFile appends the default logger's output to path.
// The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	SetOutput(f)
	return f, nil
}
