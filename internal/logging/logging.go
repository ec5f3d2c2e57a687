package logging

import (
	"log/slog"
	"os"
)

// Level controls which messages are emitted
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Field is a single structured key/value pair attached to a log message
type Field struct {
	Key   string
	Value interface{}
}

// WithField attaches one key/value pair to a log message
func WithField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// WithFields attaches multiple key/value pairs to a log message.
// Returned as a single Field carrying the map; the logger flattens it.
func WithFields(fields map[string]interface{}) Field {
	return Field{Key: "", Value: fields}
}

// Logger is a leveled structured logger
type Logger struct {
	sl *slog.Logger
}

// New creates a logger writing to stderr at the given minimum level
func New(level Level) *Logger {
	var slLevel slog.Level
	switch level {
	case LevelDebug:
		slLevel = slog.LevelDebug
	case LevelWarn:
		slLevel = slog.LevelWarn
	case LevelError:
		slLevel = slog.LevelError
	default:
		slLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slLevel})
	return &Logger{sl: slog.New(handler)}
}

// Debug logs at debug level
func (l *Logger) Debug(msg string, fields ...Field) {
	l.sl.Debug(msg, flatten(fields)...)
}

// Info logs at info level
func (l *Logger) Info(msg string, fields ...Field) {
	l.sl.Info(msg, flatten(fields)...)
}

// Warn logs at warn level
func (l *Logger) Warn(msg string, fields ...Field) {
	l.sl.Warn(msg, flatten(fields)...)
}

// Error logs at error level
func (l *Logger) Error(msg string, fields ...Field) {
	l.sl.Error(msg, flatten(fields)...)
}

func flatten(fields []Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		if f.Key == "" {
			if m, ok := f.Value.(map[string]interface{}); ok {
				for k, v := range m {
					args = append(args, k, v)
				}
				continue
			}
		}
		args = append(args, f.Key, f.Value)
	}
	return args
}
