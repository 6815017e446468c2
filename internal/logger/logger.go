package logger

import (
	"io"
	"log/slog"
	"os"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
}

// New creates new Logger instance writing to stdout with the specified level and format.
func New(level int, format string) *Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter creates new Logger writing to w. Unknown formats fall back to text.
func NewWithWriter(w io.Writer, level int, format string) *Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(level)}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
