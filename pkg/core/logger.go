package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// slogLogger forwards Printf-style messages to a structured logger at debug or info level
type slogLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogLogger adapts a *slog.Logger to the Logger interface.
// Messages are emitted at the given level; a nil logger discards everything.
func NewSlogLogger(logger *slog.Logger, level slog.Level) Logger {
	if logger == nil {
		return NopLogger{}
	}
	return &slogLogger{logger: logger, level: level}
}

func (l *slogLogger) Printf(format string, args ...interface{}) {
	if !l.logger.Enabled(context.Background(), l.level) {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	l.logger.Log(context.Background(), l.level, msg)
}

// NopLogger discards all output
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}
