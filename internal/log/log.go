// ABOUTME: Process-wide structured logger backed by charmbracelet/log
// ABOUTME: Global level and output; writes to stderr unless redirected away from the TUI

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// Level aliases so callers need not import charmbracelet/log.
const (
	LevelDebug = charmlog.DebugLevel
	LevelInfo  = charmlog.InfoLevel
	LevelWarn  = charmlog.WarnLevel
	LevelError = charmlog.ErrorLevel
)

var current atomic.Pointer[charmlog.Logger]

func init() {
	current.Store(New(os.Stderr, LevelInfo))
}

// New creates a logger writing to w at level, with short timestamps.
func New(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Logger returns the global logger.
func Logger() *charmlog.Logger {
	return current.Load()
}

// SetOutput redirects the global logger to w, keeping its level.
func SetOutput(w io.Writer) {
	current.Store(New(w, GetLevel()))
}

// SetLevel sets the global log level.
func SetLevel(l charmlog.Level) {
	current.Load().SetLevel(l)
}

// GetLevel returns the global log level.
func GetLevel() charmlog.Level {
	return current.Load().GetLevel()
}

// ParseLevel parses a level name. "warning" is accepted for warn.
func ParseLevel(s string) (charmlog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	l, err := charmlog.ParseLevel(s)
	if err != nil {
		return LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

type ctxKey struct{}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger attached to ctx, or the global logger.
func FromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*charmlog.Logger); ok {
		return l
	}
	return Logger()
}

// Debug logs a formatted debug message.
func Debug(format string, args ...any) {
	current.Load().Debugf(format, args...)
}

// Info logs a formatted info message.
func Info(format string, args ...any) {
	current.Load().Infof(format, args...)
}

// Warn logs a formatted warning.
func Warn(format string, args ...any) {
	current.Load().Warnf(format, args...)
}

// Error logs a formatted error.
func Error(format string, args ...any) {
	current.Load().Errorf(format, args...)
}
