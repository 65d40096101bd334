// Package logging adapts log/slog to the Nakama runtime.Logger interface so
// the decision core logs the same way inside and outside a Nakama server.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
)

// ParseLevel maps a config level name to a slog level; unknown names are info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type slogLogger struct {
	l      *slog.Logger
	fields map[string]interface{}
}

// New returns a runtime.Logger writing text records at or above level to w.
func New(level slog.Level, w io.Writer) runtime.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return FromSlog(slog.New(h))
}

// FromSlog wraps an existing slog logger.
func FromSlog(l *slog.Logger) runtime.Logger {
	return &slogLogger{l: l, fields: map[string]interface{}{}}
}

func (s *slogLogger) log(level slog.Level, format string, v ...interface{}) {
	if !s.l.Enabled(context.Background(), level) {
		return
	}
	s.l.Log(context.Background(), level, fmt.Sprintf(format, v...))
}

func (s *slogLogger) Debug(format string, v ...interface{}) { s.log(slog.LevelDebug, format, v...) }
func (s *slogLogger) Info(format string, v ...interface{})  { s.log(slog.LevelInfo, format, v...) }
func (s *slogLogger) Warn(format string, v ...interface{})  { s.log(slog.LevelWarn, format, v...) }
func (s *slogLogger) Error(format string, v ...interface{}) { s.log(slog.LevelError, format, v...) }

func (s *slogLogger) WithField(key string, v interface{}) runtime.Logger {
	return s.WithFields(map[string]interface{}{key: v})
}

func (s *slogLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := maps.Clone(s.fields)
	args := make([]any, 0, 2*len(fields))
	for k, v := range fields {
		merged[k] = v
		args = append(args, k, v)
	}
	return &slogLogger{l: s.l.With(args...), fields: merged}
}

func (s *slogLogger) Fields() map[string]interface{} {
	return maps.Clone(s.fields)
}

type nop struct{}

// Nop discards everything. Tests use it where a logger is only required to
// satisfy the interface.
var Nop runtime.Logger = nop{}

func (nop) Debug(string, ...interface{}) {}
func (nop) Info(string, ...interface{})  {}
func (nop) Warn(string, ...interface{})  {}
func (nop) Error(string, ...interface{}) {}
func (nop) WithField(string, interface{}) runtime.Logger {
	return nop{}
}
func (nop) WithFields(map[string]interface{}) runtime.Logger {
	return nop{}
}
func (nop) Fields() map[string]interface{} {
	return nil
}
