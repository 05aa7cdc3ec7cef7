package ggtk

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger handed to toolkits created afterwards and to
// their trackers. By default ggtk logs nothing. Pass nil to restore the
// silent default. Toolkits created with WithLogger keep their own logger.
//
// Log levels used by ggtk:
//   - [slog.LevelDebug]: probe failures, recovered subscriber panics,
//     polling start and stop
//   - [slog.LevelInfo]: toolkit lifecycle, drawing method selected
//   - [slog.LevelWarn]: degraded behaviour such as a failed settings reload
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
