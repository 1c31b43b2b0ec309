package glyphmask

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for glyphmask and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by glyphmask:
//   - [slog.LevelDebug]: per-glyph diagnostics (skipped degenerate gradients,
//     unsupported conversions, fallback from the paint graph to layers)
//   - [slog.LevelWarn]: font data problems (missing palette, paint graph
//     depth limit, engine failures)
//
// Example:
//
//	glyphmask.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (raster, gotext) call it
// to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
