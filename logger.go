package cyclemenu

import (
	"context"
	"log/slog"
	"sync/atomic"
)

var (
	silent    = slog.New(slog.DiscardHandler)
	loggerPtr atomic.Pointer[slog.Logger]
)

func init() {
	loggerPtr.Store(silent)
}

// SetLogger sets the logger shared by every widget without WithLogger and
// by package ring. Pass nil to go back to silence, the default.
//
// SetLogger is safe for concurrent use.
//
// Widgets log at Debug only: geometry passes, gesture decisions, state
// changes and outside taps. Each record carries the widget's corner and
// its state at the time of the record.
//
//	cyclemenu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logger returns the widget's own logger or the package one.
func (w *Widget) logger() *slog.Logger {
	if w.opts.logger != nil {
		return w.opts.logger
	}
	return Logger()
}

// debug logs msg with the widget's corner and state. Attributes are only
// built when Debug is enabled.
func (w *Widget) debug(msg string, args ...any) {
	l := w.logger()
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := make([]any, 0, len(args)+2)
	attrs = append(attrs,
		slog.String("corner", w.opts.corner.String()),
		slog.String("state", w.state.String()))
	l.Log(ctx, slog.LevelDebug, "cyclemenu: "+msg, append(attrs, args...)...)
}
