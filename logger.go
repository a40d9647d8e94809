package ftxt

import "context"
import "log/slog"
import "sync/atomic"

// discards everything, Enabled returns false so formatting is skipped
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Configures the logger used by ftxt. By default, ftxt produces no log
// output. Passing nil restores the silent default. Safe for concurrent use.
//
// Log levels used by ftxt:
//   - [slog.LevelDebug]: glyph misses and glyph image constructions.
//   - [slog.LevelWarn]: font construction failures, image upload failures
//     and glyph draw failures.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current logger used by ftxt.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
