package vgbuf

import (
	"log/slog"

	"github.com/gogpu/vgbuf/internal/logger"
)

// SetLogger configures the logger for vgbuf and all its sub-packages.
// By default, vgbuf produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by vgbuf:
//   - [slog.LevelDebug]: layout and allocation details (stride, size, address)
//   - [slog.LevelInfo]: lifecycle events (test function run, buffer saved)
//   - [slog.LevelWarn]: soft failures (unknown names replaced by defaults)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	vgbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger used by vgbuf.
// Sub-packages share the same logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logger.Get()
}
