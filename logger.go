package shapes

import (
	"log/slog"
	"sync/atomic"
)

// logger receives the debug records emitted when a constructor rejects its
// arguments and when TryGetArea finds a non-finite area. It is swapped
// atomically so SetLogger may race with shapes being built on other
// goroutines.
var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger sets the logger shapes reports diagnostics to.
//
// Records are emitted at [slog.LevelDebug] only, with the attributes
// "kind" plus either "arg", "value" and "reason" (rejected argument),
// "err" (impossible triangle) or "value" (area not representable).
// Passing nil discards all records, which is the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger set by [SetLogger].
func Logger() *slog.Logger {
	return logger.Load()
}
