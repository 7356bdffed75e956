// Package trace provides the structured diagnostic tracing for the
// list/scheduler core: a line per link, unlink, resume, and fire, gated by
// a runtime switch instead of a compile-time one, flipped once by the
// embedding application and otherwise read-only on the hot path.
package trace

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var (
	enabled atomic.Bool
	logger  = zap.NewNop()
)

// Enable turns tracing on or off. Off by default.
func Enable(on bool) {
	enabled.Store(on)
}

// Enabled reports the current state of the trace switch.
func Enabled() bool {
	return enabled.Load()
}

// SetLogger installs the zap.Logger used once tracing is enabled. Passing
// nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Link logs a single link/insert operation. op names the call site
// (e.g. "ready.link", "wait.link", "clock.link"), list identifies which
// list instance, and fields carries whatever else is relevant (thread
// name, priority, timestamp).
func Link(op, list string, fields ...zap.Field) {
	if !enabled.Load() {
		return
	}
	logger.Debug(op, append([]zap.Field{zap.String("list", list)}, fields...)...)
}

// Unlink logs a single unlink/splice-out operation, same shape as Link.
func Unlink(op, list string, fields ...zap.Field) {
	if !enabled.Load() {
		return
	}
	logger.Debug(op, append([]zap.Field{zap.String("list", list)}, fields...)...)
}

// Event logs a miscellaneous trace point (resume, fire, reclaim) that
// isn't itself a raw link/unlink.
func Event(op string, fields ...zap.Field) {
	if !enabled.Load() {
		return
	}
	logger.Debug(op, fields...)
}
