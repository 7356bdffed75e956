// Package debug gates the precondition checks the list core carries over
// from the original's assert() calls. Those are compiled out entirely in
// an NDEBUG release build; Go has no preprocessor, so the same effect is
// reached with a runtime flag that a release build can turn off.
//
// Enabled by default, so a check fires unless something explicitly calls
// Enable(false). The zero value of the underlying flag therefore already
// means "checks on," matching assert()'s own default.
package debug

import "go.uber.org/atomic"

var disabled atomic.Bool

// Enabled reports whether Assert currently panics on a failed condition.
func Enabled() bool {
	return !disabled.Load()
}

// Enable turns precondition checking on or off. A release build wires
// this to false once at startup so that a failed condition no longer
// panics; the condition itself is still evaluated at each call site.
// Tests leave it on.
func Enable(on bool) {
	disabled.Store(!on)
}

// Assert panics with msg if cond is false and checking is enabled. A
// no-op when disabled, so callers can leave the call sites in place
// rather than wrapping them in a build tag.
func Assert(cond bool, msg string) {
	if disabled.Load() {
		return
	}
	if !cond {
		panic("assertion failed: " + msg)
	}
}
