//go:build !streamhtmldebug

// Package assert checks caller contracts of the streaming helpers.
//
// Checks only fire in builds tagged streamhtmldebug, so malformed input can
// never reach a panic in a release build. That is a no-op there, but its
// arguments are still evaluated; per-rune callers guard the call with
// Enabled so the constant false removes it.
package assert

// Enabled reports whether contract checks are compiled in.
const Enabled = false

// That panics with the formatted message when cond is false.
func That(cond bool, format string, args ...any) {}
