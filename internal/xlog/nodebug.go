//go:build !debug

package xlog

// Debugf is a no-op in production builds. The upstream geom2d library's
// log_debug.go omitted this half of the pair, leaving default builds
// without a logDebugf definition at all; this pairs a real stub with the
// debug-tagged one so the package compiles both ways.
func Debugf(format string, v ...interface{}) {}
