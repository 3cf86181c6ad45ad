// Package logx provides the leveled stderr logging used for verbose
// diagnostics. It is off by default so the progress channel carries only the
// machine-parseable scan lines.
package logx

import "log"

var verbose bool

// SetVerbose enables or disables diagnostic output.
func SetVerbose(v bool) { verbose = v }

// Infof logs formatted info messages when verbose output is enabled.
func Infof(format string, args ...interface{}) {
	if verbose {
		log.Printf("[INFO] "+format, args...)
	}
}

// Warnf logs formatted warning messages when verbose output is enabled.
func Warnf(format string, args ...interface{}) {
	if verbose {
		log.Printf("[WARN] "+format, args...)
	}
}
