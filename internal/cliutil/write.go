// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Errorf writes an "Error: " prefixed line to w, the form every command uses
// to report a failure before exiting.
func Errorf(w io.Writer, format string, args ...any) {
	Writef(w, "Error: "+format+"\n", args...)
}

// Warnf writes a "Warning: " prefixed line to w unless quiet is set.
func Warnf(w io.Writer, quiet bool, format string, args ...any) {
	if quiet {
		return
	}
	Writef(w, "Warning: "+format+"\n", args...)
}
