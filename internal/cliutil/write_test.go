package cliutil

import (
	"bytes"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d records", "flatten", 3)
	if got := buf.String(); got != "flatten: 3 records" {
		t.Errorf("Writef() = %q, want %q", got, "flatten: 3 records")
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, &writeError{}
}

type writeError struct{}

func (e *writeError) Error() string {
	return "simulated write error"
}

func TestWritef_WriteError(t *testing.T) {
	// must not panic; the failure goes to stderr
	Writef(errorWriter{}, "lost %d", 1)
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Errorf(&buf, "no request body for %s %s", "POST", "/pets")
	want := "Error: no request body for POST /pets\n"
	if got := buf.String(); got != want {
		t.Errorf("Errorf() = %q, want %q", got, want)
	}
}

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, false, "unresolved reference %s", "#/definitions/Gone")
	want := "Warning: unresolved reference #/definitions/Gone\n"
	if got := buf.String(); got != want {
		t.Errorf("Warnf() = %q, want %q", got, want)
	}

	buf.Reset()
	Warnf(&buf, true, "suppressed")
	if buf.Len() != 0 {
		t.Errorf("Warnf(quiet) wrote %q, want nothing", buf.String())
	}
}
