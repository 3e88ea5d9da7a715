package flatten

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/erraggy/oasflat/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps "LEVEL msg" lines and any error attrs for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
	errs  []error
}

func (r *recordingLogger) add(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+msg)
	for _, a := range args {
		if err, ok := a.(error); ok {
			r.errs = append(r.errs, err)
		}
	}
}

func (r *recordingLogger) count(level string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.lines {
		if strings.HasPrefix(l, level+" ") {
			n++
		}
	}
	return n
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.add("DEBUG", msg, args) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.add("INFO", msg, args) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.add("WARN", msg, args) }
func (r *recordingLogger) Error(msg string, args ...any) { r.add("ERROR", msg, args) }
func (r *recordingLogger) With(_ ...any) Logger          { return r }

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("x")
	l.Info("x", "k", "v")
	l.Warn("x")
	l.Error("x")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler)).With("component", "flatten")

	l.Debug("circular reference", "ref", "#/definitions/Node")
	l.Warn("unresolved reference", "ref", "#/definitions/Gone")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "component=flatten")
	assert.Contains(t, out, "ref=#/definitions/Gone")
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil))
}

func TestFlatten_LogsCycleAtDebug(t *testing.T) {
	doc := map[string]any{
		"definitions": map[string]any{
			"Node": map[string]any{
				"type":       "object",
				"properties": map[string]any{"next": map[string]any{"$ref": "#/definitions/Node"}},
			},
		},
	}
	logger := &recordingLogger{}
	New(WithLogger(logger)).Flatten(doc, map[string]any{"$ref": "#/definitions/Node"})

	assert.Equal(t, 1, logger.count("DEBUG"))
	assert.Zero(t, logger.count("WARN"))
}

func TestFlatten_LogsCircularReferenceError(t *testing.T) {
	doc := map[string]any{
		"definitions": map[string]any{
			"Node": map[string]any{
				"type":       "object",
				"properties": map[string]any{"next": map[string]any{"$ref": "#/definitions/Node"}},
			},
		},
	}
	logger := &recordingLogger{}
	res := New(WithLogger(logger)).Flatten(doc, map[string]any{"$ref": "#/definitions/Node"})

	require.Len(t, logger.errs, 1)
	err := logger.errs[0]
	assert.True(t, errors.Is(err, oaserrors.ErrCircularReference))
	assert.True(t, errors.Is(err, oaserrors.ErrReference))

	var refErr *oaserrors.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "#/definitions/Node", refErr.Ref)

	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], err.Error())
}
