package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		node any
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"string", "object", KindUnknown},
		{"list", []any{map[string]any{"type": "object"}}, KindUnknown},
		{"empty map", map[string]any{}, KindUnknown},
		{"reference", map[string]any{"$ref": "#/definitions/A"}, KindReference},
		{"reference wins over type", map[string]any{"$ref": "#/definitions/A", "type": "object"}, KindReference},
		{"empty reference ignored", map[string]any{"$ref": "", "type": "string"}, KindPrimitive},
		{"non-string reference ignored", map[string]any{"$ref": 3}, KindUnknown},
		{"object", map[string]any{"type": "object"}, KindObject},
		{"object wins over allOf", map[string]any{"type": "object", "allOf": []any{map[string]any{}}}, KindObject},
		{"array", map[string]any{"type": "array"}, KindArray},
		{"nullable array", map[string]any{"type": []any{"array", "null"}}, KindArray},
		{"composition", map[string]any{"allOf": []any{map[string]any{"$ref": "#/x"}}}, KindComposition},
		{"empty allOf", map[string]any{"allOf": []any{}}, KindUnknown},
		{"primitive", map[string]any{"type": "integer"}, KindPrimitive},
		{"properties without type", map[string]any{"properties": map[string]any{}}, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.node))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "reference", KindReference.String())
	assert.Equal(t, "composition", KindComposition.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestRequiredOf(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, requiredOf(map[string]any{"required": []any{"a", 1, "b"}}))
	assert.Equal(t, []string{"x"}, requiredOf(map[string]any{"required": []string{"x"}}))
	assert.Nil(t, requiredOf(map[string]any{"required": true}))
}

func TestFirstAllOfRef(t *testing.T) {
	ref, ok := firstAllOfRef(map[string]any{"allOf": []any{
		map[string]any{"$ref": "#/definitions/Base"},
		map[string]any{"$ref": "#/definitions/Other"},
	}})
	assert.True(t, ok)
	assert.Equal(t, "#/definitions/Base", ref)

	_, ok = firstAllOfRef(map[string]any{"allOf": []any{
		map[string]any{"description": "x"},
		map[string]any{"$ref": "#/definitions/Other"},
	}})
	assert.False(t, ok, "only the first element counts")
}
