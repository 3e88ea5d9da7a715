package flatten

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oasflat/oaserrors"
)

// ResolvePointer resolves a local JSON Pointer reference such as
// "#/definitions/Pet" against doc and returns a deep copy of the target.
//
// Only pointers starting with "#/" are supported. Every failure (external or
// malformed pointer, missing key, bad array index, descending into a scalar)
// is reported as a *oaserrors.ReferenceError.
func ResolvePointer(doc any, pointer string) (any, error) {
	if !strings.HasPrefix(pointer, "#/") {
		return nil, &oaserrors.ReferenceError{
			Ref:        pointer,
			IsExternal: pointer != "" && !strings.HasPrefix(pointer, "#"),
			Message:    "only local references starting with #/ are supported",
		}
	}

	parts := strings.Split(pointer[2:], "/")
	current := doc
	for i, raw := range parts {
		part := unescapeJSONPointer(raw)
		at := "#/" + strings.Join(parts[:i+1], "/")

		switch v := current.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return nil, &oaserrors.ReferenceError{
					Ref:     pointer,
					Message: fmt.Sprintf("missing key %q at %s", part, at),
				}
			}
			current = next

		case []any:
			// RFC 6901: array tokens are non-negative base-10 integers
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 {
				return nil, &oaserrors.ReferenceError{
					Ref:     pointer,
					Message: fmt.Sprintf("invalid array index %q at %s", part, at),
				}
			}
			if index >= len(v) {
				return nil, &oaserrors.ReferenceError{
					Ref:     pointer,
					Message: fmt.Sprintf("array index %d out of bounds (length %d) at %s", index, len(v), at),
				}
			}
			current = v[index]

		default:
			return nil, &oaserrors.ReferenceError{
				Ref:     pointer,
				Message: fmt.Sprintf("cannot traverse into %T at %s", v, at),
			}
		}
	}

	return deepCopyJSONValue(current), nil
}

// RefName returns the trailing, unescaped segment of a reference, which is
// the definition name for the usual "#/definitions/Name" and
// "#/components/schemas/Name" shapes.
func RefName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		ref = ref[i+1:]
	}
	return unescapeJSONPointer(ref)
}

// unescapeJSONPointer unescapes JSON Pointer tokens
// Per RFC 6901, ~1 represents / and ~0 represents ~
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// deepCopyJSONValue recursively deep copies any JSON-compatible value.
func deepCopyJSONValue(v any) any {
	switch t := v.(type) {
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyJSONValue(item)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyJSONValue(item)
		}
		return cp
	case []string:
		cp := make([]string, len(t))
		copy(cp, t)
		return cp
	default:
		// nil, strings, numbers and bools copy by value
		return v
	}
}
