package loader

import (
	"fmt"
	"math"
	"strconv"
)

// normalize converts YAML decoder output into JSON-shaped values: every map
// becomes a map[string]any and integer kinds become float64 like the JSON
// decoder produces, so downstream code sees one shape regardless of format.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[keyString(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	default:
		return v
	}
}

// keyString renders a non-string mapping key the way it was written.
func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// versionString reads a "swagger" or "openapi" value. Unquoted YAML versions
// decode as numbers (swagger: 2.0), which are rendered back with at least
// one decimal place.
func versionString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatFloat(t, 'f', 1, 64), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t) + ".0", true
	}
	return "", false
}
