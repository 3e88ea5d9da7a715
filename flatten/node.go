package flatten

// Kind is the shape of a schema node as far as flattening is concerned.
type Kind int

const (
	// KindUnknown is anything that is not a recognizable schema: non-maps,
	// empty maps and maps without a usable type.
	KindUnknown Kind = iota
	// KindReference is a node carrying a "$ref" string.
	KindReference
	// KindObject is a node with type "object".
	KindObject
	// KindArray is a node with type "array".
	KindArray
	// KindComposition is a node with a non-empty "allOf" and no object/array type.
	KindComposition
	// KindPrimitive is a node with any other type (string, integer, ...).
	KindPrimitive
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindReference:
		return "reference"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindComposition:
		return "composition"
	case KindPrimitive:
		return "primitive"
	default:
		return "unknown"
	}
}

// Classify reports which kind of node this is. The checks run in priority
// order, so a node with both "$ref" and "type" is a reference and a typed
// object that also carries allOf is an object.
func Classify(node any) Kind {
	m, ok := node.(map[string]any)
	if !ok {
		return KindUnknown
	}
	if _, ok := refOf(m); ok {
		return KindReference
	}
	typ := primaryType(m["type"])
	switch typ {
	case "object":
		return KindObject
	case "array":
		return KindArray
	}
	if len(allOfOf(m)) > 0 {
		return KindComposition
	}
	if typ != "" {
		return KindPrimitive
	}
	return KindUnknown
}

// primaryType returns the first non-null type of a schema "type" value.
// OAS 2.0 and 3.0 use a plain string; OAS 3.1 allows ["string", "null"].
func primaryType(v any) string {
	var types []string
	switch t := v.(type) {
	case string:
		return t
	case []string:
		types = t
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				types = append(types, s)
			}
		}
	}
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}

func refOf(m map[string]any) (string, bool) {
	ref, ok := m["$ref"].(string)
	return ref, ok && ref != ""
}

func allOfOf(m map[string]any) []any {
	branches, _ := m["allOf"].([]any)
	return branches
}

func propertiesOf(m map[string]any) map[string]any {
	props, _ := m["properties"].(map[string]any)
	return props
}

// requiredOf returns the string entries of a "required" list, in order.
func requiredOf(m map[string]any) []string {
	switch req := m["required"].(type) {
	case []string:
		return req
	case []any:
		names := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				names = append(names, s)
			}
		}
		return names
	}
	return nil
}

func stringOf(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func enumOf(m map[string]any) []any {
	switch e := m["enum"].(type) {
	case []any:
		return e
	case []string:
		values := make([]any, len(e))
		for i, s := range e {
			values[i] = s
		}
		return values
	}
	return nil
}

// firstAllOfRef returns the $ref of the first allOf element when that element
// is a reference, the usual shape generated specs use to attach constraints
// to a named type.
func firstAllOfRef(m map[string]any) (string, bool) {
	branches := allOfOf(m)
	if len(branches) == 0 {
		return "", false
	}
	first, ok := branches[0].(map[string]any)
	if !ok {
		return "", false
	}
	return refOf(first)
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// itemPath is the path of the representative element of the array at prefix.
func itemPath(prefix string) string {
	return prefix + ItemMarker
}

// ItemMarker is appended to an array's path to address its elements.
const ItemMarker = "[...]"
