// Package flatten turns an OpenAPI / Swagger schema graph into a flat table of
// parameter paths.
//
// The input is a decoded specification document (nested map[string]any, []any
// and scalars, as produced by encoding/json or a YAML decoder) and a starting
// schema node inside it, usually an operation's request body. Every property
// reachable from that schema becomes one [ParameterRecord]:
//
//	doc := map[string]any{
//	    "definitions": map[string]any{
//	        "Item": map[string]any{
//	            "type":       "object",
//	            "properties": map[string]any{"name": map[string]any{"type": "string"}},
//	        },
//	    },
//	}
//	body := map[string]any{
//	    "type":     "object",
//	    "required": []any{"items"},
//	    "properties": map[string]any{
//	        "items": map[string]any{"type": "array", "items": map[string]any{"$ref": "#/definitions/Item"}},
//	    },
//	}
//	res := flatten.New().Flatten(doc, body)
//	for _, rec := range res.Records.Sorted() {
//	    fmt.Println(rec.Path, rec.Type, rec.Required)
//	}
//	// items List[Item] true
//	// items[...] Object (Item) false
//	// items[...].name String false
//
// # Paths
//
// Object properties are joined with ".", and "[...]" stands for one
// representative element of an array. The root schema itself never gets a
// record.
//
// # References
//
// Only local references ("#/...") are followed. Each reference is resolved to
// an independent copy of its target, so nothing the walk does can alter the
// document. A reference that is already being expanded on the current branch
// is not expanded again; the same reference on a sibling branch is. Unresolvable
// references degrade to an "Unknown (Unresolved Ref)" label and are reported in
// [Result.Warnings]; nothing in this package fails the walk.
//
// # Composition
//
// A bare allOf schema is merged into one object: properties are unioned with
// later branches winning, required lists are concatenated and de-duplicated.
// A property written as {"allOf": [{"$ref": X}, ...]} takes its type from X
// alone.
package flatten
