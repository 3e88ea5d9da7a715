package flatten

import (
	"fmt"
	"regexp"
)

// Labels produced for references that could not be resolved.
const (
	LabelUnresolvedRef      = "Unknown (Unresolved Ref)"
	LabelUnresolvedAllOfRef = "Unknown (Unresolved Ref in allOf)"
)

// TypeInfo is the part of a schema that decides its type label.
type TypeInfo struct {
	// Type is the raw "type" value: a string, an OAS 3.1 type list, or nil.
	Type any
	// Format is the "format" value (only "date-time" changes the label).
	Format string
	// Enum holds the "enum" values, if any.
	Enum []any
	// Items describes the element schema of an array.
	Items *TypeInfo
	// RefName names the definition an object came from, if known.
	RefName string
}

var objectLabel = regexp.MustCompile(`^Object\s*\(([^)]+)\)`)

// MapType returns the human-readable label for a schema:
//
//	object              Object, or Object (Name) when RefName is set
//	array               List[Name] for named object items, else List[<item label>]
//	integer             Integer
//	number              Float (Number)
//	boolean             Boolean
//	string              String (Enum), String (ISO 8601) for date-time, else String
//	anything else       Unknown (<type>), or Unknown when there is no type
func MapType(info TypeInfo) string {
	switch typ := primaryType(info.Type); typ {
	case "object":
		if info.RefName != "" {
			return "Object (" + info.RefName + ")"
		}
		return "Object"
	case "array":
		inner := "Unknown"
		if info.Items != nil {
			inner = MapType(*info.Items)
		}
		if m := objectLabel.FindStringSubmatch(inner); m != nil {
			return "List[" + m[1] + "]"
		}
		return "List[" + inner + "]"
	case "integer":
		return "Integer"
	case "number":
		return "Float (Number)"
	case "boolean":
		return "Boolean"
	case "string":
		if len(info.Enum) > 0 {
			return "String (Enum)"
		}
		if info.Format == "date-time" {
			return "String (ISO 8601)"
		}
		return "String"
	case "":
		if info.Type == nil {
			return "Unknown"
		}
		if s, ok := info.Type.(string); ok && s == "" {
			return "Unknown"
		}
		return fmt.Sprintf("Unknown (%v)", info.Type)
	default:
		return "Unknown (" + typ + ")"
	}
}
