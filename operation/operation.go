// Package operation locates operations in a decoded OpenAPI or Swagger
// document and extracts the schema of their request body.
//
// Both document families are supported: a Swagger 2.0 operation carries its
// body as an "in: body" parameter, an OpenAPI 3.x operation as a
// "requestBody" with one schema per media type.
package operation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasflat/flatten"
	"github.com/erraggy/oasflat/internal/httputil"
	"github.com/erraggy/oasflat/internal/maputil"
	"github.com/erraggy/oasflat/oaserrors"
)

var (
	lower = cases.Lower(language.Und)
	upper = cases.Upper(language.Und)
)

// NormalizeMethod turns a user-supplied method ("POST", " Post ") into the
// lower-case key used in path items.
func NormalizeMethod(method string) string {
	return lower.String(strings.TrimSpace(method))
}

// DisplayMethod returns the upper-case form used in messages and reports.
func DisplayMethod(method string) string {
	return upper.String(strings.TrimSpace(method))
}

// Operation summarizes one operation of a document.
type Operation struct {
	Path        string `json:"path" yaml:"path"`
	Method      string `json:"method" yaml:"method"`
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string `json:"summary,omitempty" yaml:"summary,omitempty"`
	// HasBody reports whether RequestBodySchema would find a schema.
	HasBody bool `json:"hasBody" yaml:"hasBody"`
}

// List returns every operation in doc, sorted by path and then by method in
// the order path items declare them.
func List(doc map[string]any) []Operation {
	paths, _ := doc["paths"].(map[string]any)
	var ops []Operation
	for _, p := range maputil.SortedKeys(paths) {
		item, ok := deref(doc, paths[p])
		if !ok {
			continue
		}
		for _, method := range httputil.Methods {
			op, ok := item[method].(map[string]any)
			if !ok {
				continue
			}
			_, err := bodySchema(doc, item, op, p, method)
			ops = append(ops, Operation{
				Path:        p,
				Method:      method,
				OperationID: stringOf(op, "operationId"),
				Summary:     stringOf(op, "summary"),
				HasBody:     err == nil,
			})
		}
	}
	return ops
}

// Find returns the operation object at path and method.
func Find(doc map[string]any, path, method string) (map[string]any, error) {
	_, op, err := find(doc, path, method)
	return op, err
}

// RequestBodySchema returns the request body schema of the operation at
// path and method. The schema is returned as written, so it may be a
// {"$ref": ...} node for the flattener to follow.
func RequestBodySchema(doc map[string]any, path, method string) (any, error) {
	item, op, err := find(doc, path, method)
	if err != nil {
		return nil, err
	}
	return bodySchema(doc, item, op, path, NormalizeMethod(method))
}

func find(doc map[string]any, path, method string) (map[string]any, map[string]any, error) {
	key := NormalizeMethod(method)
	if !httputil.IsMethod(key) {
		return nil, nil, &oaserrors.OperationError{Path: path, Method: method, Message: "unsupported HTTP method"}
	}
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return nil, nil, &oaserrors.OperationError{Path: path, Method: method, Message: "document has no paths"}
	}
	raw, ok := paths[path]
	if !ok {
		return nil, nil, &oaserrors.OperationError{Path: path, Method: method, Message: "path not found"}
	}
	item, ok := deref(doc, raw)
	if !ok {
		return nil, nil, &oaserrors.OperationError{Path: path, Method: method, Message: "path item is not an object"}
	}
	op, ok := item[key].(map[string]any)
	if !ok {
		return nil, nil, &oaserrors.OperationError{Path: path, Method: method, Message: "method not defined for path"}
	}
	return item, op, nil
}

// deref returns node as an object, resolving it first if it is a local
// reference. Path items, parameters and request bodies may all be references.
func deref(doc map[string]any, node any) (map[string]any, bool) {
	m, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}
	ref, isRef := m["$ref"].(string)
	if !isRef || ref == "" {
		return m, true
	}
	target, err := flatten.ResolvePointer(doc, ref)
	if err != nil {
		return nil, false
	}
	resolved, ok := target.(map[string]any)
	return resolved, ok
}

func stringOf(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
