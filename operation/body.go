package operation

import (
	"github.com/erraggy/oasflat/internal/httputil"
	"github.com/erraggy/oasflat/internal/maputil"
	"github.com/erraggy/oasflat/oaserrors"
)

// bodySchema finds the request body schema of op. An OAS 3.x requestBody
// takes precedence; otherwise the Swagger 2.0 body parameter is used.
func bodySchema(doc, item, op map[string]any, path, method string) (any, error) {
	if raw, ok := op["requestBody"]; ok {
		return requestBodySchema(doc, raw, path, method)
	}

	// operation parameters override path item parameters
	for _, params := range [][]any{parametersOf(op), parametersOf(item)} {
		for _, raw := range params {
			param, ok := deref(doc, raw)
			if !ok || param["in"] != "body" {
				continue
			}
			schema, ok := param["schema"]
			if !ok || schema == nil {
				return nil, &oaserrors.OperationError{Path: path, Method: method, Message: "body parameter has no schema"}
			}
			return schema, nil
		}
	}
	return nil, &oaserrors.OperationError{Path: path, Method: method, Message: "no request body"}
}

func requestBodySchema(doc map[string]any, raw any, path, method string) (any, error) {
	body, ok := deref(doc, raw)
	if !ok {
		return nil, &oaserrors.OperationError{Path: path, Method: method, Message: "request body could not be resolved"}
	}
	content, _ := body["content"].(map[string]any)
	mediaType, ok := pickMediaType(content)
	if !ok {
		return nil, &oaserrors.OperationError{Path: path, Method: method, Message: "request body has no content"}
	}
	media, _ := content[mediaType].(map[string]any)
	schema, ok := media["schema"]
	if !ok || schema == nil {
		return nil, &oaserrors.OperationError{Path: path, Method: method, Message: "request body " + mediaType + " has no schema"}
	}
	return schema, nil
}

// pickMediaType prefers application/json, then any other JSON media type,
// then the first media type by name.
func pickMediaType(content map[string]any) (string, bool) {
	if len(content) == 0 {
		return "", false
	}
	names := maputil.SortedKeys(content)

	for _, name := range names {
		if httputil.BaseMediaType(name) == httputil.MediaTypeJSON {
			return name, true
		}
	}
	for _, name := range names {
		if httputil.IsJSONMediaType(name) {
			return name, true
		}
	}
	return names[0], true
}

func parametersOf(m map[string]any) []any {
	params, _ := m["parameters"].([]any)
	return params
}
