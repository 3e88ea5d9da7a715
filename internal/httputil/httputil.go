// Package httputil provides HTTP method and media type helpers shared by the
// operation selector and its callers.
package httputil

import (
	"mime"
	"slices"
	"strings"
)

// HTTP Method Constants, in the lower-case form used as path item keys
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

// Methods lists the operation keys a path item may carry, in the order the
// OpenAPI specification declares them.
var Methods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

// IsMethod reports whether key is a path item operation key.
// Keys are case-sensitive in documents, so "POST" is not a method key.
func IsMethod(key string) bool {
	return slices.Contains(Methods, key)
}

// Media types preferred when choosing a request body representation.
const (
	MediaTypeJSON = "application/json"
)

// BaseMediaType strips parameters such as charset from a media type and
// lower-cases it. Media ranges ("application/*") and unparsable values are
// returned trimmed and lower-cased.
func BaseMediaType(mediaType string) string {
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		if i := strings.IndexByte(mediaType, ';'); i >= 0 {
			mediaType = mediaType[:i]
		}
		return strings.ToLower(strings.TrimSpace(mediaType))
	}
	return base
}

// IsJSONMediaType reports whether a media type carries JSON, including
// structured suffixes such as "application/problem+json" and vendor types
// such as "application/vnd.api.json".
func IsJSONMediaType(mediaType string) bool {
	return strings.Contains(BaseMediaType(mediaType), "json")
}
