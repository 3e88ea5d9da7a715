// Package oaserrors provides structured error types for the oasflat library.
//
// Import path: github.com/erraggy/oasflat/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON decoding failures and missing version markers
//   - [ReferenceError]: $ref resolution failures and circular references
//   - [OperationError]: the requested path, method or request body does not exist
//   - [ResourceLimitError]: size limits exceeded while loading a document
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrOperation]: Matches any [OperationError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Example
//
//	schema, err := operation.RequestBodySchema(doc, "/orders", "post")
//	if err != nil {
//	    var opErr *oaserrors.OperationError
//	    if errors.As(err, &opErr) {
//	        fmt.Printf("no body for %s %s\n", opErr.Method, opErr.Path)
//	    }
//	}
package oaserrors
