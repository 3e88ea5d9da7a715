// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasflat capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasflat"
)

const serverInstructions = `oasflat MCP server: flattens OpenAPI / Swagger request body schemas into dotted parameter paths with type labels and required flags.

Start with list_operations to find operations that have a request body, then call flatten with the path and method. flatten can also expand a named schema via ref.

Configuration: defaults come from OASFLAT_* environment variables set in your MCP client config.
- OASFLAT_DEFAULT_METHOD (default: post) - method used when flatten gets none
- OASFLAT_RESULT_LIMIT (default: 500) - default page size for results
- OASFLAT_MAX_LIMIT (default: 5000) - upper bound for limit
- OASFLAT_FETCH_TIMEOUT (default: 30s) - timeout for URL specs
- OASFLAT_MAX_DOCUMENT_SIZE (default: 10MiB) - largest document accepted
- OASFLAT_CACHE_ENABLED (default: true) - cache loaded specs per session

URL specs resolving to private or loopback addresses are refused unless OASFLAT_ALLOW_PRIVATE_IPS=true.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer(ctx).Run(ctx, &mcp.StdioTransport{})
}

func newServer(ctx context.Context) *mcp.Server {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasflat", Version: oasflat.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "flatten",
		Description: "Flatten the request body schema of one operation into parameter records: a dotted path (array elements appear as [...]), a type label such as Integer, String (Enum), Object (Pet) or List[Item], and whether the property is required. Set path and method (method defaults to OASFLAT_DEFAULT_METHOD), or set ref to a schema pointer (#/definitions/Pet) or schema name (Pet) instead. Circular references are cut off and reported in warnings. Use offset/limit to page through large bodies.",
	}, handleFlatten)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_operations",
		Description: "List the operations of an OpenAPI Specification document (path, method, operationId, summary) and whether each has a request body that flatten can expand. Use body_only=true to see only operations with a body.",
	}, handleListOperations)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
