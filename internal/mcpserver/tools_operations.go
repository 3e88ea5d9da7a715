package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasflat/operation"
)

var errMissingTarget = errors.New("either path or ref must be provided")

type listOperationsInput struct {
	Spec     specInput `json:"spec"                jsonschema:"The OAS document to list"`
	BodyOnly bool      `json:"body_only,omitempty" jsonschema:"Only list operations that have a request body"`
	Limit    int       `json:"limit,omitempty"     jsonschema:"Maximum number of operations to return (default 500)"`
	Offset   int       `json:"offset,omitempty"    jsonschema:"Skip the first N operations (for pagination)"`
}

type operationSummary struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	OperationID string `json:"operation_id,omitempty"`
	Summary     string `json:"summary,omitempty"`
	HasBody     bool   `json:"has_body"`
}

type listOperationsOutput struct {
	Version    string             `json:"version"`
	Total      int                `json:"total"`
	Matched    int                `json:"matched"`
	Returned   int                `json:"returned"`
	Operations []operationSummary `json:"operations"`
}

func handleListOperations(ctx context.Context, _ *mcp.CallToolRequest, input listOperationsInput) (*mcp.CallToolResult, listOperationsOutput, error) {
	doc, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}

	all := operation.List(doc.Data)
	matched := all
	if input.BodyOnly {
		matched = make([]operation.Operation, 0, len(all))
		for _, op := range all {
			if op.HasBody {
				matched = append(matched, op)
			}
		}
	}

	page := paginate(matched, input.Offset, input.Limit)
	output := listOperationsOutput{
		Version:    doc.Version,
		Total:      len(all),
		Matched:    len(matched),
		Returned:   len(page),
		Operations: make([]operationSummary, 0, len(page)),
	}
	for _, op := range page {
		output.Operations = append(output.Operations, operationSummary{
			Method:      operation.DisplayMethod(op.Method),
			Path:        op.Path,
			OperationID: op.OperationID,
			Summary:     op.Summary,
			HasBody:     op.HasBody,
		})
	}
	return nil, output, nil
}
