package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasflat/extract"
	"github.com/erraggy/oasflat/flatten"
	"github.com/erraggy/oasflat/operation"
)

type flattenInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document containing the operation"`
	Path   string    `json:"path,omitempty"   jsonschema:"Path template of the operation (e.g. /pets/{id})"`
	Method string    `json:"method,omitempty" jsonschema:"HTTP method of the operation (default post)"`
	Ref    string    `json:"ref,omitempty"    jsonschema:"Flatten this schema instead of an operation body: a pointer (#/components/schemas/Pet) or a schema name (Pet)"`
	Prefix string    `json:"prefix,omitempty" jsonschema:"Prefix prepended to every parameter path"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of records to return (default 500)"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N records (for pagination)"`
}

type recordOutput struct {
	Path     string `json:"path"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type flattenOutput struct {
	Path           string         `json:"path,omitempty"`
	Method         string         `json:"method,omitempty"`
	Ref            string         `json:"ref,omitempty"`
	Total          int            `json:"total"`
	Returned       int            `json:"returned"`
	Records        []recordOutput `json:"records"`
	Warnings       []string       `json:"warnings,omitempty"`
	UnresolvedRefs int            `json:"unresolved_refs,omitempty"`
	CircularRefs   int            `json:"circular_refs,omitempty"`
}

func handleFlatten(ctx context.Context, _ *mcp.CallToolRequest, input flattenInput) (*mcp.CallToolResult, flattenOutput, error) {
	doc, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), flattenOutput{}, nil
	}

	target := extract.Target{Path: input.Path, Method: input.Method, Ref: input.Ref}
	if target.Ref == "" && target.Method == "" {
		target.Method = cfg.DefaultMethod
	}
	if target.Ref == "" && target.Path == "" {
		return errResult(errMissingTarget), flattenOutput{}, nil
	}

	ex, err := extract.Run(doc.Data, target, flatten.New(flatten.WithPrefix(input.Prefix)))
	if err != nil {
		return errResult(err), flattenOutput{}, nil
	}

	page := paginate(ex.Records, input.Offset, input.Limit)
	output := flattenOutput{
		Path:           ex.Path,
		Ref:            ex.Ref,
		Total:          len(ex.Records),
		Returned:       len(page),
		Records:        make([]recordOutput, 0, len(page)),
		Warnings:       ex.Warnings,
		UnresolvedRefs: ex.UnresolvedRefs,
		CircularRefs:   ex.CircularRefs,
	}
	if ex.Method != "" {
		output.Method = operation.DisplayMethod(ex.Method)
	}
	for _, r := range page {
		output.Records = append(output.Records, recordOutput(r))
	}
	return nil, output, nil
}
