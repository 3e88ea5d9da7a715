package operation_test

import (
	"fmt"

	"github.com/erraggy/oasflat/operation"
)

func ExampleRequestBodySchema() {
	doc := map[string]any{
		"openapi": "3.0.3",
		"paths": map[string]any{
			"/pets": map[string]any{
				"post": map[string]any{
					"requestBody": map[string]any{
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/Pet"},
							},
						},
					},
				},
			},
		},
	}
	schema, err := operation.RequestBodySchema(doc, "/pets", "POST")
	fmt.Println(schema, err)
	// Output:
	// map[$ref:#/components/schemas/Pet] <nil>
}
