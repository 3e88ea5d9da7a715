// Package oasflat flattens the request-body schema of an OpenAPI or Swagger
// operation into a flat table of dotted parameter paths.
//
// Every reachable property becomes one row carrying its path, a human-readable
// type label and whether its enclosing object marks it as required:
//
//	order                   Object (Order)        Yes
//	order.items             List[LineItem]        Yes
//	order.items[...]        Object (LineItem)     No
//	order.items[...].sku    String                Yes
//	order.placedAt          String (ISO 8601)     No
//
// # Packages
//
//   - flatten: reference resolution, type labels and the flattening walk
//   - loader: load a document from a file, URL, stdin or bytes (JSON or YAML)
//   - operation: pick an operation and its request-body schema (Swagger 2.0 and OAS 3.x)
//   - report: render records as a text table, CSV, Markdown, JSON or YAML
//   - extract: run the walk for one operation or schema, or for every operation at once
//   - oaserrors: typed errors usable with errors.Is and errors.As
//
// # Quick Start
//
//	doc, err := loader.Load(ctx, "swagger.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	body, err := operation.RequestBodySchema(doc.Data, "/orders", "post")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out := flatten.New().Flatten(doc.Data, body)
//	if err := report.Write(os.Stdout, out.Records.Sorted(), report.FormatMarkdown); err != nil {
//		log.Fatal(err)
//	}
//
// The command-line tool in cmd/oasflat wraps the same pipeline:
//
//	oasflat flatten --path /orders --method post --format markdown swagger.json
//
// and internal/mcpserver exposes it to MCP clients through "oasflat mcp".
package oasflat
