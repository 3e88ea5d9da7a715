// Package loader reads an OpenAPI or Swagger document into the generic tree
// the flatten package walks.
//
// A source is a local file path, an http:// or https:// URL, or "-" for
// standard input. JSON input is decoded with github.com/goccy/go-json and
// everything else with go.yaml.in/yaml/v4. YAML mappings with non-string keys
// (unquoted response codes such as 200:) are normalised to string keys, so
// every object in the result is a map[string]any.
//
//	doc, err := loader.Load(ctx, "petstore.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Version, doc.IsOAS2())
//
// Remote fetches honour the context, a client timeout (30s by default) and a
// size limit (10 MiB by default). Failures to decode or to find a "swagger" or
// "openapi" version field are reported as *oaserrors.ParseError; oversized
// input as *oaserrors.ResourceLimitError.
package loader
