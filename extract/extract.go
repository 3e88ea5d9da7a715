// Package extract runs the flattener against an operation's request body or
// a named schema, and against every operation of a document at once.
package extract

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"unicode"

	"github.com/go-openapi/jsonpointer"
	"golang.org/x/sync/errgroup"

	"github.com/erraggy/oasflat/flatten"
	"github.com/erraggy/oasflat/operation"
)

// Target selects the schema to flatten: an operation's request body, or,
// when Ref is set, a schema by JSON pointer or by definition name.
type Target struct {
	Path   string
	Method string
	// Ref is a local pointer ("#/definitions/Pet") or a bare schema name
	// ("Pet") looked up under definitions or components/schemas.
	Ref string
}

// Extraction is the flattened result for one target.
type Extraction struct {
	Path           string                    `json:"path,omitempty" yaml:"path,omitempty"`
	Method         string                    `json:"method,omitempty" yaml:"method,omitempty"`
	Ref            string                    `json:"ref,omitempty" yaml:"ref,omitempty"`
	Records        []flatten.ParameterRecord `json:"records" yaml:"records"`
	Warnings       []string                  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	UnresolvedRefs int                       `json:"unresolvedRefs" yaml:"unresolvedRefs"`
	CircularRefs   int                       `json:"circularRefs" yaml:"circularRefs"`
}

// SchemaRef turns a schema name into a local pointer for the document's
// family: "#/definitions/<name>" for Swagger 2.0 documents and
// "#/components/schemas/<name>" otherwise.
func SchemaRef(doc map[string]any, name string) string {
	if _, ok := doc["swagger"]; ok {
		return "#/definitions/" + jsonpointer.Escape(name)
	}
	return "#/components/schemas/" + jsonpointer.Escape(name)
}

// Run flattens the schema selected by t.
func Run(doc map[string]any, t Target, f *flatten.Flattener) (*Extraction, error) {
	if f == nil {
		f = flatten.New()
	}

	var (
		schema any
		ex     = &Extraction{}
	)
	if t.Ref != "" {
		ref := t.Ref
		if !strings.HasPrefix(ref, "#") {
			ref = SchemaRef(doc, ref)
		}
		if _, err := flatten.ResolvePointer(doc, ref); err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
		schema = map[string]any{"$ref": ref}
		ex.Ref = ref
	} else {
		body, err := operation.RequestBodySchema(doc, t.Path, t.Method)
		if err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
		schema = body
		ex.Path = t.Path
		ex.Method = operation.NormalizeMethod(t.Method)
	}

	res := f.Flatten(doc, schema)
	ex.Records = res.Records.Sorted()
	ex.Warnings = res.Warnings
	ex.UnresolvedRefs = res.UnresolvedRefs
	ex.CircularRefs = res.CircularRefs
	return ex, nil
}

// All flattens the request body of every operation that has one, running up
// to concurrency extractions at a time (GOMAXPROCS when concurrency <= 0).
// Results follow operation.List order.
func All(ctx context.Context, doc map[string]any, f *flatten.Flattener, concurrency int) ([]*Extraction, error) {
	if f == nil {
		f = flatten.New()
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	var targets []Target
	for _, op := range operation.List(doc) {
		if op.HasBody {
			targets = append(targets, Target{Path: op.Path, Method: op.Method})
		}
	}

	results := make([]*Extraction, len(targets))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for i, t := range targets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ex, err := Run(doc, t, f)
			if err != nil {
				return err
			}
			results[i] = ex
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BaseName returns a file name stem for an extraction, such as
// "post_pets_id" for POST /pets/{id} or "schema_Pet" for a schema ref.
func BaseName(ex *Extraction) string {
	if ex.Ref != "" {
		return "schema_" + slug(flatten.RefName(ex.Ref))
	}
	return slug(ex.Method + "_" + ex.Path)
}

// slug keeps letters and digits and joins every other run with "_".
func slug(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "root"
	}
	return b.String()
}
