package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasflat/flatten"
)

// writeStructured renders records as a JSON array or a YAML sequence.
func writeStructured(w io.Writer, records []flatten.ParameterRecord, format Format) error {
	if records == nil {
		records = []flatten.ParameterRecord{}
	}
	return RenderDetail(w, records, format)
}

// RenderDetail renders any value as indented JSON or YAML.
func RenderDetail(w io.Writer, v any, format Format) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("report: unsupported structured format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("report: marshaling output: %w", err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("report: writing output: %w", err)
	}
	return nil
}
