// Package report renders flattened parameter records.
//
// Every format carries the same three columns: the parameter path, its type
// label and whether it is required ("Yes"/"No"). Records are written in the
// order given; pass Records.Sorted() for the canonical path order.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/oasflat/flatten"
)

// Format is an output format name.
type Format string

// Output formats
const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatCSV, FormatMarkdown, FormatJSON, FormatYAML}

// Column headers shared by the tabular formats.
var Headers = []string{"Parameter Path", "Expected Type / Structure", "Required?"}

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatCSV, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("invalid format '%s'. Valid formats: %s", name, strings.Join(names, ", "))
}

// RequiredLabel renders a required flag.
func RequiredLabel(required bool) string {
	if required {
		return "Yes"
	}
	return "No"
}

// Rows converts records to table rows.
func Rows(records []flatten.ParameterRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Path, r.Type, RequiredLabel(r.Required)})
	}
	return rows
}

// Write renders records to w in format.
func Write(w io.Writer, records []flatten.ParameterRecord, format Format) error {
	switch format {
	case FormatText:
		WriteTable(w, records, false)
		return nil
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatMarkdown:
		return WriteMarkdown(w, records)
	case FormatJSON, FormatYAML:
		return writeStructured(w, records, format)
	default:
		return fmt.Errorf("report: unsupported format: %s", format)
	}
}
