package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/oasflat/flatten"
)

// WriteMarkdown renders records as a Markdown table with the path in a code
// span.
func WriteMarkdown(w io.Writer, records []flatten.ParameterRecord) error {
	var b strings.Builder
	b.WriteString("| " + strings.Join(Headers, " | ") + " |\n")
	b.WriteString("| :------------- | :------------------------ | :-------- |\n")
	for _, r := range records {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n",
			r.Path, escapeCell(r.Type), RequiredLabel(r.Required))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: writing markdown: %w", err)
	}
	return nil
}

// escapeCell keeps a pipe inside a type label from splitting the cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
