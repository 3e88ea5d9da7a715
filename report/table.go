package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"

	"github.com/erraggy/oasflat/flatten"
)

// WriteTable renders records as an aligned text table.
// In quiet mode, headers are omitted and cells are tab-separated for piping.
// Nothing is written for an empty record set.
func WriteTable(w io.Writer, records []flatten.ParameterRecord, quiet bool) {
	RenderTable(w, Headers, Rows(records), quiet)
}

// RenderTable renders rows under headers with columns padded to their widest
// cell. In quiet mode, headers are omitted and cells are tab-separated.
func RenderTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	if quiet {
		for _, row := range rows {
			_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = displayWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], displayWidth(cell))
			}
		}
	}

	writeRow(w, headers, widths)
	for _, row := range rows {
		writeRow(w, row, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
		if i < len(cells)-1 && i < len(widths) {
			b.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)))
		}
	}
	_, _ = fmt.Fprintln(w, b.String())
}

// displayWidth counts terminal columns: East Asian wide and fullwidth runes
// take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
