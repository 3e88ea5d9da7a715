package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/erraggy/oasflat/flatten"
)

// WriteCSV renders records as CSV with a header row.
func WriteCSV(w io.Writer, records []flatten.ParameterRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("report: writing csv header: %w", err)
	}
	if err := cw.WriteAll(Rows(records)); err != nil {
		return fmt.Errorf("report: writing csv: %w", err)
	}
	return nil
}
