// Package export renders the tabular inventory report for consumers
// outside the system: spreadsheet-compatible CSV and a printable PDF.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV streams a rectangular grid (header row first) as CSV.
func WriteCSV(w io.Writer, grid [][]string) error {
	cw := csv.NewWriter(w)
	for _, row := range grid {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush csv: %w", err)
	}
	return nil
}
