package analytics

import (
	"encoding/csv"
	"fmt"
	"io"

	"gourmetquest/dataset"
)

// ExportFilename is the suggested download name of an export.
const ExportFilename = "data.csv"

// ExportCSV writes t in display column order, header first.
func ExportCSV(w io.Writer, t *dataset.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.DisplayColumns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	rows := t.Rows()
	for i := range rows {
		if err := cw.Write(t.DisplayRow(&rows[i])); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
