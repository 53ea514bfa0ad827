package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RawTable is the source file as read: a header and string rows.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// CleanReport counts what the cleaning and enrichment passes kept and dropped.
type CleanReport struct {
	RawRows          int `json:"raw_rows"`
	DroppedMissing   int `json:"dropped_missing"`
	DroppedDuplicate int `json:"dropped_duplicate"`
	DroppedInvalid   int `json:"dropped_invalid"`
	Rows             int `json:"rows"`
}

// missingValues are the cell contents treated as absent, matching the usual
// dataframe NA markers.
var missingValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// ReadRaw parses comma-delimited text with a header row and checks that
// every required column is present.
func ReadRaw(r io.Reader) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, unavailable("source is empty", nil)
	}
	if err != nil {
		return nil, unavailable("failed to read header", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	if _, err := columnIndex(header); err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, unavailable("failed to parse record", err)
		}
		rows = append(rows, rec)
	}

	return &RawTable{Header: header, Rows: rows}, nil
}

// Clean drops records with a missing field and exact duplicates. Surviving
// rows keep their relative order and are densely re-indexed. Cleaning an
// already clean table returns the same rows.
func Clean(raw *RawTable) (*RawTable, CleanReport) {
	report := CleanReport{RawRows: len(raw.Rows)}
	seen := make(map[string]struct{}, len(raw.Rows))
	kept := make([][]string, 0, len(raw.Rows))

	for _, row := range raw.Rows {
		if hasMissing(row, len(raw.Header)) {
			report.DroppedMissing++
			continue
		}

		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			report.DroppedDuplicate++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}

	report.Rows = len(kept)
	return &RawTable{Header: raw.Header, Rows: kept}, report
}

func hasMissing(row []string, width int) bool {
	if len(row) != width {
		return true
	}
	for _, v := range row {
		if _, ok := missingValues[v]; ok {
			return true
		}
	}
	return false
}

// columnIndex resolves every required column to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeColumnName(name)
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}

	var missing []string
	out := make(map[string]int, len(RequiredColumns))
	for _, col := range RequiredColumns {
		i, ok := idx[normalizeColumnName(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		out[col] = i
	}
	if len(missing) > 0 {
		return nil, unavailable(fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")), nil)
	}
	return out, nil
}

func normalizeColumnName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
