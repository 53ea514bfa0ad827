package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Open reads, cleans and enriches the dataset at path. The returned table is
// the canonical table for the session; every view derives from it.
func Open(path string) (*Table, CleanReport, error) {
	if path == "" {
		return nil, CleanReport{}, unavailable("dataset path not set", nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, CleanReport{}, unavailable(fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	table, report, err := Load(f)
	if err != nil {
		return nil, report, err
	}

	log.Info().
		Str("path", path).
		Int("raw_rows", report.RawRows).
		Int("dropped_missing", report.DroppedMissing).
		Int("dropped_duplicate", report.DroppedDuplicate).
		Int("dropped_invalid", report.DroppedInvalid).
		Int("rows", report.Rows).
		Msg("Dataset loaded")

	return table, report, nil
}

// Load runs the read, clean and enrich passes over r.
func Load(r io.Reader) (*Table, CleanReport, error) {
	raw, err := ReadRaw(r)
	if err != nil {
		return nil, CleanReport{}, err
	}

	clean, report := Clean(raw)

	table, invalid, err := Enrich(clean)
	if err != nil {
		return nil, report, err
	}
	if invalid > 0 {
		log.Warn().Int("rows", invalid).Msg("Skipped rows with unparseable numeric fields")
	}
	report.DroppedInvalid = invalid
	report.Rows = table.Len()

	return table, report, nil
}
