// Package csvout renders the long-format usage table as CSV.
//
// Presentation rounding lives here: freq_percent is written with three
// decimal places while freq_fraction keeps full round-trip precision.
// The row order is the caller's; the writer never reorders.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bioseq-tools/codonusage-go/internal/usage"
)

var columns = []string{"species", "codon", "count", "total_codons", "freq_fraction", "freq_percent"}

// Write emits a header row followed by one CSV row per usage row.
func Write(w io.Writer, rows []usage.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Species,
			row.Codon,
			strconv.Itoa(row.Count),
			strconv.Itoa(row.TotalCodons),
			strconv.FormatFloat(row.FreqFraction, 'g', -1, 64),
			strconv.FormatFloat(row.FreqPercent, 'f', 3, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// WriteFile writes the table to path, creating or truncating the file.
func WriteFile(path string, rows []usage.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
