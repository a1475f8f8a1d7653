// Package codonusage provides a high-level API for batch codon-usage
// analysis over CDS FASTA input.
//
// The pipeline builds one composite sequence per species by ordered
// concatenation of its records, counts non-overlapping codons in each
// composite, and derives per-species, per-codon usage statistics as a
// long-format table.
//
// Example usage:
//
//	rows, err := codonusage.AnalyzeDirectory("data/cds")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := codonusage.WriteCSVFile("codon_usage.csv", rows); err != nil {
//	    log.Fatal(err)
//	}
package codonusage

import (
	"fmt"
	"io"

	"github.com/bioseq-tools/codonusage-go/internal/aggregate"
	"github.com/bioseq-tools/codonusage-go/internal/codon"
	"github.com/bioseq-tools/codonusage-go/internal/csvout"
	"github.com/bioseq-tools/codonusage-go/internal/fastain"
	"github.com/bioseq-tools/codonusage-go/internal/header"
	"github.com/bioseq-tools/codonusage-go/internal/sequence"
	"github.com/bioseq-tools/codonusage-go/internal/usage"
)

// Re-export types for convenience
type (
	RawRecord    = fastain.RawRecord
	ParsedHeader = header.Parsed
	Record       = aggregate.Record
	Composite    = aggregate.Composite
	CodonCounter = codon.Counter
	CodonCount   = codon.Count
	Row          = usage.Row
)

// HeaderSeparator is the fixed species/record-id separator in FASTA
// headers.
const HeaderSeparator = header.Separator

// ParseHeader splits raw header text into species and record id.
func ParseHeader(text string) ParsedHeader {
	return header.Parse(text)
}

// Normalize converts a raw nucleotide string to uppercase RNA (T->U).
func Normalize(raw string) string {
	return sequence.NormalizeRNA(raw)
}

// CountCodons tallies non-overlapping codons in a normalized sequence.
func CountCodons(seq string) *CodonCounter {
	return codon.CountSequence(seq)
}

// Aggregate folds normalized records into one composite per species,
// in first-encounter order.
func Aggregate(records []Record) []Composite {
	acc := aggregate.NewAccumulator()
	acc.AddAll(records)
	return acc.Composites()
}

// AnalyzeRecords runs the full core pipeline over an ordered raw
// record stream: header parsing, normalization, per-species
// aggregation, codon counting, and frequency computation. Empty input
// yields an empty table. The function is pure: identical input always
// produces an identical row sequence.
func AnalyzeRecords(raw []RawRecord) []Row {
	acc := aggregate.NewAccumulator()
	for _, rec := range raw {
		parsed := header.Parse(rec.Header)
		acc.Add(aggregate.Record{
			Species:  parsed.Species,
			RecordID: parsed.RecordID,
			Sequence: sequence.NormalizeRNA(rec.Sequence),
		})
	}
	return usage.Assemble(acc.Composites())
}

// AnalyzeDirectory reads every *.fasta / *.cds.fasta file in dir
// (ascending filename order) and analyzes the combined record stream.
func AnalyzeDirectory(dir string) ([]Row, error) {
	records, err := fastain.ReadDirectory(dir)
	if err != nil {
		return nil, err
	}
	return AnalyzeRecords(records), nil
}

// ReadDirectory exposes the input collaborator for callers that want
// the raw records themselves.
func ReadDirectory(dir string) ([]RawRecord, error) {
	return fastain.ReadDirectory(dir)
}

// ReadFile decodes a single FASTA file into raw records in file order.
func ReadFile(path string) ([]RawRecord, error) {
	return fastain.ReadFile(path)
}

// IsStandardCodon reports whether codon uses only the A/C/G/U alphabet.
func IsStandardCodon(codon string) bool {
	return sequence.IsStandardCodon(codon)
}

// WriteCSV renders rows as CSV to w.
func WriteCSV(w io.Writer, rows []Row) error {
	return csvout.Write(w, rows)
}

// WriteCSVFile renders rows as CSV to a file at path.
func WriteCSVFile(path string, rows []Row) error {
	return csvout.WriteFile(path, rows)
}

// Version returns the codonusage version.
func Version() string {
	return "1.0.0"
}

// Info returns information about the module.
func Info() string {
	return fmt.Sprintf(`codonusage v%s - Batch Codon-Usage Analysis

Builds one composite CDS per species from a directory of FASTA files,
counts non-overlapping codons, and reports per-species usage as a
long-format table.

Features:
  - FASTA header decomposition (species@record_id)
  - DNA to RNA normalization (T->U)
  - Per-species composite construction with stable ordering
  - Sparse codon counting with remainder discard
  - Frequency and percentage computation
  - CSV output
`, Version())
}
