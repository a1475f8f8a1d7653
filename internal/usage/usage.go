// Package usage derives per-species codon-usage statistics and
// assembles them into the long-format result table.
//
// One Row holds one (species, codon) observation. Rows for a species
// exist only for codons that were actually observed; a species whose
// composite is shorter than one codon contributes no rows at all.
package usage

import (
	"github.com/bioseq-tools/codonusage-go/internal/aggregate"
	"github.com/bioseq-tools/codonusage-go/internal/codon"
)

// Row is one long-format output record.
type Row struct {
	Species      string  `json:"species"`
	Codon        string  `json:"codon"`
	Count        int     `json:"count"`
	TotalCodons  int     `json:"total_codons"`
	FreqFraction float64 `json:"freq_fraction"`
	FreqPercent  float64 `json:"freq_percent"`
}

// Rows computes usage rows for one species from its codon tally.
// Codons appear in lexicographic order. A zero total yields no rows;
// that is the defined shape of an empty or sub-codon-length composite,
// not an error. Fractions are stored at full float64 precision;
// presentation rounding belongs to the output sink.
func Rows(species string, c *codon.Counter) []Row {
	if c.Total == 0 {
		return nil
	}

	counts := c.Sorted()
	rows := make([]Row, 0, len(counts))
	for _, cc := range counts {
		fraction := float64(cc.Count) / float64(c.Total)
		rows = append(rows, Row{
			Species:      species,
			Codon:        cc.Codon,
			Count:        cc.Count,
			TotalCodons:  c.Total,
			FreqFraction: fraction,
			FreqPercent:  fraction * 100,
		})
	}
	return rows
}

// Assemble counts codons in every composite and flattens the results
// into one table. Species keep the order of the composites slice
// (first-encounter order when it comes from an aggregate.Accumulator);
// codons within a species are lexicographic. Both orders are fixed so
// identical input produces byte-identical output.
func Assemble(composites []aggregate.Composite) []Row {
	rows := make([]Row, 0)
	for _, comp := range composites {
		rows = append(rows, Rows(comp.Species, codon.CountSequence(comp.Sequence))...)
	}
	return rows
}
