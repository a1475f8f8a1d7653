// Package codon counts non-overlapping nucleotide triplets in a
// composite sequence.
//
// Counting starts at offset 0 and advances in steps of three; a
// trailing remainder of one or two characters is dropped. Counts are
// sparse: codons never observed do not appear. The counter does not
// validate the alphabet, so codons containing characters outside
// A/C/G/U are counted like any other triplet.
package codon

import (
	"fmt"
	"sort"

	"github.com/bioseq-tools/codonusage-go/internal/sequence"
)

// Width is the codon length in nucleotides.
const Width = 3

// Count pairs a codon with its occurrence count.
type Count struct {
	Codon string
	Count int
}

// Counter tallies codons. The zero value is not usable; call NewCounter.
type Counter struct {
	Counts map[string]int
	Total  int
}

// NewCounter returns an empty codon counter.
func NewCounter() *Counter {
	return &Counter{Counts: make(map[string]int)}
}

// CountSequence tallies every non-overlapping triplet of seq. The
// final partial window, if any, is discarded, so Total grows by
// exactly len(seq)/Width.
func (c *Counter) CountSequence(seq string) {
	limit := len(seq) - len(seq)%Width
	for i := 0; i < limit; i += Width {
		c.Counts[seq[i:i+Width]]++
		c.Total++
	}
}

// Get returns the count for one codon, zero if never observed.
func (c *Counter) Get(codon string) int {
	return c.Counts[codon]
}

// Unique returns the number of distinct codons observed.
func (c *Counter) Unique() int {
	return len(c.Counts)
}

// Merge adds another counter's tallies into this one.
func (c *Counter) Merge(other *Counter) {
	for codon, n := range other.Counts {
		c.Counts[codon] += n
		c.Total += n
	}
}

// Standard returns the number of counted codon occurrences drawn
// entirely from the standard A/C/G/U alphabet. The difference from
// Total measures how much contamination passed through normalization;
// it never changes what is counted.
func (c *Counter) Standard() int {
	n := 0
	for codon, count := range c.Counts {
		if sequence.IsStandardCodon(codon) {
			n += count
		}
	}
	return n
}

// Sorted returns the observed codons in lexicographic order. The order
// is part of the output contract: results derived from identical input
// must be byte-identical across runs.
func (c *Counter) Sorted() []Count {
	out := make([]Count, 0, len(c.Counts))
	for codon, n := range c.Counts {
		out = append(out, Count{Codon: codon, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Codon < out[j].Codon
	})
	return out
}

func (c *Counter) String() string {
	return fmt.Sprintf("CodonCounter { unique: %d, total: %d }", c.Unique(), c.Total)
}

// CountSequence is the one-shot form: a fresh counter applied to a
// single composite sequence.
func CountSequence(seq string) *Counter {
	c := NewCounter()
	c.CountSequence(seq)
	return c
}
