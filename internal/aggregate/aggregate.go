// Package aggregate folds normalized CDS records into one composite
// sequence per species.
//
// Records are concatenated in the exact order they are added, with no
// separator or padding between them. Record boundaries therefore do
// not reset the reading frame: a record whose length is not a multiple
// of three shifts the frame of every later record of the same species.
// That is the intended "one continuous composite CDS" semantics and
// downstream codon counts depend on it.
package aggregate

import "strings"

// Record is a single normalized CDS entry attributed to a species.
type Record struct {
	Species  string
	RecordID string
	Sequence string
}

// Composite is the concatenation of all record sequences observed for
// one species.
type Composite struct {
	Species  string
	Sequence string
}

// Accumulator builds per-species composites from an ordered record
// stream. Species iterate in the order they were first seen, so output
// derived from an Accumulator is reproducible for identical input.
// The zero value is not usable; call NewAccumulator.
type Accumulator struct {
	order   []string
	buffers map[string]*strings.Builder
	records int
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		buffers: make(map[string]*strings.Builder),
	}
}

// Add appends one record's sequence to its species buffer. A species
// enters the iteration order the first time it is seen, even if the
// record's sequence is empty.
func (a *Accumulator) Add(rec Record) {
	buf, ok := a.buffers[rec.Species]
	if !ok {
		buf = &strings.Builder{}
		a.buffers[rec.Species] = buf
		a.order = append(a.order, rec.Species)
	}
	buf.WriteString(rec.Sequence)
	a.records++
}

// AddAll folds an ordered slice of records into the accumulator.
func (a *Accumulator) AddAll(recs []Record) {
	for _, rec := range recs {
		a.Add(rec)
	}
}

// Records returns the number of records added so far.
func (a *Accumulator) Records() int {
	return a.records
}

// Species returns the distinct species names in first-encounter order.
func (a *Accumulator) Species() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Composites returns one composite per species, in first-encounter
// order. Species with zero records never appear because they were
// never added.
func (a *Accumulator) Composites() []Composite {
	out := make([]Composite, 0, len(a.order))
	for _, sp := range a.order {
		out = append(out, Composite{
			Species:  sp,
			Sequence: a.buffers[sp].String(),
		})
	}
	return out
}
