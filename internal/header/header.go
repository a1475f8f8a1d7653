// Package header decomposes FASTA headers into species and record
// identifiers.
//
// Headers follow the convention "species@record_id", for example
// "gam2@c52334_g1_i1". The separator is fixed for v1.
package header

import "strings"

// Separator divides the species name from the record identifier.
const Separator = "@"

// Parsed holds the two parts of a decomposed FASTA header.
type Parsed struct {
	Species  string
	RecordID string
}

// Parse splits header text at the first separator. Both parts are
// trimmed of surrounding whitespace. When the separator is absent the
// whole trimmed header is the species name and the record identifier
// is empty; this is a defined fallback, not an error. Parse never
// fails and performs no validation of the content of either part.
func Parse(text string) Parsed {
	before, after, found := strings.Cut(text, Separator)
	if !found {
		return Parsed{Species: strings.TrimSpace(text)}
	}
	return Parsed{
		Species:  strings.TrimSpace(before),
		RecordID: strings.TrimSpace(after),
	}
}
