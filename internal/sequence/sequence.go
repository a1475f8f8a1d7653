// Package sequence canonicalizes raw nucleotide strings into the RNA
// alphabet used for codon counting.
//
// Normalization is deliberately permissive: input is upper-cased and
// every T becomes U, nothing else changes. Characters outside the
// A/C/G/T/U alphabet pass through untouched, so non-DNA contamination
// survives into codon strings rather than being rejected. Callers that
// want visibility into contamination use the Standard predicates.
package sequence

import "strings"

// NormalizeRNA converts a raw nucleotide string to its uppercase RNA
// form. The mapping is 1:1 per character: the result always has the
// same length as the input.
func NormalizeRNA(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 't', 'T', 'u':
			return 'U'
		case 'a':
			return 'A'
		case 'c':
			return 'C'
		case 'g':
			return 'G'
		}
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, raw)
}

// IsStandardBase reports whether r is one of the four standard RNA
// bases produced by normalization.
func IsStandardBase(r rune) bool {
	switch r {
	case 'A', 'C', 'G', 'U':
		return true
	}
	return false
}

// IsStandardCodon reports whether every character of codon is a
// standard RNA base. It does not check length.
func IsStandardCodon(codon string) bool {
	for _, r := range codon {
		if !IsStandardBase(r) {
			return false
		}
	}
	return true
}
