package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRNA(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"mixed case DNA", "acgtACGT", "ACGUACGU"},
		{"already RNA", "ACGU", "ACGU"},
		{"lowercase u", "acgu", "ACGU"},
		{"empty", "", ""},
		{"unrecognized characters pass through", "ACG-N.acgX", "ACG-N.ACGX"},
		{"digits untouched", "AC12GT", "AC12GU"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRNA(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.raw), "normalization must not change length")
		})
	}
}

func TestIsStandardBase(t *testing.T) {
	for _, r := range "ACGU" {
		assert.True(t, IsStandardBase(r), string(r))
	}
	for _, r := range "TNacgu-@X" {
		assert.False(t, IsStandardBase(r), string(r))
	}
}

func TestIsStandardCodon(t *testing.T) {
	assert.True(t, IsStandardCodon("AUG"))
	assert.True(t, IsStandardCodon("CCC"))
	assert.False(t, IsStandardCodon("AUN"))
	assert.False(t, IsStandardCodon("A-G"))
	assert.True(t, IsStandardCodon(""), "length is not this predicate's concern")
}
