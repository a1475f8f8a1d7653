package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantSpecies  string
		wantRecordID string
	}{
		{"species and record", "foo@bar123", "foo", "bar123"},
		{"no separator", "justaname", "justaname", ""},
		{"transcript style", "gam2@c52334_g1_i1", "gam2", "c52334_g1_i1"},
		{"splits at first separator only", "gam2@rec@extra", "gam2", "rec@extra"},
		{"trims whitespace", "  gam2 @ rec1 ", "gam2", "rec1"},
		{"empty record id", "gam2@", "gam2", ""},
		{"empty species", "@rec1", "", "rec1"},
		{"empty header", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			assert.Equal(t, tt.wantSpecies, got.Species)
			assert.Equal(t, tt.wantRecordID, got.RecordID)
		})
	}
}
