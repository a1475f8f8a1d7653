package csvout

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bioseq-tools/codonusage-go/internal/usage"
)

func sampleRows() []usage.Row {
	return []usage.Row{
		{Species: "sp1", Codon: "ACG", Count: 1, TotalCodons: 3, FreqFraction: 1.0 / 3.0, FreqPercent: 100.0 / 3.0},
		{Species: "sp1", Codon: "UAC", Count: 2, TotalCodons: 3, FreqFraction: 2.0 / 3.0, FreqPercent: 200.0 / 3.0},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleRows()))

	want := "species,codon,count,total_codons,freq_fraction,freq_percent\n" +
		"sp1,ACG,1,3,0.3333333333333333,33.333\n" +
		"sp1,UAC,2,3,0.6666666666666666,66.667\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	assert.Equal(t, "species,codon,count,total_codons,freq_fraction,freq_percent\n", buf.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "codon_usage.csv")
	err := WriteFile(path, sampleRows())
	require.Error(t, err, "missing parent directory surfaces as an error")

	path = filepath.Join(t.TempDir(), "codon_usage.csv")
	require.NoError(t, WriteFile(path, sampleRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sp1,ACG,1,3")
}
