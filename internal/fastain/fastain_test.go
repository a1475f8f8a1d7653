package fastain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.fasta", ">x\nACGT\n")
	writeFile(t, dir, "a.cds.fasta", ">x\nACGT\n")
	writeFile(t, dir, "c.fastq", "@x\nACGT\n+\nIIII\n")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.fasta"), 0o755))

	files, err := DiscoverFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.cds.fasta"),
		filepath.Join(dir, "b.fasta"),
	}, files, "ascending filename order, non-FASTA entries skipped")
}

func TestDiscoverFilesMissingDir(t *testing.T) {
	_, err := DiscoverFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestDiscoverFilesNotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plain.fasta", ">x\nACGT\n")

	_, err := DiscoverFiles(path)
	require.Error(t, err)

	var notDir *NotDirectoryError
	require.ErrorAs(t, err, &notDir)
	assert.Equal(t, path, notDir.Path)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tiny.cds.fasta", `>gam2@rec1
ATGCCG
ACTT
>gam5@rec2 partial transcript
ATGCCGACTT
`)

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, path, records[0].SourceFile)
	assert.Equal(t, "gam2@rec1", records[0].Header)
	assert.Equal(t, "ATGCCGACTT", records[0].Sequence, "sequence lines are concatenated")

	assert.Equal(t, "gam5@rec2 partial transcript", records[1].Header)
	assert.Equal(t, "ATGCCGACTT", records[1].Sequence)
}

func TestReadDirectoryKeepsFileOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "second.fasta", ">sp2@r1\nCCC\n")
	writeFile(t, dir, "first.fasta", ">sp1@r1\nAAA\n>sp1@r2\nGGG\n")

	records, err := ReadDirectory(dir)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "sp1@r1", records[0].Header)
	assert.Equal(t, "sp1@r2", records[1].Header)
	assert.Equal(t, "sp2@r1", records[2].Header)
}

func TestReadDirectoryEmpty(t *testing.T) {
	records, err := ReadDirectory(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, records)
}
