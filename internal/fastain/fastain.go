// Package fastain discovers CDS FASTA files in a directory and decodes
// them into raw records for the analysis pipeline.
//
// Discovery and decoding own all I/O failure modes; records handed to
// the core are assumed well formed. The record order is part of the
// analysis contract: files ascend by filename, records keep their
// in-file order.
package fastain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// RawRecord is one FASTA entry before any parsing or normalization.
type RawRecord struct {
	SourceFile string
	Header     string
	Sequence   string
}

// NotDirectoryError is returned when the input path exists but is not
// a directory.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("input path is not a directory: %s", e.Path)
}

// DiscoverFiles returns the paths of all *.fasta and *.cds.fasta files
// directly inside dir, deduplicated and sorted in ascending filename
// order. Subdirectories are not descended into.
func DiscoverFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: dir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	seen := make(map[string]bool)
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// *.cds.fasta also matches the *.fasta suffix; the map keeps
		// each file once.
		if !strings.HasSuffix(name, ".fasta") && !strings.HasSuffix(name, ".cds.fasta") {
			continue
		}
		if !seen[name] {
			seen[name] = true
			files = append(files, filepath.Join(dir, name))
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadFile decodes one FASTA file into raw records in file order.
// Header text is the full text after '>' (identifier plus description,
// if any); sequence lines are concatenated.
func ReadFile(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening FASTA file: %w", err)
	}
	defer f.Close()

	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)

	var records []RawRecord
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		header := s.ID
		if s.Desc != "" {
			header += " " + s.Desc
		}
		records = append(records, RawRecord{
			SourceFile: path,
			Header:     header,
			Sequence:   s.Seq.String(),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return records, nil
}

// ReadDirectory decodes every discovered FASTA file in dir and returns
// the combined ordered record stream.
func ReadDirectory(dir string) ([]RawRecord, error) {
	files, err := DiscoverFiles(dir)
	if err != nil {
		return nil, err
	}

	var records []RawRecord
	for _, path := range files {
		recs, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}
