package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bioseq-tools/codonusage-go/pkg/codonusage"
)

// AnalyzeRequest carries raw records for a full usage analysis.
type AnalyzeRequest struct {
	Records []RecordItem `json:"records"`
}

// RecordItem is one FASTA entry in an analyze request.
type RecordItem struct {
	Header   string `json:"header"`
	Sequence string `json:"sequence"`
}

// AnalyzeResponse is the long-format usage table.
type AnalyzeResponse struct {
	Species int              `json:"species"`
	Rows    []codonusage.Row `json:"rows"`
}

// AnalyzeHandler runs the full pipeline over the posted records.
func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	raw := make([]codonusage.RawRecord, len(req.Records))
	for i, rec := range req.Records {
		raw[i] = codonusage.RawRecord{Header: rec.Header, Sequence: rec.Sequence}
	}

	rows := codonusage.AnalyzeRecords(raw)
	if rows == nil {
		rows = []codonusage.Row{}
	}

	seen := make(map[string]bool)
	for _, row := range rows {
		seen[row.Species] = true
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalyzeResponse{
		Species: len(seen),
		Rows:    rows,
	})
}

// CodonCountRequest carries one raw sequence for codon counting.
type CodonCountRequest struct {
	Sequence string `json:"sequence"`
}

// CodonCountResponse reports the tally for one normalized sequence.
type CodonCountResponse struct {
	TotalCodons int            `json:"total_codons"`
	UniqueCount int            `json:"unique_count"`
	Standard    int            `json:"standard_codons"`
	Counts      map[string]int `json:"counts"`
}

// CodonCountHandler normalizes the posted sequence and counts its
// non-overlapping codons.
func CodonCountHandler(w http.ResponseWriter, r *http.Request) {
	var req CodonCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	counter := codonusage.CountCodons(codonusage.Normalize(req.Sequence))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CodonCountResponse{
		TotalCodons: counter.Total,
		UniqueCount: counter.Unique(),
		Standard:    counter.Standard(),
		Counts:      counter.Counts,
	})
}
