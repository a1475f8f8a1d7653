package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bioseq-tools/codonusage-go/pkg/codonusage"
)

// HeaderParseRequest carries raw FASTA header text.
type HeaderParseRequest struct {
	Header string `json:"header"`
}

// HeaderParseResponse is the decomposed header.
type HeaderParseResponse struct {
	Species  string `json:"species"`
	RecordID string `json:"record_id"`
}

// HeaderParseHandler splits a header into species and record id.
func HeaderParseHandler(w http.ResponseWriter, r *http.Request) {
	var req HeaderParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	parsed := codonusage.ParseHeader(req.Header)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HeaderParseResponse{
		Species:  parsed.Species,
		RecordID: parsed.RecordID,
	})
}

// NormalizeRequest carries a raw nucleotide string.
type NormalizeRequest struct {
	Sequence string `json:"sequence"`
}

// NormalizeResponse is the uppercase RNA form of the input.
type NormalizeResponse struct {
	Sequence string `json:"sequence"`
	Length   int    `json:"length"`
}

// NormalizeHandler converts a raw sequence to its RNA form.
func NormalizeHandler(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	normalized := codonusage.Normalize(req.Sequence)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(NormalizeResponse{
		Sequence: normalized,
		Length:   len(normalized),
	})
}
