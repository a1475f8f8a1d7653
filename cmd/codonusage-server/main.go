// Command codonusage-server provides a REST API for codon-usage
// analysis.
//
// Usage:
//
//	codonusage-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bioseq-tools/codonusage-go/api/handlers"
	"github.com/bioseq-tools/codonusage-go/api/middleware"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/usage", func(r chi.Router) {
			r.Post("/analyze", handlers.AnalyzeHandler)
		})

		r.Route("/codon", func(r chi.Router) {
			r.Post("/count", handlers.CodonCountHandler)
		})

		r.Route("/header", func(r chi.Router) {
			r.Post("/parse", handlers.HeaderParseHandler)
		})

		r.Route("/sequence", func(r chi.Router) {
			r.Post("/normalize", handlers.NormalizeHandler)
		})
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Codon Usage API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>Codon Usage API</h1>
    <p>A REST API for batch codon-usage analysis of CDS sequences.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/usage/analyze</code>
        <p>Run the full pipeline over a set of records.</p>
        <pre>{"records": [{"header": "sp1@r1", "sequence": "ACGT"}, {"header": "sp1@r2", "sequence": "ACG"}]}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/codon/count</code>
        <p>Normalize one sequence and count non-overlapping codons.</p>
        <pre>{"sequence": "ATGATGATG"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/header/parse</code>
        <p>Split a FASTA header into species and record id.</p>
        <pre>{"header": "gam2@c52334_g1_i1"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sequence/normalize</code>
        <p>Convert a raw sequence to uppercase RNA (T becomes U).</p>
        <pre>{"sequence": "acgtACGT"}</pre>
    </div>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("Codon usage API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
