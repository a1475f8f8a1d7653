// Command codonusage provides a CLI for batch codon-usage analysis.
//
// Usage:
//
//	codonusage [command] [options]
//
// Commands:
//
//	analyze     Analyze a directory of CDS FASTA files
//	count       Count codons in one sequence or file
//	header      Parse a FASTA header into species and record id
//	version     Show version information
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bioseq-tools/codonusage-go/pkg/codonusage"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "analyze":
		analyzeCmd(os.Args[2:])
	case "count":
		countCmd(os.Args[2:])
	case "header":
		headerCmd(os.Args[2:])
	case "version":
		fmt.Println(codonusage.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`codonusage - Batch Codon-Usage Analysis

Usage:
  codonusage <command> [options]

Commands:
  analyze   Analyze a directory of CDS FASTA files and write a CSV table
  count     Count codons in one sequence or file
  header    Parse a FASTA header into species and record id
  version   Show version information
  help      Show this help message

Use "codonusage <command> -h" for more information about a command.`)
}

func analyzeCmd(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	in := fs.String("in", "", "input directory containing .fasta / .cds.fasta files")
	out := fs.String("out", "codon_usage.csv", "output CSV path")
	fs.Parse(args)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		fs.Usage()
		os.Exit(1)
	}

	fmt.Printf("[codonusage] Reading FASTA files from: %s\n", *in)

	start := time.Now()
	records, err := codonusage.ReadDirectory(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	rows := codonusage.AnalyzeRecords(records)
	elapsedAnalysis := time.Since(start)

	species := make(map[string]bool)
	standard, total := 0, 0
	for _, row := range rows {
		species[row.Species] = true
		total += row.Count
		if codonusage.IsStandardCodon(row.Codon) {
			standard += row.Count
		}
	}

	fmt.Printf("[codonusage] Parsed %d records into %d rows for %d species in %.2f seconds.\n",
		len(records), len(rows), len(species), elapsedAnalysis.Seconds())
	if nonStandard := total - standard; nonStandard > 0 {
		fmt.Printf("[codonusage] Warning: %d codons contain characters outside A/C/G/U.\n", nonStandard)
	}

	startWrite := time.Now()
	if err := codonusage.WriteCSVFile(*out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		os.Exit(1)
	}
	elapsedWrite := time.Since(startWrite)

	fmt.Printf("[codonusage] Wrote CSV to: %s\n", *out)
	fmt.Printf("[codonusage] Write time: %.2f seconds.\n", elapsedWrite.Seconds())
	fmt.Printf("[codonusage] Total time (analysis + write): %.2f seconds.\n",
		(elapsedAnalysis + elapsedWrite).Seconds())
}

func countCmd(args []string) {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	seq := fs.String("seq", "", "sequence string to count")
	file := fs.String("file", "", "FASTA file whose records form one composite")
	fs.Parse(args)

	if *seq == "" && *file == "" {
		fmt.Fprintln(os.Stderr, "Error: Either -seq or -file is required")
		fs.Usage()
		os.Exit(1)
	}

	composite := *seq
	if *file != "" {
		records, err := codonusage.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		composite = ""
		for _, rec := range records {
			composite += rec.Sequence
		}
	}

	counter := codonusage.CountCodons(codonusage.Normalize(composite))

	fmt.Printf("Codon counts (total=%d, unique=%d)\n", counter.Total, counter.Unique())
	for _, cc := range counter.Sorted() {
		fmt.Printf("%s: %d\n", cc.Codon, cc.Count)
	}
}

func headerCmd(args []string) {
	fs := flag.NewFlagSet("header", flag.ExitOnError)
	text := fs.String("text", "", "FASTA header text (without the leading '>')")
	fs.Parse(args)

	if *text == "" {
		fmt.Fprintln(os.Stderr, "Error: -text is required")
		fs.Usage()
		os.Exit(1)
	}

	parsed := codonusage.ParseHeader(*text)
	fmt.Printf("species: %s\n", parsed.Species)
	fmt.Printf("record_id: %s\n", parsed.RecordID)
}
