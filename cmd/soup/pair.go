package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chazu/turingsoup/complexity"
	"github.com/chazu/turingsoup/soup"
)

// soupOptions builds execution options from the manifest with flag
// overrides applied.
func soupOptions(fs *flag.FlagSet, args []string) (soup.Options, *flag.FlagSet) {
	m := loadManifest()
	region := fs.Int("region", m.Simulation.RegionSize, "Region size in bytes")
	head1 := fs.Int("head1", -1, "Initial head1 position (-1 = the seam)")
	maxSteps := fs.Uint("max-steps", uint(m.Simulation.MaxSteps), "Step budget")
	fs.Parse(args)

	opts := soup.Options{
		RegionSize:  *region,
		Head1Offset: *head1,
		MaxSteps:    uint32(*maxSteps),
	}
	if opts.Head1Offset < 0 {
		opts.Head1Offset = opts.RegionSize
	}
	return opts, fs
}

// handlePairCommand processes the `soup pair` subcommand.
//
//	soup pair soup.bin -a 128 -b 4096
func handlePairCommand(args []string) {
	fs := flag.NewFlagSet("pair", flag.ExitOnError)
	slotA := fs.Uint("a", 0, "Slot A start offset")
	slotB := fs.Uint("b", 0, "Slot B start offset")
	opts, fs := soupOptions(fs, args)

	if fs.NArg() != 1 {
		fatalf("pair expects exactly one soup file")
	}
	path := fs.Arg(0)

	soupBuf, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}

	recordBytes, err := soup.ExecutePair(soupBuf, uint32(*slotA), uint32(*slotB), opts)
	if err != nil {
		fatalf("%v", err)
	}

	record, err := soup.DecodeRecord(recordBytes)
	if err != nil {
		fatalf("%v", err)
	}

	printResult(record.Result)
	fmt.Printf("entropy:    %.4f bits/byte\n", complexity.ShannonEntropy(record.Tape))
	fmt.Printf("complexity: %.4f bits/byte\n", complexity.KolmogorovEstimate(record.Tape))
}

// handleBatchCommand processes the `soup batch` subcommand.
//
//	soup batch soup.bin -pairs pairs.bin -out records.bin
func handleBatchCommand(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	pairsPath := fs.String("pairs", "", "File of 8-byte pair groups (two u32 LE slot offsets each)")
	outPath := fs.String("out", "", "Output file for concatenated records")
	opts, fs := soupOptions(fs, args)

	if fs.NArg() != 1 {
		fatalf("batch expects exactly one soup file")
	}
	if *pairsPath == "" || *outPath == "" {
		fatalf("batch requires -pairs and -out")
	}

	soupBuf, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatalf("reading %s: %v", fs.Arg(0), err)
	}
	pairs, err := os.ReadFile(*pairsPath)
	if err != nil {
		fatalf("reading %s: %v", *pairsPath, err)
	}

	output, err := soup.ExecuteBatch(soupBuf, pairs, opts)
	if err != nil {
		fatalf("%v", err)
	}

	if err := os.WriteFile(*outPath, output, 0644); err != nil {
		fatalf("writing %s: %v", *outPath, err)
	}

	numRecords := len(output) / soup.RecordSize(opts.RegionSize)
	fmt.Printf("Wrote %d records (%d bytes) to %s\n", numRecords, len(output), *outPath)
}
