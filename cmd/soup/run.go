package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/chazu/turingsoup/manifest"
	"github.com/chazu/turingsoup/soup"
	"github.com/chazu/turingsoup/vm"
)

// loadManifest resolves the nearest soup.toml, falling back to built-in
// defaults when none exists.
func loadManifest() *manifest.Manifest {
	m, err := manifest.FindAndLoad(".")
	if err != nil {
		fatalf("loading soup.toml: %v", err)
	}
	if m == nil {
		return manifest.Default()
	}
	return m
}

// handleRunCommand processes the `soup run` subcommand.
//
//	soup run organism.bff
//	soup run organism.bff -head1 0 -max-steps 100 -trace
func handleRunCommand(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	m := loadManifest()

	maxSteps := fs.Uint("max-steps", uint(m.Simulation.MaxSteps), "Step budget")
	head1 := fs.Int("head1", -1, "Initial head1 position (-1 = tape midpoint)")
	trace := fs.Bool("trace", false, "Print the disassembly before executing")
	asJSON := fs.Bool("json", false, "Print the record as JSON")
	asCBOR := fs.Bool("cbor", false, "Write the record as canonical CBOR to stdout")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fatalf("run expects exactly one tape file")
	}
	path := fs.Arg(0)

	tape, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}

	if *trace {
		fmt.Print(vm.DisassembleWithName(tape, path))
		fmt.Println()
	}

	head1Start := *head1
	if head1Start < 0 {
		head1Start = len(tape) / 2
	}

	result := vm.ExecuteWithParams(tape, vm.Params{
		Head1Start: head1Start,
		MaxSteps:   uint32(*maxSteps),
	})

	record := &soup.Record{Result: result, Tape: tape}
	switch {
	case *asJSON:
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			fatalf("encoding JSON: %v", err)
		}
		fmt.Println(string(data))
	case *asCBOR:
		data, err := soup.MarshalRecord(record)
		if err != nil {
			fatalf("encoding CBOR: %v", err)
		}
		os.Stdout.Write(data)
	default:
		printResult(result)
	}
}

// handleDisasmCommand processes the `soup disasm` subcommand.
func handleDisasmCommand(args []string) {
	fs := flag.NewFlagSet("disasm", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fatalf("disasm expects exactly one tape file")
	}
	path := fs.Arg(0)

	tape, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}

	fmt.Print(vm.DisassembleWithName(tape, path))
}

func printResult(r vm.Result) {
	fmt.Printf("halt:   %s\n", r.Halt)
	fmt.Printf("steps:  %d\n", r.Steps)
	fmt.Printf("head0:  %d\n", r.Head0Count)
	fmt.Printf("head1:  %d\n", r.Head1Count)
	fmt.Printf("math:   %d\n", r.MathCount)
	fmt.Printf("copy:   %d\n", r.CopyCount)
	fmt.Printf("loop:   %d\n", r.LoopCount)
}
