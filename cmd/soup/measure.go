package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chazu/turingsoup/complexity"
	"github.com/chazu/turingsoup/vm"
)

// handleMeasureCommand processes the `soup measure` subcommand.
//
//	soup measure organism.bff
func handleMeasureCommand(args []string) {
	fs := flag.NewFlagSet("measure", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fatalf("measure expects exactly one file")
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}

	fmt.Printf("size:        %d bytes\n", len(data))
	fmt.Printf("opcodes:     %v\n", vm.HasInstructions(data))
	fmt.Printf("entropy:     %.4f bits/byte\n", complexity.ShannonEntropy(data))
	fmt.Printf("complexity:  %.4f bits/byte\n", complexity.KolmogorovEstimate(data))
	fmt.Printf("compressed:  %d bytes\n", complexity.CompressedSize(data))
}
