// Soup CLI - inspection tooling for the BFF soup kernel
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbosity := flag.Int("v", 0, "Log verbosity (0 = quiet, 2 = debug)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: soup [options] <command> [command options]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  run <tapefile>       Execute a tape and print statistics\n")
		fmt.Fprintf(os.Stderr, "  pair <soupfile>      Execute one region pair from a soup\n")
		fmt.Fprintf(os.Stderr, "  batch <soupfile>     Execute a batch of pairs, write raw records\n")
		fmt.Fprintf(os.Stderr, "  measure <file>       Print entropy and complexity estimates\n")
		fmt.Fprintf(os.Stderr, "  disasm <tapefile>    Print a tape disassembly\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  soup run organism.bff -trace\n")
		fmt.Fprintf(os.Stderr, "  soup pair soup.bin -a 128 -b 4096\n")
		fmt.Fprintf(os.Stderr, "  soup batch soup.bin -pairs pairs.bin -out records.bin\n")
		fmt.Fprintf(os.Stderr, "\nDefaults come from the nearest soup.toml, if any.\n")
	}
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "run":
		handleRunCommand(rest)
	case "pair":
		handlePairCommand(rest)
	case "batch":
		handleBatchCommand(rest)
	case "measure":
		handleMeasureCommand(rest)
	case "disasm":
		handleDisasmCommand(rest)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
}

// fatalf prints an error and exits, the way every command handler reports
// failure.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
