package vm

import (
	"fmt"
	"strings"
)

// disasmRunWidth is the number of inert bytes folded onto one DB row.
const disasmRunWidth = 16

// Disassemble returns a human-readable listing of a BFF tape.
//
// Recognized opcodes get one row each with their mnemonic; runs of inert
// bytes are folded into DB rows with a printable-ASCII gutter. The listing
// is for inspection only; every byte on the tape is executable.
func Disassemble(tape []byte) string {
	return DisassembleWithName(tape, "")
}

// DisassembleWithName returns a listing with a name header.
func DisassembleWithName(tape []byte, name string) string {
	var sb strings.Builder

	if name != "" {
		sb.WriteString(fmt.Sprintf("; === %s ===\n", name))
	}
	sb.WriteString(fmt.Sprintf("; BFF tape, %d bytes\n", len(tape)))

	for i := 0; i < len(tape); {
		if IsInstruction(tape[i]) {
			op := Opcode(tape[i])
			sb.WriteString(fmt.Sprintf("%04d  %c   %s\n", i, byte(op), op))
			i++
			continue
		}

		// Fold a run of inert bytes into DB rows.
		start := i
		for i < len(tape) && !IsInstruction(tape[i]) && i-start < disasmRunWidth {
			i++
		}
		run := tape[start:i]

		var hexes, gutter strings.Builder
		for _, b := range run {
			fmt.Fprintf(&hexes, "%02X ", b)
			if b >= 0x20 && b < 0x7F {
				gutter.WriteByte(b)
			} else {
				gutter.WriteByte('.')
			}
		}
		sb.WriteString(fmt.Sprintf("%04d  DB  %-48s |%s|\n", start, hexes.String(), gutter.String()))
	}

	return sb.String()
}
