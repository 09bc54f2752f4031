// Package vm implements the BFF virtual machine.
//
// This package contains:
//   - The 10-opcode BFF instruction set and classifier
//   - Bracket matching bounded by tape edges
//   - The two-head, single-tape execution engine
//   - A tape disassembler for inspection tooling
package vm
