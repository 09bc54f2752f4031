package vm

import "fmt"

// Opcode represents a BFF instruction byte.
//
// BFF instructions are ordinary byte values; the remaining 246 byte values
// are inert and execute as no-ops. Because instructions live in the same
// space as data, any tape is a valid program.
type Opcode byte

const (
	OpHead0Dec Opcode = '<' // 0x3C - head0--
	OpHead0Inc Opcode = '>' // 0x3E - head0++
	OpHead1Dec Opcode = '{' // 0x7B - head1--
	OpHead1Inc Opcode = '}' // 0x7D - head1++
	OpDec      Opcode = '-' // 0x2D - tape[head0]--
	OpInc      Opcode = '+' // 0x2B - tape[head0]++
	OpCopyTo1  Opcode = '.' // 0x2E - tape[head1] = tape[head0]
	OpCopyTo0  Opcode = ',' // 0x2C - tape[head0] = tape[head1]
	OpLoop     Opcode = '[' // 0x5B - if tape[head0]==0, jump past matching ]
	OpLoopEnd  Opcode = ']' // 0x5D - if tape[head0]!=0, jump past matching [
)

// AllOpcodes returns the recognized instruction set in a fixed order.
func AllOpcodes() []Opcode {
	return []Opcode{
		OpHead0Dec, OpHead0Inc,
		OpHead1Dec, OpHead1Inc,
		OpDec, OpInc,
		OpCopyTo1, OpCopyTo0,
		OpLoop, OpLoopEnd,
	}
}

// String returns a human-readable name for the opcode.
func (op Opcode) String() string {
	switch op {
	case OpHead0Dec:
		return "HEAD0_DEC"
	case OpHead0Inc:
		return "HEAD0_INC"
	case OpHead1Dec:
		return "HEAD1_DEC"
	case OpHead1Inc:
		return "HEAD1_INC"
	case OpDec:
		return "DEC"
	case OpInc:
		return "INC"
	case OpCopyTo1:
		return "COPY_TO_H1"
	case OpCopyTo0:
		return "COPY_TO_H0"
	case OpLoop:
		return "LOOP"
	case OpLoopEnd:
		return "LOOP_END"
	default:
		return fmt.Sprintf("DB(0x%02X)", byte(op))
	}
}

// IsInstruction reports whether b is one of the 10 recognized opcodes.
func IsInstruction(b byte) bool {
	switch Opcode(b) {
	case OpHead0Dec, OpHead0Inc, OpHead1Dec, OpHead1Inc,
		OpDec, OpInc, OpCopyTo1, OpCopyTo0, OpLoop, OpLoopEnd:
		return true
	default:
		return false
	}
}

// HasInstructions reports whether any byte in tape is a recognized opcode.
// A tape with none is never stepped.
func HasInstructions(tape []byte) bool {
	for _, b := range tape {
		if IsInstruction(b) {
			return true
		}
	}
	return false
}
