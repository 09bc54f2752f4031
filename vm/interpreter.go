package vm

import "fmt"

// ---------------------------------------------------------------------------
// Execution results
// ---------------------------------------------------------------------------

// MaxSteps is the default step budget for one execution (2^13).
const MaxSteps uint32 = 8192

// HaltReason identifies why an execution terminated.
type HaltReason uint32

const (
	// HaltEndOfTape means the instruction pointer walked off the tape.
	HaltEndOfTape HaltReason = 0

	// HaltMaxSteps means the step budget was exhausted.
	HaltMaxSteps HaltReason = 1

	// HaltUnmatchedBracket means a loop bracket had no partner within
	// tape bounds.
	HaltUnmatchedBracket HaltReason = 2

	// HaltNoInstructions means the tape contained no recognized opcodes;
	// detected before any stepping.
	HaltNoInstructions HaltReason = 3
)

// String returns a human-readable name for the halt reason.
func (h HaltReason) String() string {
	switch h {
	case HaltEndOfTape:
		return "end-of-tape"
	case HaltMaxSteps:
		return "max-steps"
	case HaltUnmatchedBracket:
		return "unmatched-bracket"
	case HaltNoInstructions:
		return "no-instructions"
	default:
		return fmt.Sprintf("HaltReason(%d)", uint32(h))
	}
}

// Result holds the statistics of one execution. The tape itself is mutated
// in place; the caller observes mutation through the buffer it passed in.
type Result struct {
	Steps      uint32 // iterations of the step loop
	Head0Count uint32 // < > head0 movements
	Head1Count uint32 // { } head1 movements
	MathCount  uint32 // + - increments/decrements
	CopyCount  uint32 // . , copy operations
	LoopCount  uint32 // ] loop evaluations
	Halt       HaltReason
}

// Params configures one execution.
type Params struct {
	// Head1Start is the initial position of the write head. It may lie
	// outside [0, len(tape)); positions are wrapped at first use.
	Head1Start int

	// MaxSteps is the step budget. A zero budget halts immediately with
	// HaltMaxSteps.
	MaxSteps uint32
}

// ---------------------------------------------------------------------------
// Execution engine
// ---------------------------------------------------------------------------

// Execute runs the BFF program on tape, mutating it in place. head0 starts
// at 0, head1 at the tape midpoint (the seam of a paired tape), with the
// default step budget.
func Execute(tape []byte) Result {
	return ExecuteWithHead1(tape, len(tape)/2)
}

// ExecuteWithHead1 runs the BFF program with head1 starting at the given
// position and the default step budget.
func ExecuteWithHead1(tape []byte, head1Start int) Result {
	return ExecuteWithParams(tape, Params{Head1Start: head1Start, MaxSteps: MaxSteps})
}

// ExecuteWithParams runs the BFF program on tape with explicit parameters.
//
// The instruction pointer starts at 0 and advances by one per step; it never
// wraps, and execution ends when it leaves the tape. Both data heads wrap
// modulo the tape length on every move, so they always reference a valid
// cell. Cell arithmetic wraps modulo 256.
//
// A bracket jump sets the IP to the matched bracket; the step loop's own
// advance then resumes execution at the instruction just past it.
//
// A zero-length tape trivially has no instructions and halts with
// HaltNoInstructions before any index arithmetic.
func ExecuteWithParams(tape []byte, p Params) Result {
	if !HasInstructions(tape) {
		return Result{Halt: HaltNoInstructions}
	}

	size := len(tape)
	wrap := func(h int) int {
		return ((h % size) + size) % size
	}

	var (
		ip         int
		head0      int
		head1      = p.Head1Start
		steps      uint32
		head0Count uint32
		head1Count uint32
		mathCount  uint32
		copyCount  uint32
		loopCount  uint32
	)

	halted := func(reason HaltReason) Result {
		return Result{
			Steps:      steps,
			Head0Count: head0Count,
			Head1Count: head1Count,
			MathCount:  mathCount,
			CopyCount:  copyCount,
			LoopCount:  loopCount,
			Halt:       reason,
		}
	}

	for steps < p.MaxSteps && ip < size {
		steps++

		switch Opcode(tape[ip]) {
		case OpHead0Dec:
			head0 = wrap(head0 - 1)
			head0Count++

		case OpHead0Inc:
			head0 = wrap(head0 + 1)
			head0Count++

		case OpHead1Dec:
			head1 = wrap(head1 - 1)
			head1Count++

		case OpHead1Inc:
			head1 = wrap(head1 + 1)
			head1Count++

		case OpDec:
			tape[wrap(head0)]--
			mathCount++

		case OpInc:
			tape[wrap(head0)]++
			mathCount++

		case OpCopyTo1:
			tape[wrap(head1)] = tape[wrap(head0)]
			copyCount++

		case OpCopyTo0:
			tape[wrap(head0)] = tape[wrap(head1)]
			copyCount++

		case OpLoop:
			if tape[wrap(head0)] == 0 {
				target, ok := findMatchingBracket(tape, ip, +1)
				if !ok {
					return halted(HaltUnmatchedBracket)
				}
				ip = target
			}

		case OpLoopEnd:
			// Loop evaluations are counted here, at the closing
			// bracket, never at '['.
			loopCount++
			if tape[wrap(head0)] != 0 {
				target, ok := findMatchingBracket(tape, ip, -1)
				if !ok {
					return halted(HaltUnmatchedBracket)
				}
				ip = target
			}

		default:
			// Inert byte: the IP still advances.
		}

		ip++
	}

	if steps >= p.MaxSteps {
		return halted(HaltMaxSteps)
	}
	return halted(HaltEndOfTape)
}
