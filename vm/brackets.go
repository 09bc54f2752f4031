package vm

// findMatchingBracket scans from one position past start in the given
// direction (+1 from a '[', -1 from a ']') for the partner bracket,
// tracking nesting depth. The scan stops at the tape edges: unlike head
// movement, bracket matching never wraps around the tape. Reaching either
// edge with depth still open reports no match.
//
// The edge asymmetry matters for simulation outcomes and is deliberate;
// making it toroidal would change which programs self-replicate.
func findMatchingBracket(tape []byte, start, direction int) (int, bool) {
	depth := 1
	pos := start

	var deeper, shallower Opcode
	if direction > 0 {
		deeper, shallower = OpLoop, OpLoopEnd
	} else {
		deeper, shallower = OpLoopEnd, OpLoop
	}

	for {
		pos += direction
		if pos < 0 || pos >= len(tape) {
			return 0, false
		}

		switch Opcode(tape[pos]) {
		case deeper:
			depth++
		case shallower:
			depth--
		}

		if depth == 0 {
			return pos, true
		}
	}
}
