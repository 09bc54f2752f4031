package vm

import (
	"strings"
	"testing"
)

func TestIsInstruction(t *testing.T) {
	for _, op := range AllOpcodes() {
		if !IsInstruction(byte(op)) {
			t.Errorf("IsInstruction(%q) = false, want true", byte(op))
		}
	}

	for _, b := range []byte{0x00, 'a', 'z', '(', ')', 0xFF, ' '} {
		if IsInstruction(b) {
			t.Errorf("IsInstruction(0x%02X) = true, want false", b)
		}
	}
}

func TestOpcodeCount(t *testing.T) {
	if got := len(AllOpcodes()); got != 10 {
		t.Errorf("len(AllOpcodes()) = %d, want 10", got)
	}
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{OpHead0Dec, "HEAD0_DEC"},
		{OpHead0Inc, "HEAD0_INC"},
		{OpHead1Dec, "HEAD1_DEC"},
		{OpHead1Inc, "HEAD1_INC"},
		{OpDec, "DEC"},
		{OpInc, "INC"},
		{OpCopyTo1, "COPY_TO_H1"},
		{OpCopyTo0, "COPY_TO_H0"},
		{OpLoop, "LOOP"},
		{OpLoopEnd, "LOOP_END"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Opcode(%q).String() = %q, want %q", byte(tt.op), got, tt.want)
		}
	}
}

func TestOpcodeStringInert(t *testing.T) {
	got := Opcode(0x61).String()
	if !strings.HasPrefix(got, "DB(") {
		t.Errorf("Opcode(0x61).String() = %q, want DB(...) form", got)
	}
}

func TestHasInstructions(t *testing.T) {
	tests := []struct {
		name string
		tape []byte
		want bool
	}{
		{"mixed", []byte("abc+def"), true},
		{"single bracket", []byte("["), true},
		{"none", []byte("abcdef"), false},
		{"empty", []byte{}, false},
		{"nil", nil, false},
		{"raw bytes", []byte{0x00, 0x01, 0xFE}, false},
	}

	for _, tt := range tests {
		if got := HasInstructions(tt.tape); got != tt.want {
			t.Errorf("%s: HasInstructions = %v, want %v", tt.name, got, tt.want)
		}
	}
}
