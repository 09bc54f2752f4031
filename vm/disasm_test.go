package vm

import (
	"strings"
	"testing"
)

func TestDisassembleOpcodes(t *testing.T) {
	out := Disassemble([]byte("+[-]"))

	for _, want := range []string{"INC", "LOOP", "DEC", "LOOP_END"} {
		if !strings.Contains(out, want) {
			t.Errorf("disassembly missing %q:\n%s", want, out)
		}
	}
}

func TestDisassembleFoldsInertRuns(t *testing.T) {
	tape := append([]byte("abc"), '+')
	out := Disassemble(tape)

	if !strings.Contains(out, "DB") {
		t.Errorf("disassembly missing DB row:\n%s", out)
	}
	if !strings.Contains(out, "|abc|") {
		t.Errorf("disassembly missing ASCII gutter:\n%s", out)
	}
	if strings.Count(out, "DB") != 1 {
		t.Errorf("inert run not folded into one row:\n%s", out)
	}
}

func TestDisassembleWithName(t *testing.T) {
	out := DisassembleWithName([]byte("+"), "slot 12")
	if !strings.Contains(out, "; === slot 12 ===") {
		t.Errorf("missing name header:\n%s", out)
	}
}

func TestDisassembleEmpty(t *testing.T) {
	out := Disassemble(nil)
	if !strings.Contains(out, "0 bytes") {
		t.Errorf("empty tape header wrong:\n%s", out)
	}
}
