package vm

import "testing"

func TestDisassembleImmediateLoad(t *testing.T) {
	mem := &Memory{}
	mem.SetByte(0, 0x00) // LDAI
	mem.SetByte(1, 0x42)
	mem.SetByte(2, 0x00)

	lines := Disassemble(mem, 0, 2)
	if got := lines[0]; got == "" {
		t.Fatalf("no disassembly line for address 0")
	} else if want := "$0000: LDAI $0042"; got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestDisassembleRoundTripsAssembledProgram(t *testing.T) {
	program, err := Assemble("LDAI 0x42\nSTAD 0x10\n")
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	mem := &Memory{}
	for i, b := range program {
		mem.SetByte(uint16(i), b)
	}

	lines := Disassemble(mem, 0, uint16(len(program)-1))
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
}
