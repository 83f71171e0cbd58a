package vm

import "testing"

func TestAssembleImmediateLoadAndStore(t *testing.T) {
	src := "LDAI 0x42\nSTAD 0x10\n"
	program, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	want := []byte{0x00, 0x42, 0x00, 0x18, 0x10, 0x00}
	if len(program) != len(want) {
		t.Fatalf("len(program) = %d, want %d", len(program), len(want))
	}
	for i := range want {
		if program[i] != want[i] {
			t.Errorf("program[%d] = %#02x, want %#02x", i, program[i], want[i])
		}
	}
}

func TestAssembleResolvesLabels(t *testing.T) {
	src := "CA target\nHT\ntarget:\nRT\n"
	program, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	// CA (1) + address (2) + HT (1) = 4, so "target" resolves to 4.
	gotAddr := uint16(program[1]) | uint16(program[2])<<8
	if gotAddr != 4 {
		t.Errorf("resolved label address = %#04x, want 4", gotAddr)
	}
}

func TestAssembleByteDirective(t *testing.T) {
	program, err := Assemble(".byte 0x01, 0x02, 3\n")
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	want := []byte{0x01, 0x02, 0x03}
	for i := range want {
		if program[i] != want[i] {
			t.Errorf("program[%d] = %#02x, want %#02x", i, program[i], want[i])
		}
	}
}

func TestAssembleUnknownMnemonic(t *testing.T) {
	if _, err := Assemble("BOGUS\n"); err == nil {
		t.Errorf("expected error for unknown mnemonic, got nil")
	}
}

func TestAssembleMissingOperand(t *testing.T) {
	if _, err := Assemble("LDAI\n"); err == nil {
		t.Errorf("expected error for missing operand, got nil")
	}
}
