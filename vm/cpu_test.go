package vm

import "testing"

func newTestCPU() *CPU {
	mem := &Memory{}
	io := &IOFabric{}
	return NewCPU(mem, io)
}

func TestFetchByteAdvancesI(t *testing.T) {
	c := newTestCPU()
	c.mem.SetByte(0, 0x11)
	c.mem.SetByte(1, 0x22)

	if got := c.fetchByte(); got != 0x11 {
		t.Errorf("fetchByte() = %#02x, want 0x11", got)
	}
	if c.I != 1 {
		t.Errorf("I = %#04x after fetchByte, want 1", c.I)
	}
	if got := c.fetchByte(); got != 0x22 {
		t.Errorf("fetchByte() = %#02x, want 0x22", got)
	}
}

func TestFetchShortLittleEndian(t *testing.T) {
	c := newTestCPU()
	c.mem.SetByte(0, 0x34)
	c.mem.SetByte(1, 0x12)

	if got := c.fetchShort(); got != 0x1234 {
		t.Errorf("fetchShort() = %#04x, want 0x1234", got)
	}
	if c.I != 2 {
		t.Errorf("I = %#04x after fetchShort, want 2", c.I)
	}
}

func TestPushPopByte(t *testing.T) {
	c := newTestCPU()
	c.S = 0x0100

	c.pushByte(0x42)
	if c.S != 0x00FF {
		t.Errorf("S = %#04x after pushByte, want 0x00FF", c.S)
	}
	if got := c.popByte(); got != 0x42 {
		t.Errorf("popByte() = %#02x, want 0x42", got)
	}
	if c.S != 0x0100 {
		t.Errorf("S = %#04x after popByte, want 0x0100", c.S)
	}
}

func TestPushPopShortRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.S = 0x0100

	c.pushShort(0xBEEF)
	if got := c.popShort(); got != 0xBEEF {
		t.Errorf("popShort() = %#04x, want 0xBEEF", got)
	}
}

func TestAddressingModes(t *testing.T) {
	c := newTestCPU()
	c.A = 0x2000
	c.B = 0x3000
	c.mem.SetShort(0x2010, 0x9999)
	c.mem.SetShort(0x3010, 0x8888)

	tests := []struct {
		name     string
		mode     addrMode
		setup    func()
		wantAddr uint16
	}{
		{"direct", amDirect, func() { c.I = 0; c.mem.SetShort(0, 0x4000) }, 0x4000},
		{"regA", amRegA, func() { c.I = 0 }, 0x2000},
		{"regB", amRegB, func() { c.I = 0 }, 0x3000},
		{"indexA", amIndexA, func() { c.I = 0; c.mem.SetShort(0, 0x0010) }, 0x2010},
		{"indexB", amIndexB, func() { c.I = 0; c.mem.SetShort(0, 0x0010) }, 0x3010},
		{"indirA", amIndirA, func() { c.I = 0; c.mem.SetShort(0, 0x0010) }, 0x9999},
		{"indirB", amIndirB, func() { c.I = 0; c.mem.SetShort(0, 0x0010) }, 0x8888},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			if got := tc.mode(c); got != tc.wantAddr {
				t.Errorf("%s = %#04x, want %#04x", tc.name, got, tc.wantAddr)
			}
		})
	}
}

func TestHaltedAndExecuteNoop(t *testing.T) {
	c := newTestCPU()
	c.SetFlag(FlagH, true)
	c.mem.SetByte(0, 0xFF) // NO opcode, but Execute should no-op before fetching

	startI := c.I
	c.Execute()
	if c.I != startI {
		t.Errorf("Execute() advanced I while halted")
	}
}
