package vm

// cpu.go implements the stack-based CPU: four 16-bit registers, a six-bit
// flag byte, fetch/push/pop helpers and the addressing-mode effective
// address resolvers. The 256-entry opcode dispatch table lives in
// opcodes.go; the 8/16-bit ALU semantics live in alu.go.
//
// Grounded on the register/flag/fetch shape of the teacher's nes/cpu.go
// (Cpu6502 holding Pc/Sp/A/X/Y/Status plus a *Bus, fetch/read/write and
// stackPush/stackPop helpers) generalized from the 6502's 8-bit
// accumulator-plus-index-registers model to this machine's four 16-bit
// registers and explicit stack-machine opcodes.

// Flag bits within CPU.F.
const (
	FlagZ byte = 1 << iota // zero
	FlagC                  // carry
	FlagS                  // sign
	FlagV                  // overflow (reserved, always cleared by current ALU ops)
	FlagH                  // halt
	FlagE                  // interrupts enabled
)

// Reg identifies one of the four 16-bit registers.
type Reg int

const (
	RegA Reg = iota
	RegB
	RegS
	RegI
)

// CPU is the fetch/decode/execute engine. It owns no peripherals directly;
// it reaches memory through mem and peripherals through io, exactly the
// seam spec.md draws between the CPU and the rest of the machine.
type CPU struct {
	A, B, S, I uint16
	F          byte

	mem *Memory
	io  *IOFabric

	// Trace, when non-nil, is called once per executed instruction before
	// it runs, mirroring the teacher's Cpu6502.Logger (nes/cpu.go) debug
	// trace hook.
	Trace func(pc uint16, opcode byte)
}

// NewCPU wires a CPU to its memory and I/O fabric. All registers and
// flags start zeroed per spec.md's initial-state invariant.
func NewCPU(mem *Memory, io *IOFabric) *CPU {
	return &CPU{mem: mem, io: io}
}

// Reg returns a pointer to the named register, for the generic load/
// store/move/push/pop helpers in opcodes.go.
func (c *CPU) Reg(r Reg) *uint16 {
	switch r {
	case RegA:
		return &c.A
	case RegB:
		return &c.B
	case RegS:
		return &c.S
	default:
		return &c.I
	}
}

// Flag reports whether bit is set in the flag register.
func (c *CPU) Flag(bit byte) bool {
	return c.F&bit != 0
}

// SetFlag sets or clears bit in the flag register.
func (c *CPU) SetFlag(bit byte, v bool) {
	if v {
		c.F |= bit
	} else {
		c.F &^= bit
	}
}

// Halted reports whether the halt flag is set. The host frame loop is
// expected to stop calling Execute once this is true.
func (c *CPU) Halted() bool {
	return c.Flag(FlagH)
}

// fetchByte reads the byte at I and advances I, wrapping modulo 2^16.
func (c *CPU) fetchByte() byte {
	v := c.mem.GetByte(c.I)
	c.I++
	return v
}

// fetchShort reads a little-endian 16-bit value starting at I, advancing
// I by two bytes.
func (c *CPU) fetchShort() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(lo) | uint16(hi)<<8
}

// pushByte pre-decrements S then writes v at the new S.
func (c *CPU) pushByte(v byte) {
	c.S--
	c.mem.SetByte(c.S, v)
}

// popByte reads the byte at S then post-increments S.
func (c *CPU) popByte() byte {
	v := c.mem.GetByte(c.S)
	c.S++
	return v
}

// pushShort pushes the high byte then the low byte, so the low byte ends
// up on top of the stack and a matching popShort reconstructs the value
// as lo | (hi << 8).
func (c *CPU) pushShort(v uint16) {
	c.pushByte(byte(v >> 8))
	c.pushByte(byte(v))
}

// popShort reads the low byte (top of stack) then the high byte.
func (c *CPU) popShort() uint16 {
	lo := c.popByte()
	hi := c.popByte()
	return uint16(lo) | uint16(hi)<<8
}

// addrMode computes the effective address for an instruction operand,
// consuming any additional instruction-stream bytes the mode requires.
type addrMode func(c *CPU) uint16

// Addressing modes from spec.md §4.3. Immediate mode is handled directly
// by the load/push callers since it yields a value rather than an address.
var (
	amDirect = func(c *CPU) uint16 { return c.fetchShort() }
	amRegA   = func(c *CPU) uint16 { return c.A }
	amRegB   = func(c *CPU) uint16 { return c.B }
	amIndexA = func(c *CPU) uint16 { return c.A + c.fetchShort() }
	amIndexB = func(c *CPU) uint16 { return c.B + c.fetchShort() }
	amIndirA = func(c *CPU) uint16 { return c.mem.GetShort(c.A + c.fetchShort()) }
	amIndirB = func(c *CPU) uint16 { return c.mem.GetShort(c.B + c.fetchShort()) }
)
