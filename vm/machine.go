package vm

import (
	"log"
	"time"
)

// machine.go owns every subsystem and wires them together at
// construction time. This replaces the teacher's Bus (nes/bus.go),
// which played the same connective role for the 6502/PPU/Cartridge
// trio, generalized to this machine's CPU/Disk/Display trio and to the
// file-scope globals the original C keeps per spec.md §9's design note.
type Machine struct {
	Memory  *Memory
	IO      *IOFabric
	CPU     *CPU
	Disk    *Disk
	Display *Display

	// Logger, when non-nil, receives a line per executed instruction,
	// mirroring the teacher's Cpu6502.Logger (nes/cpu.go) debug trace.
	Logger *log.Logger
}

// NewMachine constructs a fully wired Machine: memory and I/O fabric
// first, then the CPU and peripherals bound to them, then each
// peripheral's ports registered into the fabric.
func NewMachine() *Machine {
	mem := &Memory{}
	io := &IOFabric{}
	cpu := NewCPU(mem, io)
	disk := NewDisk(mem)
	display := NewDisplay(mem)

	disk.Attach(io)
	display.Attach(io)

	return &Machine{
		Memory:  mem,
		IO:      io,
		CPU:     cpu,
		Disk:    disk,
		Display: display,
	}
}

// SetLogger attaches a debug logger and wires the CPU's trace hook to
// it, in the style of the teacher's per-run timestamped log file.
func (m *Machine) SetLogger(l *log.Logger) {
	m.Logger = l
	if l == nil {
		m.CPU.Trace = nil
		return
	}
	m.CPU.Trace = func(pc uint16, opcode byte) {
		l.Printf("I=%04X op=%02X", pc, opcode)
	}
}

// LoadProgram copies program at offset 0 of memory, the machine's
// fixed boot location, and resets CPU state so I starts at 0.
func (m *Machine) LoadProgram(program []byte) {
	for i, b := range program {
		if i > 0xFFFF {
			break
		}
		m.Memory.SetByte(uint16(i), b)
	}
	m.CPU.I = 0
	m.CPU.S = 0
	m.CPU.F = 0
}

// Step executes exactly one instruction, unless the machine is halted.
func (m *Machine) Step() {
	m.CPU.Execute()
}

// RunFrame executes up to maxInstructions CPU instructions, ticking the
// disk's DMA engine once per instruction, and stops early if the CPU
// halts. It returns the rendered display surface for the frame.
func (m *Machine) RunFrame(maxInstructions int) []uint32 {
	if m.Logger != nil {
		defer timeTrack(m.Logger, time.Now())
	}

	for i := 0; i < maxInstructions && !m.CPU.Halted(); i++ {
		m.Step()
		m.Disk.Tick()
	}
	return m.Display.Draw()
}
