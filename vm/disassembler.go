package vm

import (
	"bytes"
	"fmt"
)

// disassembler.go is a supplemental feature: a human-readable walk over
// a memory range, the inverse of the assembler in loader.go. Grounded
// on the teacher's Cpu6502.Disassemble (nes/cpuDisassembler.go), which
// builds a map[uint16]string keyed by instruction address; generalized
// from the 6502's per-opcode addressing-mode switch to a table built
// once, alongside the opcode dispatch table in opcodes.go.

var modeSuffixes = []string{"D", "RA", "RB", "XA", "XB", "YA", "YB"}
var modeOperandLen = []int{2, 0, 0, 2, 2, 2, 2}

var mnemonic [256]string
var operandLen [256]int

func init() {
	for i := range mnemonic {
		mnemonic[i] = "NO"
	}

	op := 0
	put := func(name string, operands int) {
		mnemonic[op] = name
		operandLen[op] = operands
		op++
	}

	for _, r := range []string{"A", "B", "S"} {
		put("LD"+r+"I", 2)
		for i, suf := range modeSuffixes {
			put("LD"+r+suf, modeOperandLen[i])
		}
	}

	for _, r := range []string{"A", "B", "S"} {
		for i, suf := range modeSuffixes {
			put("ST"+r+suf, modeOperandLen[i])
		}
	}

	regs := []string{"A", "B", "S", "I"}
	for _, dst := range regs {
		for _, src := range regs {
			if src == dst {
				continue
			}
			put("MV"+dst+src, 0)
		}
	}

	put("PUBI", 1)
	for i, suf := range modeSuffixes {
		put("PUB"+suf, modeOperandLen[i])
	}
	put("PUSI", 2)
	for i, suf := range modeSuffixes {
		put("PUS"+suf, modeOperandLen[i])
	}
	for _, r := range []string{"A", "B", "S", "I"} {
		put("PU"+r, 0)
	}
	put("PUF", 0)

	for i, suf := range modeSuffixes {
		put("POB"+suf, modeOperandLen[i])
	}
	for i, suf := range modeSuffixes {
		put("POS"+suf, modeOperandLen[i])
	}
	for _, r := range []string{"A", "B", "S", "I"} {
		put("PO"+r, 0)
	}
	put("POF", 0)

	put("DTS", 0)
	put("STS", 0)

	for _, r := range []string{"A", "B", "S"} {
		put("IR"+r, 0)
	}
	for _, r := range []string{"A", "B", "S"} {
		put("DR"+r, 0)
	}

	for _, name := range []string{"ADB", "SUB", "ANB", "ORB", "XRB", "CPB", "IVB", "ICB", "DCB", "RLB", "RRB", "SLB", "SRB", "SAB"} {
		put(name, 0)
	}
	for _, name := range []string{"ADS", "SUS", "ANS", "ORS", "XRS", "CPS", "IVS", "ICS", "DCS", "RLS", "RRS", "SLS", "SRS", "SAS"} {
		put(name, 0)
	}

	for _, name := range []string{"SFZ", "SFC", "SFS", "SFV", "CFZ", "CFC", "CFS", "CFV"} {
		put(name, 0)
	}

	put("EI", 0)
	put("DI", 0)
	put("HT", 0)

	put("JM", 2)
	put("CA", 2)
	put("RT", 0)

	for _, name := range []string{"SIA", "SIB", "SIC", "SID", "SIE", "SIF", "SIG", "SIH"} {
		put(name, 0)
	}

	condSuffixes := []string{"Z", "C", "S", "V", "NZ", "NC", "NS", "NV"}
	for _, s := range condSuffixes {
		put("JM"+s, 2)
	}
	for _, s := range condSuffixes {
		put("CA"+s, 2)
	}
	for _, s := range condSuffixes {
		put("RT"+s, 0)
	}

	put("IPB", 1)
	put("OPB", 1)
	put("IPS", 1)
	put("OPS", 1)
}

// Disassemble walks memory from startAddr to endAddr inclusive, one
// instruction per entry, keyed by the instruction's starting address.
func Disassemble(mem *Memory, startAddr, endAddr uint16) map[uint16]string {
	disassembly := make(map[uint16]string)

	var addr uint32 = uint32(startAddr)
	for addr <= uint32(endAddr) {
		lineAddr := uint16(addr)

		var line bytes.Buffer
		fmt.Fprintf(&line, "$%04X: ", lineAddr)

		opcode := mem.GetByte(uint16(addr))
		addr++

		name := mnemonic[opcode]
		line.WriteString(name)

		n := operandLen[opcode]
		if n == 1 {
			v := mem.GetByte(uint16(addr))
			addr++
			fmt.Fprintf(&line, " #$%02X", v)
		} else if n == 2 {
			v := mem.GetShort(uint16(addr))
			addr += 2
			fmt.Fprintf(&line, " $%04X", v)
		}

		disassembly[lineAddr] = line.String()
	}

	return disassembly
}
