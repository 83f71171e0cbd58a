package vm

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// loader.go is a supplemental feature: a minimal line-oriented assembler
// for this machine's own opcode mnemonics, the inverse of
// disassembler.go. It understands one instruction per line, labels
// ("name:" on a line of its own), and two directives (.org, .byte). It is not part of the core;
// cmd/ssvm uses it to let -boot accept a plain-text program instead of
// only raw images.
var mnemonicToOpcode map[string]byte

func init() {
	mnemonicToOpcode = make(map[string]byte, len(mnemonic))
	for op, name := range mnemonic {
		if name == "NO" && op != 0xFF {
			// NO fills every unused opcode (0xB7-0xFF); the entries between
			// the first and the last are skipped, so the name NO ends up
			// assembling to 0xFF.
			if _, exists := mnemonicToOpcode[name]; exists {
				continue
			}
		}
		mnemonicToOpcode[name] = byte(op)
	}
}

// Assemble parses src and returns the assembled program bytes, starting
// at address 0 unless an .org directive moves the write cursor.
//
// Two passes: the first records the address of every label
// ("target:"), the second emits instruction and directive bytes, resolving
// label operands against the addresses recorded in the first pass.
func Assemble(src string) ([]byte, error) {
	lines := splitLines(src)

	labels, err := scanLabels(lines)
	if err != nil {
		return nil, err
	}

	var out [1 << 16]byte
	maxAddr := 0
	addr := 0

	for lineNo, raw := range lines {
		line := stripComment(raw)
		line = strings.TrimSpace(line)
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}

		fields := strings.Fields(line)
		head := fields[0]

		switch {
		case head == ".org":
			v, err := parseOperand(fields[1], labels)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: .org operand", lineNo+1)
			}
			addr = int(v)
			continue

		case head == ".byte":
			for _, tok := range strings.Split(strings.Join(fields[1:], " "), ",") {
				v, err := parseOperand(strings.TrimSpace(tok), labels)
				if err != nil {
					return nil, errors.Wrapf(err, "line %d: .byte operand", lineNo+1)
				}
				out[addr&0xFFFF] = byte(v)
				addr++
			}

		default:
			opcode, ok := mnemonicToOpcode[strings.ToUpper(head)]
			if !ok {
				return nil, errors.Errorf("line %d: unknown mnemonic %q", lineNo+1, head)
			}
			out[addr&0xFFFF] = opcode
			addr++

			n := operandLen[opcode]
			if n == 0 {
				continue
			}
			if len(fields) < 2 {
				return nil, errors.Errorf("line %d: %s requires an operand", lineNo+1, head)
			}
			v, err := parseOperand(fields[1], labels)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: operand", lineNo+1)
			}
			if n == 1 {
				out[addr&0xFFFF] = byte(v)
				addr++
			} else {
				out[addr&0xFFFF] = byte(v)
				out[(addr+1)&0xFFFF] = byte(v >> 8)
				addr += 2
			}
		}

		if addr > maxAddr {
			maxAddr = addr
		}
	}

	return out[:maxAddr], nil
}

func scanLabels(lines []string) (map[string]uint16, error) {
	labels := make(map[string]uint16)
	addr := 0

	for lineNo, raw := range lines {
		line := stripComment(raw)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, ":") {
			name := strings.TrimSuffix(line, ":")
			labels[name] = uint16(addr)
			continue
		}

		fields := strings.Fields(line)
		head := fields[0]

		switch head {
		case ".org":
			v, err := strconv.ParseUint(fields[1], 0, 16)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: .org operand", lineNo+1)
			}
			addr = int(v)
		case ".byte":
			addr += len(strings.Split(strings.Join(fields[1:], " "), ","))
		default:
			opcode, ok := mnemonicToOpcode[strings.ToUpper(head)]
			if !ok {
				return nil, errors.Errorf("line %d: unknown mnemonic %q", lineNo+1, head)
			}
			addr += 1 + operandLen[opcode]
		}
	}

	return labels, nil
}

func parseOperand(tok string, labels map[string]uint16) (uint16, error) {
	if v, ok := labels[tok]; ok {
		return v, nil
	}
	v, err := strconv.ParseUint(tok, 0, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "operand %q", tok)
	}
	return uint16(v), nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

func splitLines(src string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(src))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
