package cpu8080

import (
	"fmt"
	"strings"
)

// Line is one decoded instruction, shaped for the step-mode and
// disassembly-mode front ends to print or highlight.
type Line struct {
	Address      uint16
	HexBytes     string
	Mnemonic     string
	Size         int
	IsBranch     bool
	BranchTarget uint16
}

var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var rp16Names = [4]string{"B", "D", "H", "SP"}
var rpPushNames = [4]string{"B", "D", "H", "PSW"}
var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// Disassemble decodes count instructions starting at addr, reading bytes
// through read. It never advances past the 64 KiB address space; a read
// past 0xFFFF simply wraps, matching the CPU's own fetch behavior.
func Disassemble(read func(addr uint16) byte, addr uint16, count int) []Line {
	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		data := [3]byte{read(addr), read(addr + 1), read(addr + 2)}
		size, mnemonic := decodeInstruction(data)

		var hexParts []string
		for j := 0; j < size; j++ {
			hexParts = append(hexParts, fmt.Sprintf("%02X", data[j]))
		}

		line := Line{
			Address:  addr,
			HexBytes: strings.Join(hexParts, " "),
			Mnemonic: mnemonic,
			Size:     size,
		}
		if target, ok := branchTarget(data); ok {
			line.IsBranch = true
			line.BranchTarget = target
		}
		lines = append(lines, line)
		addr += uint16(size)
	}
	return lines
}

func branchTarget(data [3]byte) (uint16, bool) {
	op := data[0]
	switch op {
	case 0xC3, 0xCD,
		0xC2, 0xCA, 0xD2, 0xDA, 0xE2, 0xEA, 0xF2, 0xFA,
		0xC4, 0xCC, 0xD4, 0xDC, 0xE4, 0xEC, 0xF4, 0xFC:
		return uint16(data[2])<<8 | uint16(data[1]), true
	}
	return 0, false
}

// decodeInstruction mirrors the opcode table's dispatch shape: regular
// families decoded by bit-field extraction, everything else by explicit
// opcode lookup. Unused opcodes (per the CPU's NOP-compatibility rule)
// disassemble as "NOP".
func decodeInstruction(data [3]byte) (int, string) {
	op := data[0]

	if op == 0x76 {
		return 1, "HLT"
	}
	if op&0xC0 == 0x40 { // MOV r,r'
		dst := reg8Names[(op>>3)&7]
		src := reg8Names[op&7]
		return 1, fmt.Sprintf("MOV %s,%s", dst, src)
	}
	if op&0xC0 == 0x80 { // ALU r
		return 1, fmt.Sprintf("%s %s", aluMnemonic(op), reg8Names[op&7])
	}

	switch op {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD:
		return 1, "NOP"
	case 0x07:
		return 1, "RLC"
	case 0x0F:
		return 1, "RRC"
	case 0x17:
		return 1, "RAL"
	case 0x1F:
		return 1, "RAR"
	case 0x22:
		return 3, fmt.Sprintf("SHLD $%02X%02X", data[2], data[1])
	case 0x2A:
		return 3, fmt.Sprintf("LHLD $%02X%02X", data[2], data[1])
	case 0x27:
		return 1, "DAA"
	case 0x2F:
		return 1, "CMA"
	case 0x32:
		return 3, fmt.Sprintf("STA $%02X%02X", data[2], data[1])
	case 0x3A:
		return 3, fmt.Sprintf("LDA $%02X%02X", data[2], data[1])
	case 0x37:
		return 1, "STC"
	case 0x3F:
		return 1, "CMC"
	case 0x02:
		return 1, "STAX B"
	case 0x12:
		return 1, "STAX D"
	case 0x0A:
		return 1, "LDAX B"
	case 0x1A:
		return 1, "LDAX D"
	case 0xC3:
		return 3, fmt.Sprintf("JMP $%02X%02X", data[2], data[1])
	case 0xCD:
		return 3, fmt.Sprintf("CALL $%02X%02X", data[2], data[1])
	case 0xC9:
		return 1, "RET"
	case 0xE9:
		return 1, "PCHL"
	case 0xEB:
		return 1, "XCHG"
	case 0xE3:
		return 1, "XTHL"
	case 0xF9:
		return 1, "SPHL"
	case 0xF3:
		return 1, "DI"
	case 0xFB:
		return 1, "EI"
	case 0xDB:
		return 2, fmt.Sprintf("IN $%02X", data[1])
	case 0xD3:
		return 2, fmt.Sprintf("OUT $%02X", data[1])
	}

	if op&0xC7 == 0x06 { // MVI r,d8
		reg := reg8Names[(op>>3)&7]
		return 2, fmt.Sprintf("MVI %s,$%02X", reg, data[1])
	}
	if op&0xCF == 0x01 { // LXI rp,d16
		rp := rp16Names[(op>>4)&3]
		return 3, fmt.Sprintf("LXI %s,$%02X%02X", rp, data[2], data[1])
	}
	if op&0xC7 == 0x04 { // INR r
		return 1, fmt.Sprintf("INR %s", reg8Names[(op>>3)&7])
	}
	if op&0xC7 == 0x05 { // DCR r
		return 1, fmt.Sprintf("DCR %s", reg8Names[(op>>3)&7])
	}
	if op&0xCF == 0x03 { // INX rp
		return 1, fmt.Sprintf("INX %s", rp16Names[(op>>4)&3])
	}
	if op&0xCF == 0x0B { // DCX rp
		return 1, fmt.Sprintf("DCX %s", rp16Names[(op>>4)&3])
	}
	if op&0xCF == 0x09 { // DAD rp
		return 1, fmt.Sprintf("DAD %s", rp16Names[(op>>4)&3])
	}
	if op&0xC7 == 0xC6 { // ALU immediate
		names := [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}
		return 2, fmt.Sprintf("%s $%02X", names[(op>>3)&7], data[1])
	}
	if op&0xC7 == 0xC2 { // Jcc
		return 3, fmt.Sprintf("J%s $%02X%02X", condNames[(op>>3)&7], data[2], data[1])
	}
	if op&0xC7 == 0xC4 { // Ccc
		return 3, fmt.Sprintf("C%s $%02X%02X", condNames[(op>>3)&7], data[2], data[1])
	}
	if op&0xC7 == 0xC0 { // Rcc
		return 1, fmt.Sprintf("R%s", condNames[(op>>3)&7])
	}
	if op&0xC7 == 0xC7 { // RST n
		return 1, fmt.Sprintf("RST %d", (op>>3)&7)
	}
	if op&0xCF == 0xC5 { // PUSH rp
		return 1, fmt.Sprintf("PUSH %s", rpPushNames[(op>>4)&3])
	}
	if op&0xCF == 0xC1 { // POP rp
		return 1, fmt.Sprintf("POP %s", rpPushNames[(op>>4)&3])
	}

	return 1, fmt.Sprintf("DB $%02X", op)
}

func aluMnemonic(op byte) string {
	names := [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
	return names[(op>>3)&7]
}
