package cpu8080

import "testing"

func TestDisassembleKnownOpcodes(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  string
		size  int
	}{
		{[]byte{0x00}, "NOP", 1},
		{[]byte{0x76}, "HLT", 1},
		{[]byte{0x41}, "MOV B,C", 1},
		{[]byte{0x3E, 0x7F}, "MVI A,$7F", 2},
		{[]byte{0x01, 0x34, 0x12}, "LXI B,$1234", 3},
		{[]byte{0x80}, "ADD B", 1},
		{[]byte{0xC6, 0x01}, "ADI $01", 2},
		{[]byte{0xFE, 0x10}, "CPI $10", 2},
		{[]byte{0xC3, 0x00, 0x20}, "JMP $2000", 3},
		{[]byte{0xCD, 0x00, 0x20}, "CALL $2000", 3},
		{[]byte{0xC9}, "RET", 1},
		{[]byte{0xCA, 0x00, 0x10}, "JZ $1000", 3},
		{[]byte{0xC7}, "RST 0", 1},
		{[]byte{0xC5}, "PUSH B", 1},
		{[]byte{0xF5}, "PUSH PSW", 1},
		{[]byte{0xEB}, "XCHG", 1},
		{[]byte{0xDB, 0x03}, "IN $03", 2},
		{[]byte{0x08}, "NOP", 1},
	}
	for _, tc := range cases {
		mem := make(map[uint16]byte)
		for i, b := range tc.bytes {
			mem[uint16(i)] = b
		}
		read := func(addr uint16) byte { return mem[addr] }
		lines := Disassemble(read, 0, 1)
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if lines[0].Mnemonic != tc.want {
			t.Errorf("bytes %v: mnemonic = %q, want %q", tc.bytes, lines[0].Mnemonic, tc.want)
		}
		if lines[0].Size != tc.size {
			t.Errorf("bytes %v: size = %d, want %d", tc.bytes, lines[0].Size, tc.size)
		}
	}
}

func TestDisassembleBranchTargets(t *testing.T) {
	mem := map[uint16]byte{0: 0xC3, 1: 0x34, 2: 0x12}
	read := func(addr uint16) byte { return mem[addr] }
	lines := Disassemble(read, 0, 1)
	if !lines[0].IsBranch || lines[0].BranchTarget != 0x1234 {
		t.Fatalf("JMP line = %+v, want branch to 0x1234", lines[0])
	}
}

func TestDisassembleAdvancesAddressByInstructionSize(t *testing.T) {
	mem := map[uint16]byte{0: 0x00, 1: 0x3E, 2: 0x42, 3: 0x76}
	read := func(addr uint16) byte { return mem[addr] }
	lines := Disassemble(read, 0, 3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	want := []uint16{0, 1, 3}
	for i, l := range lines {
		if l.Address != want[i] {
			t.Errorf("line %d address = %d, want %d", i, l.Address, want[i])
		}
	}
}
