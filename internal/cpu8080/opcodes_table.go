package cpu8080

// initOpcodes builds the 256-entry dispatch table once per CPU. Regular
// instruction families are filled by looping over their opcode ranges
// (mirroring the bit fields the 8080 encodes them with); everything
// irregular gets an explicit table entry. Unused opcodes decode as NOP,
// which is required for compatibility with the shipped ROM.
func (c *CPU) initOpcodes() {
	for i := range c.opcodes {
		c.opcodes[i] = opNOP
	}

	// MOV r,r' / MOV r,M / MOV M,r (0x40-0x7F, 0x76 is HLT).
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dest := byte(op>>3) & 0x07
		src := byte(op) & 0x07
		c.opcodes[op] = opMovRegReg(dest, src)
	}
	c.opcodes[0x76] = opHLT

	// MVI r,d8.
	mviOpcodes := [8]byte{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for reg, op := range mviOpcodes {
		c.opcodes[op] = opMviReg(byte(reg))
	}

	// LXI rp,d16.
	c.opcodes[0x01] = opLxiRP(rpBC)
	c.opcodes[0x11] = opLxiRP(rpDE)
	c.opcodes[0x21] = opLxiRP(rpHL)
	c.opcodes[0x31] = opLxiRP(rpSP)

	// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r (0x80-0xBF).
	aluFamilies := [8]aluOp{aluADD, aluADC, aluSUB, aluSBB, aluANA, aluXRA, aluORA, aluCMP}
	for i, op := range aluFamilies {
		base := 0x80 + i*8
		for src := 0; src < 8; src++ {
			c.opcodes[base+src] = opALUReg(op, byte(src))
		}
	}

	// ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI.
	aluImmOpcodes := map[byte]aluOp{
		0xC6: aluADD, 0xCE: aluADC, 0xD6: aluSUB, 0xDE: aluSBB,
		0xE6: aluANA, 0xEE: aluXRA, 0xF6: aluORA, 0xFE: aluCMP,
	}
	for op, alu := range aluImmOpcodes {
		c.opcodes[op] = opALUImm(alu)
	}

	// INR r / DCR r.
	inrOpcodes := [8]byte{0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C}
	dcrOpcodes := [8]byte{0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D}
	for reg, op := range inrOpcodes {
		c.opcodes[op] = opInrReg(byte(reg))
	}
	for reg, op := range dcrOpcodes {
		c.opcodes[op] = opDcrReg(byte(reg))
	}

	// INX/DCX/DAD rp.
	c.opcodes[0x03] = opInxRP(rpBC)
	c.opcodes[0x13] = opInxRP(rpDE)
	c.opcodes[0x23] = opInxRP(rpHL)
	c.opcodes[0x33] = opInxRP(rpSP)
	c.opcodes[0x0B] = opDcxRP(rpBC)
	c.opcodes[0x1B] = opDcxRP(rpDE)
	c.opcodes[0x2B] = opDcxRP(rpHL)
	c.opcodes[0x3B] = opDcxRP(rpSP)
	c.opcodes[0x09] = opDadRP(rpBC)
	c.opcodes[0x19] = opDadRP(rpDE)
	c.opcodes[0x29] = opDadRP(rpHL)
	c.opcodes[0x39] = opDadRP(rpSP)

	// Rotates.
	c.opcodes[0x07] = opRLC
	c.opcodes[0x0F] = opRRC
	c.opcodes[0x17] = opRAL
	c.opcodes[0x1F] = opRAR

	// Control flow.
	c.opcodes[0xC3] = opJMP
	c.opcodes[0xCD] = opCALL
	c.opcodes[0xC9] = opRET
	c.opcodes[0xE9] = opPCHL

	jccOpcodes := map[byte]condition{
		0xC2: condNZ, 0xCA: condZ, 0xD2: condNC, 0xDA: condC,
		0xE2: condPO, 0xEA: condPE, 0xF2: condP, 0xFA: condM,
	}
	for op, cc := range jccOpcodes {
		c.opcodes[op] = opJccImm(cc)
	}

	// CALL cc takes 17 cycles when taken vs. 11 when not; the base
	// cycle table below carries the 11, so the bonus is 6.
	cccOpcodes := map[byte]condition{
		0xC4: condNZ, 0xCC: condZ, 0xD4: condNC, 0xDC: condC,
		0xE4: condPO, 0xEC: condPE, 0xF4: condP, 0xFC: condM,
	}
	for op, cc := range cccOpcodes {
		c.opcodes[op] = opCccImm(cc, 6)
	}

	// RET cc takes 11 cycles when taken vs. 5 when not; bonus is 6.
	rccOpcodes := map[byte]condition{
		0xC0: condNZ, 0xC8: condZ, 0xD0: condNC, 0xD8: condC,
		0xE0: condPO, 0xE8: condPE, 0xF0: condP, 0xF8: condM,
	}
	for op, cc := range rccOpcodes {
		c.opcodes[op] = opRccNone(cc, 6)
	}

	rstOpcodes := [8]byte{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF}
	for n, op := range rstOpcodes {
		c.opcodes[op] = opRST(n)
	}

	// Stack / addressing.
	c.opcodes[0xC5] = opPushRP(rpBC)
	c.opcodes[0xD5] = opPushRP(rpDE)
	c.opcodes[0xE5] = opPushRP(rpHL)
	c.opcodes[0xF5] = opPushPSW
	c.opcodes[0xC1] = opPopRP(rpBC)
	c.opcodes[0xD1] = opPopRP(rpDE)
	c.opcodes[0xE1] = opPopRP(rpHL)
	c.opcodes[0xF1] = opPopPSW
	c.opcodes[0xE3] = opXTHL
	c.opcodes[0xF9] = opSPHL

	c.opcodes[0x32] = opSTA
	c.opcodes[0x3A] = opLDA
	c.opcodes[0x22] = opSHLD
	c.opcodes[0x2A] = opLHLD
	c.opcodes[0x02] = opSTAXB
	c.opcodes[0x12] = opSTAXD
	c.opcodes[0x0A] = opLDAXB
	c.opcodes[0x1A] = opLDAXD
	c.opcodes[0xEB] = opXCHG

	// Misc.
	c.opcodes[0x27] = opDAA
	c.opcodes[0x2F] = opCMA
	c.opcodes[0x3F] = opCMC
	c.opcodes[0x37] = opSTC
	c.opcodes[0xF3] = opDI
	c.opcodes[0xFB] = opEI
	c.opcodes[0xDB] = opIN
	c.opcodes[0xD3] = opOUT

	// 0x00/0x08/0x10/0x18/0x20/0x28/0x30/0x38 and the remaining unused
	// opcodes (0xCB/0xD9/0xDD/0xED/0xFD) are left as opNOP by the
	// initial fill above, per spec.md's compatibility requirement.
}

// initCycles builds the base cycle-cost table. Conditional CALL/RET
// carry their non-taken cost here; the taken bonus is added by the
// handler itself (see opCccImm/opRccNone).
func (c *CPU) initCycles() {
	for i := range c.cycles {
		c.cycles[i] = 4
	}

	set := func(cost int, ops ...byte) {
		for _, op := range ops {
			c.cycles[op] = cost
		}
	}

	// MOV r,r' is 5, MOV involving (HL) is 7.
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dest := byte(op>>3) & 0x07
		src := byte(op) & 0x07
		if dest == regM || src == regM {
			c.cycles[op] = 7
		} else {
			c.cycles[op] = 5
		}
	}
	c.cycles[0x76] = 7 // HLT

	set(7, 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x3E) // MVI r,d8
	set(10, 0x36)                                    // MVI M,d8
	set(10, 0x01, 0x11, 0x21, 0x31)                  // LXI rp,d16

	for op := 0x80; op <= 0xBF; op++ {
		if byte(op)&0x07 == regM {
			c.cycles[op] = 7
		} else {
			c.cycles[op] = 4
		}
	}
	set(7, 0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE) // ALU imm

	set(5, 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x3C) // INR r
	set(10, 0x34)                                    // INR M
	set(5, 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x3D) // DCR r
	set(10, 0x35)                                    // DCR M
	set(5, 0x03, 0x13, 0x23, 0x33)                   // INX rp
	set(5, 0x0B, 0x1B, 0x2B, 0x3B)                   // DCX rp
	set(10, 0x09, 0x19, 0x29, 0x39)                  // DAD rp

	set(4, 0x07, 0x0F, 0x17, 0x1F) // rotates

	set(10, 0xC3)                                                 // JMP
	set(10, 0xC2, 0xCA, 0xD2, 0xDA, 0xE2, 0xEA, 0xF2, 0xFA)        // Jcc
	set(17, 0xCD)                                                  // CALL
	set(11, 0xC4, 0xCC, 0xD4, 0xDC, 0xE4, 0xEC, 0xF4, 0xFC)        // Ccc (not taken)
	set(10, 0xC9)                                                  // RET
	set(5, 0xC0, 0xC8, 0xD0, 0xD8, 0xE0, 0xE8, 0xF0, 0xF8)         // Rcc (not taken)
	set(11, 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF)        // RST
	set(5, 0xE9)                                                   // PCHL

	set(11, 0xC5, 0xD5, 0xE5, 0xF5) // PUSH
	set(10, 0xC1, 0xD1, 0xE1, 0xF1) // POP
	set(18, 0xE3)                   // XTHL
	set(5, 0xF9)                    // SPHL

	set(13, 0x32, 0x3A)            // STA/LDA
	set(7, 0x02, 0x12, 0x0A, 0x1A) // STAX/LDAX
	set(16, 0x22, 0x2A)            // SHLD/LHLD
	set(4, 0xEB)                   // XCHG

	set(4, 0x27, 0x2F, 0x3F, 0x37) // DAA/CMA/CMC/STC
	set(4, 0xF3, 0xFB)             // DI/EI
	set(10, 0xDB, 0xD3)            // IN/OUT
}
