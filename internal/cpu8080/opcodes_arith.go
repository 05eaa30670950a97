package cpu8080

// aluOp names the eight arithmetic/logical families sharing the 0x80-0xBF
// register-operand layout and the 0xC6-0xFE immediate layout.
type aluOp int

const (
	aluADD aluOp = iota
	aluADC
	aluSUB
	aluSBB
	aluANA
	aluXRA
	aluORA
	aluCMP
)

func (c *CPU) applyALU(op aluOp, operand byte) {
	switch op {
	case aluADD:
		c.A = c.addByte(c.A, operand, false)
	case aluADC:
		c.A = c.addByte(c.A, operand, c.Flag(FlagCY))
	case aluSUB:
		c.A = c.subByte(c.A, operand, false)
	case aluSBB:
		c.A = c.subByte(c.A, operand, c.Flag(FlagCY))
	case aluANA:
		c.A = c.logicResult(c.A & operand)
	case aluXRA:
		c.A = c.logicResult(c.A ^ operand)
	case aluORA:
		c.A = c.logicResult(c.A | operand)
	case aluCMP:
		c.subByte(c.A, operand, false) // CMP discards the result, keeps flags
	}
}

func opALUReg(op aluOp, src byte) opcodeFunc {
	return func(c *CPU, bus Bus) {
		c.applyALU(op, c.readReg8(bus, src))
	}
}

func opALUImm(op aluOp) opcodeFunc {
	return func(c *CPU, bus Bus) {
		c.applyALU(op, c.fetchByte(bus))
	}
}

func opInrReg(reg byte) opcodeFunc {
	return func(c *CPU, bus Bus) {
		c.writeReg8(bus, reg, c.incByte(c.readReg8(bus, reg)))
	}
}

func opDcrReg(reg byte) opcodeFunc {
	return func(c *CPU, bus Bus) {
		c.writeReg8(bus, reg, c.decByte(c.readReg8(bus, reg)))
	}
}

func opInxRP(rp byte) opcodeFunc {
	return func(c *CPU, bus Bus) { c.writeRP(rp, c.readRP(rp)+1) }
}

func opDcxRP(rp byte) opcodeFunc {
	return func(c *CPU, bus Bus) { c.writeRP(rp, c.readRP(rp)-1) }
}

// opDadRP implements DAD rp: HL += rp in 32-bit width, setting only CY.
func opDadRP(rp byte) opcodeFunc {
	return func(c *CPU, bus Bus) {
		wide := uint32(c.HL()) + uint32(c.readRP(rp))
		c.SetHL(uint16(wide))
		c.SetFlag(FlagCY, wide > 0xFFFF)
	}
}

func opDAA(c *CPU, bus Bus) { c.daa() }

func opCMA(c *CPU, bus Bus) { c.A = ^c.A }

func opCMC(c *CPU, bus Bus) { c.SetFlag(FlagCY, !c.Flag(FlagCY)) }

func opSTC(c *CPU, bus Bus) { c.SetFlag(FlagCY, true) }
