package cpu8080

// opMovRegReg implements MOV r,r' (0x40-0x7F, excluding 0x76 which is
// HLT) and its (HL)-operand forms MOV r,M / MOV M,r.
func opMovRegReg(dest, src byte) opcodeFunc {
	return func(c *CPU, bus Bus) {
		c.writeReg8(bus, dest, c.readReg8(bus, src))
	}
}

func opMviReg(dest byte) opcodeFunc {
	return func(c *CPU, bus Bus) {
		c.writeReg8(bus, dest, c.fetchByte(bus))
	}
}

func opLxiRP(rp byte) opcodeFunc {
	return func(c *CPU, bus Bus) {
		c.writeRP(rp, c.fetchWord(bus))
	}
}

func opLDA(c *CPU, bus Bus) {
	addr := c.fetchWord(bus)
	c.A = bus.Read(addr)
}

func opSTA(c *CPU, bus Bus) {
	addr := c.fetchWord(bus)
	bus.Write(addr, c.A)
}

func opLHLD(c *CPU, bus Bus) {
	addr := c.fetchWord(bus)
	c.L = bus.Read(addr)
	c.H = bus.Read(addr + 1)
}

func opSHLD(c *CPU, bus Bus) {
	addr := c.fetchWord(bus)
	bus.Write(addr, c.L)
	bus.Write(addr+1, c.H)
}

func opLDAXB(c *CPU, bus Bus) { c.A = bus.Read(c.BC()) }
func opLDAXD(c *CPU, bus Bus) { c.A = bus.Read(c.DE()) }
func opSTAXB(c *CPU, bus Bus) { bus.Write(c.BC(), c.A) }
func opSTAXD(c *CPU, bus Bus) { bus.Write(c.DE(), c.A) }

func opXCHG(c *CPU, bus Bus) {
	c.H, c.D = c.D, c.H
	c.L, c.E = c.E, c.L
}

func opPushRP(rp byte) opcodeFunc {
	return func(c *CPU, bus Bus) {
		c.pushWord(bus, c.readRP(rp))
	}
}

func opPopRP(rp byte) opcodeFunc {
	return func(c *CPU, bus Bus) {
		c.writeRP(rp, c.popWord(bus))
	}
}

func opPushPSW(c *CPU, bus Bus) { c.pushWord(bus, c.PSW()) }
func opPopPSW(c *CPU, bus Bus)  { c.SetPSW(c.popWord(bus)) }

func opXTHL(c *CPU, bus Bus) {
	lo := bus.Read(c.SP)
	hi := bus.Read(c.SP + 1)
	bus.Write(c.SP, c.L)
	bus.Write(c.SP+1, c.H)
	c.L, c.H = lo, hi
}

func opSPHL(c *CPU, bus Bus) { c.SP = c.HL() }
