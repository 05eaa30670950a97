package cpu8080

import "fmt"

// CPU wraps a Registers state with the dispatch tables needed to execute
// one instruction per Step call. It holds no reference to memory itself;
// all memory and port traffic goes through the Bus passed to Step.
type CPU struct {
	*Registers

	opcodes [256]opcodeFunc
	cycles  [256]int

	// takenBonus is set by conditional CALL/RET handlers when the
	// branch is taken, adding to that instruction's base cycle cost.
	takenBonus int
}

type opcodeFunc func(c *CPU, bus Bus)

// NewCPU returns a power-on CPU with its dispatch tables built.
func NewCPU() *CPU {
	c := &CPU{Registers: NewRegisters()}
	c.initOpcodes()
	c.initCycles()
	return c
}

// Reset restores power-on register state. The dispatch tables are
// immutable after construction and are left untouched.
func (c *CPU) Reset() {
	c.Registers.Reset()
}

// Step decodes and executes exactly one instruction at PC, returning its
// published cycle cost. It returns a non-nil error only when the bus
// reports a fatal fault (currently: a write into the ROM region), in
// which case the instruction has already partially executed and the
// caller must stop driving this CPU.
func (c *CPU) Step(bus Bus) (int, error) {
	c.LastIO = IOExchange{}

	if c.Halted {
		c.Cycles += 4
		return 4, nil
	}

	opcode := c.fetchByte(bus)
	before := c.Cycles
	c.takenBonus = 0
	c.opcodes[opcode](c, bus)
	cost := c.cycles[opcode] + c.takenBonus
	c.Cycles = before + uint64(cost)

	if err := checkFault(bus); err != nil {
		return cost, err
	}
	return cost, nil
}

// RequestInterrupt implements the cabinet's interrupt-acceptance rule:
// if interrupts are enabled, push PC and jump to 8*n, clearing the
// enable latch; otherwise silently drop the request. It must only be
// called between Step calls.
func (c *CPU) RequestInterrupt(bus Bus, n int) {
	if !c.InterruptEnable {
		return
	}
	c.InterruptEnable = false
	c.Halted = false
	c.pushWord(bus, c.PC)
	c.PC = uint16(8 * n)
}

func (c *CPU) fetchByte(bus Bus) byte {
	v := bus.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetchWord(bus Bus) uint16 {
	lo := c.fetchByte(bus)
	hi := c.fetchByte(bus)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) pushWord(bus Bus, v uint16) {
	c.SP -= 2
	bus.Write(c.SP, byte(v))
	bus.Write(c.SP+1, byte(v>>8))
}

func (c *CPU) popWord(bus Bus) uint16 {
	lo := bus.Read(c.SP)
	hi := bus.Read(c.SP + 1)
	c.SP += 2
	return uint16(hi)<<8 | uint16(lo)
}

// register codes as encoded in opcode bit fields: B C D E H L M A.
const (
	regB = 0
	regC = 1
	regD = 2
	regE = 3
	regH = 4
	regL = 5
	regM = 6
	regA = 7
)

func (c *CPU) readReg8(bus Bus, code byte) byte {
	switch code {
	case regB:
		return c.B
	case regC:
		return c.C
	case regD:
		return c.D
	case regE:
		return c.E
	case regH:
		return c.H
	case regL:
		return c.L
	case regM:
		return bus.Read(c.HL())
	case regA:
		return c.A
	}
	panic(fmt.Sprintf("cpu8080: invalid register code %d", code))
}

func (c *CPU) writeReg8(bus Bus, code byte, v byte) {
	switch code {
	case regB:
		c.B = v
	case regC:
		c.C = v
	case regD:
		c.D = v
	case regE:
		c.E = v
	case regH:
		c.H = v
	case regL:
		c.L = v
	case regM:
		bus.Write(c.HL(), v)
	case regA:
		c.A = v
	default:
		panic(fmt.Sprintf("cpu8080: invalid register code %d", code))
	}
}

// register-pair codes for LXI/INX/DCX/DAD (rp field: 00=BC 01=DE 10=HL
// 11=SP) and PUSH/POP (rp field: 00=BC 01=DE 10=HL 11=PSW).
const (
	rpBC = 0
	rpDE = 1
	rpHL = 2
	rpSP = 3
)

func (c *CPU) readRP(code byte) uint16 {
	switch code {
	case rpBC:
		return c.BC()
	case rpDE:
		return c.DE()
	case rpHL:
		return c.HL()
	case rpSP:
		return c.SP
	}
	panic(fmt.Sprintf("cpu8080: invalid register pair code %d", code))
}

func (c *CPU) writeRP(code byte, v uint16) {
	switch code {
	case rpBC:
		c.SetBC(v)
	case rpDE:
		c.SetDE(v)
	case rpHL:
		c.SetHL(v)
	case rpSP:
		c.SP = v
	}
}
