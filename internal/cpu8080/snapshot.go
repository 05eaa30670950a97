package cpu8080

import "fmt"

// Snapshot is a point-in-time copy of the register file, used to report
// processor state at a fatal fault without holding a live reference to
// the CPU (the teacher's debug_snapshot.go MachineSnapshot, scoped down
// to this cabinet's single core).
type Snapshot struct {
	A, B, C, D, E, H, L byte
	F                   byte
	SP, PC              uint16
	InterruptEnable     bool
	Cycles              uint64
	Halted              bool
}

// Snapshot captures the current register file.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		F:               c.F,
		SP:              c.SP,
		PC:              c.PC,
		InterruptEnable: c.InterruptEnable,
		Cycles:          c.Cycles,
		Halted:          c.Halted,
	}
}

// RestoreSnapshot writes s back into the register file, leaving the
// dispatch tables untouched.
func (c *CPU) RestoreSnapshot(s Snapshot) {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = s.A, s.B, s.C, s.D, s.E, s.H, s.L
	c.F = s.F
	c.SP = s.SP
	c.PC = s.PC
	c.InterruptEnable = s.InterruptEnable
	c.Cycles = s.Cycles
	c.Halted = s.Halted
}

// String renders the snapshot the way a fatal-fault diagnostic prints
// it: one line of register values.
func (s Snapshot) String() string {
	return fmt.Sprintf("PC=%04X SP=%04X A=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X F=%02X IE=%v halted=%v cycles=%d",
		s.PC, s.SP, s.A, s.B, s.C, s.D, s.E, s.H, s.L, s.F, s.InterruptEnable, s.Halted, s.Cycles)
}
