// Package cabinet adapts the generic cpu8080.Bus contract to the Space
// Invaders arcade hardware: the port-mapped input latches, the 16-bit
// bolt-on shift register used for sprite scaling, and the fault
// plumbing that turns a ROM write into a reported error.
package cabinet

import (
	"github.com/otley-arcade/invaders8080/internal/membus"
)

// ButtonName names the discrete cabinet inputs, mapped onto specific bits
// of ports 1 and 2 per the wiring loom documented for this board revision.
type ButtonName int

const (
	ButtonCoin ButtonName = iota
	ButtonP1Start
	ButtonP2Start
	ButtonP1Fire
	ButtonP1Left
	ButtonP1Right
	ButtonP2Fire
	ButtonP2Left
	ButtonP2Right
)

// Machine is the cpu8080.Bus implementation wiring the 8080 core to RAM,
// ROM and the cabinet's I/O latches. It also satisfies cpu8080.Faulter so
// a write into the ROM region surfaces as a Step error.
type Machine struct {
	*membus.Memory

	ports    [8]byte
	shiftReg uint16
	shiftAmt byte

	lastPC uint16
	fault  error
}

// NewMachine returns a machine with power-on port state: the hardwired
// bits on ports 0 and 1 that the cabinet's pull-ups and DIP switches fix
// regardless of player input.
func NewMachine() *Machine {
	m := &Machine{Memory: membus.NewMemory()}
	m.resetPorts()
	return m
}

func (m *Machine) resetPorts() {
	m.ports = [8]byte{}
	// Port 0: bits 1-3 are tied high on this board revision (unused
	// inputs pulled up). Port 1: bit 3 (always-1 per the DIP reading
	// used by the stock ROM) is tied high.
	m.ports[0] = 0x0E
	m.ports[1] = 0x08
}

// Reset restores power-on machine state: RAM/ROM are cleared (the caller
// must reload the ROM image afterward), ports return to their hardwired
// values, and the shift register clears.
func (m *Machine) Reset() {
	m.Memory.Reset()
	m.resetPorts()
	m.shiftReg = 0
	m.shiftAmt = 0
	m.fault = nil
}

// NotePC records the program counter the core is about to execute from,
// so a subsequent ROM-write fault can report where it happened. The
// governor calls this once per Step.
func (m *Machine) NotePC(pc uint16) {
	m.lastPC = pc
	m.Memory.SetPC(pc)
}

// Write implements cpu8080.Bus. A fault from the underlying ROM guard is
// latched rather than returned, since Bus.Write cannot return an error;
// Fault() surfaces it to the caller after Step.
func (m *Machine) Write(addr uint16, value byte) {
	if err := m.Memory.Write(addr, value); err != nil {
		m.fault = err
	}
}

// Fault implements cpu8080.Faulter.
func (m *Machine) Fault() error {
	return m.fault
}

// LastPC returns the program counter most recently noted via NotePC, for
// diagnostic reporting after a fault or HLT.
func (m *Machine) LastPC() uint16 {
	return m.lastPC
}

// SetKey sets or clears the latch bit for a single cabinet control.
func (m *Machine) SetKey(b ButtonName, down bool) {
	port, mask := buttonBit(b)
	if down {
		m.ports[port] |= mask
	} else {
		m.ports[port] &^= mask
	}
}

// buttonBit returns the (port, mask) pair a button is wired to. Bit
// polarity is active-high in this model; the stock ROM reads these
// latches directly with no inversion.
func buttonBit(b ButtonName) (port int, mask byte) {
	switch b {
	case ButtonCoin:
		return 1, 0x01
	case ButtonP2Start:
		return 1, 0x02
	case ButtonP1Start:
		return 1, 0x04
	case ButtonP1Fire:
		return 1, 0x10
	case ButtonP1Left:
		return 1, 0x20
	case ButtonP1Right:
		return 1, 0x40
	case ButtonP2Fire:
		return 2, 0x10
	case ButtonP2Left:
		return 2, 0x20
	case ButtonP2Right:
		return 2, 0x40
	}
	return 0, 0
}

// In implements cpu8080.Bus. Ports 0-2 return their input latches and
// port 3 is the shift-register read: an 8-bit window into the 16-bit
// shift register selected by the offset last latched through OUT 2.
// Every other port reads 0.
func (m *Machine) In(port byte) byte {
	switch port {
	case 0, 1, 2:
		return m.ports[port]
	case 3:
		return byte(m.shiftReg >> (8 - m.shiftAmt))
	default:
		return 0
	}
}

// Out implements cpu8080.Bus. Port 2 latches the shift offset (low 3
// bits only), port 4 shifts a new byte into the high half of the
// register, and ports 3/5/6 latch the cabinet's sound-effect bits in the
// machine's port array. Writes to any other port are ignored.
func (m *Machine) Out(port byte, value byte) {
	switch port {
	case 2:
		m.shiftAmt = value & 0x07
	case 4:
		m.shiftReg = uint16(value)<<8 | m.shiftReg>>8
	case 3, 5, 6:
		m.ports[port] = value
	}
}
