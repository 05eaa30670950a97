package cabinet

import "testing"

func TestResetHardwiredBits(t *testing.T) {
	m := NewMachine()
	if got := m.In(0); got&0x0E != 0x0E {
		t.Fatalf("port 0 = 0x%02X, want bits 1-3 set", got)
	}
	if got := m.In(1); got&0x08 == 0 {
		t.Fatalf("port 1 = 0x%02X, want bit 3 set", got)
	}
}

// TestShiftRegisterWindow covers property P7 and spec scenario 3: after
// OUT 4,0xAA; OUT 4,0xFF; OUT 2,3; IN 3 must return 0xFD.
func TestShiftRegisterWindow(t *testing.T) {
	m := NewMachine()
	m.Out(4, 0xAA)
	m.Out(4, 0xFF)
	m.Out(2, 3)
	if got := m.In(3); got != 0xFD {
		t.Fatalf("IN 3 = 0x%02X, want 0xFD", got)
	}
}

func TestShiftRegisterAllOffsets(t *testing.T) {
	m := NewMachine()
	const a, b = 0x12, 0x9B
	m.Out(4, a)
	m.Out(4, b)
	for k := byte(0); k <= 7; k++ {
		m.Out(2, k)
		got := m.In(3)
		want := byte((uint16(b)<<k | uint16(a)>>(8-k)))
		if k == 0 {
			want = b
		}
		if got != want {
			t.Fatalf("offset %d: IN 3 = 0x%02X, want 0x%02X", k, got, want)
		}
	}
}

func TestShiftAmountMasksToThreeBits(t *testing.T) {
	m := NewMachine()
	m.Out(2, 0xFF)
	m.Out(4, 0x01)
	m.Out(4, 0x02)
	if got := m.In(3); got != m.shiftAmtWindow() {
		t.Fatalf("IN 3 = 0x%02X, want 0x%02X", got, m.shiftAmtWindow())
	}
}

func (m *Machine) shiftAmtWindow() byte {
	return byte(m.shiftReg >> (8 - m.shiftAmt))
}

func TestSetKeyTogglesLatchBits(t *testing.T) {
	m := NewMachine()
	cases := []struct {
		button ButtonName
		port   byte
		mask   byte
	}{
		{ButtonCoin, 1, 0x01},
		{ButtonP1Start, 1, 0x04},
		{ButtonP2Start, 1, 0x02},
		{ButtonP1Fire, 1, 0x10},
		{ButtonP1Left, 1, 0x20},
		{ButtonP1Right, 1, 0x40},
		{ButtonP2Fire, 2, 0x10},
		{ButtonP2Left, 2, 0x20},
		{ButtonP2Right, 2, 0x40},
	}
	for _, tc := range cases {
		before := m.In(tc.port)
		m.SetKey(tc.button, true)
		if got := m.In(tc.port); got&tc.mask == 0 {
			t.Fatalf("button %v: bit not set after press", tc.button)
		}
		m.SetKey(tc.button, false)
		if got := m.In(tc.port); got != before {
			t.Fatalf("button %v: port %d = 0x%02X after release, want 0x%02X", tc.button, tc.port, got, before)
		}
	}
}

func TestUndocumentedPortsReadZero(t *testing.T) {
	m := NewMachine()
	if got := m.In(7); got != 0 {
		t.Fatalf("In(7) = 0x%02X, want 0", got)
	}
}

func TestWriteROMFaultLatchesAndClearsOnReset(t *testing.T) {
	m := NewMachine()
	m.NotePC(0x0103)
	m.Write(0x0100, 0x42)
	if err := m.Fault(); err == nil {
		t.Fatalf("expected fault after write into ROM region")
	}
	if m.Read(0x0100) == 0x42 {
		t.Fatalf("ROM write should not have taken effect")
	}
	m.Reset()
	if err := m.Fault(); err != nil {
		t.Fatalf("Fault() after Reset = %v, want nil", err)
	}
}

func TestWriteAboveROMSucceedsAndClearsNoFault(t *testing.T) {
	m := NewMachine()
	m.Write(0x2100, 0xAA)
	if err := m.Fault(); err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	if got := m.Read(0x2100); got != 0xAA {
		t.Fatalf("Read = 0x%02X, want 0xAA", got)
	}
}
