package membus

import "testing"

func TestReadWriteRAM(t *testing.T) {
	m := NewMemory()
	if err := m.Write(0x2000, 0x42); err != nil {
		t.Fatalf("unexpected error writing RAM: %v", err)
	}
	if got := m.Read(0x2000); got != 0x42 {
		t.Fatalf("Read = 0x%02X, want 0x42", got)
	}
}

func TestWriteROMFaults(t *testing.T) {
	m := NewMemory()
	m.SetPC(0x0103)
	for addr := 0; addr <= ROMEnd; addr += 0x317 {
		err := m.Write(uint16(addr), 0x01)
		if err == nil {
			t.Fatalf("Write(0x%04X) should fault", addr)
		}
		var romErr *ROMFaultError
		if !asROMFault(err, &romErr) {
			t.Fatalf("error is not *ROMFaultError: %v", err)
		}
		if romErr.Addr != uint16(addr) {
			t.Fatalf("Addr = 0x%04X, want 0x%04X", romErr.Addr, addr)
		}
		if romErr.PC != 0x0103 {
			t.Fatalf("PC = 0x%04X, want 0x0103", romErr.PC)
		}
	}
}

func TestWriteJustAboveROMSucceeds(t *testing.T) {
	m := NewMemory()
	if err := m.Write(ROMEnd+1, 0xAA); err != nil {
		t.Fatalf("unexpected fault at 0x%04X: %v", ROMEnd+1, err)
	}
}

func TestLoadROMBypassesGuard(t *testing.T) {
	m := NewMemory()
	data := make([]byte, 0x2000)
	data[0] = 0xC3
	m.LoadROM(data)
	if got := m.Read(0); got != 0xC3 {
		t.Fatalf("Read(0) = 0x%02X, want 0xC3", got)
	}
}

func TestFramebufferWindow(t *testing.T) {
	m := NewMemory()
	fb := m.Framebuffer()
	if len(fb) != FramebufferEnd-FramebufferStart+1 {
		t.Fatalf("framebuffer length = %d, want %d", len(fb), FramebufferEnd-FramebufferStart+1)
	}
	fb[0] = 0xFF
	if got := m.Read(FramebufferStart); got != 0xFF {
		t.Fatalf("framebuffer slice is not aliased to memory: got 0x%02X", got)
	}
}

func TestReset(t *testing.T) {
	m := NewMemory()
	_ = m.Write(0x2000, 0xFF)
	m.Reset()
	if got := m.Read(0x2000); got != 0 {
		t.Fatalf("Read after Reset = 0x%02X, want 0", got)
	}
}

func asROMFault(err error, out **ROMFaultError) bool {
	romErr, ok := err.(*ROMFaultError)
	if ok {
		*out = romErr
	}
	return ok
}
