package governor

import (
	"testing"
	"time"

	"github.com/otley-arcade/invaders8080/internal/cabinet"
	"github.com/otley-arcade/invaders8080/internal/cpu8080"
)

func newTestGovernor(sleepUs int) (*Governor, *cpu8080.CPU, *cabinet.Machine) {
	cpu := cpu8080.NewCPU()
	machine := cabinet.NewMachine()
	g := New(cpu, machine, sleepUs, nil)
	return g, cpu, machine
}

// TestFirstSliceInitializesBaseline matches spec.md's "on first call,
// initialize last_ts = now" rule: no cycles should run before any time
// has elapsed from the governor's perspective.
func TestFirstSliceInitializesBaseline(t *testing.T) {
	g, cpu, machine := newTestGovernor(0)
	machine.LoadROM([]byte{0x00, 0x00, 0x00, 0x00}) // NOPs
	start := time.Now()
	if err := g.RunSlice(start); err != nil {
		t.Fatal(err)
	}
	if cpu.PC != 0 {
		t.Fatalf("PC = %d after first slice, want 0 (no elapsed time to run cycles)", cpu.PC)
	}
}

func TestRunSliceAdvancesCyclesWithElapsedTime(t *testing.T) {
	g, cpu, machine := newTestGovernor(0)
	rom := make([]byte, 16)
	machine.LoadROM(rom) // all NOPs
	start := time.Now()
	g.RunSlice(start)

	later := start.Add(10 * time.Microsecond) // 20 cycles at 2 MHz
	if err := g.RunSlice(later); err != nil {
		t.Fatal(err)
	}
	if cpu.PC == 0 {
		t.Fatal("expected PC to advance once wall-clock time elapsed")
	}
}

func TestHalfFrameInterruptFiresAndAlternates(t *testing.T) {
	g, cpu, machine := newTestGovernor(0)
	rom := make([]byte, 0x2000)
	machine.LoadROM(rom) // all NOPs, never halts
	cpu.InterruptEnable = true
	cpu.SP = 0x2400

	start := time.Now()
	g.RunSlice(start)

	// enough elapsed time to run several half-frames worth of cycles
	elapsed := time.Duration(CyclesPerHalfFrame*3) * time.Microsecond / cyclesPerMicrosecond
	g.RunSlice(start.Add(elapsed))

	if cpu.InterruptEnable {
		t.Fatal("InterruptEnable should be cleared after an interrupt fires")
	}
	// The slice runs 12,500 NOPs (50,000 cycles) and crosses three
	// half-frame boundaries, firing vectors 1, 2, 1, so 2 is next.
	if g.pendingVector != 2 {
		t.Fatalf("pendingVector = %d after three half-frames, want 2", g.pendingVector)
	}
}

func TestROMFaultPropagatesFromRunSlice(t *testing.T) {
	g, _, machine := newTestGovernor(0)
	// MVI A,0x42 ; STA 0x0100
	rom := make([]byte, 0x2000)
	rom[0] = 0x3E
	rom[1] = 0x42
	rom[2] = 0x32
	rom[3] = 0x00
	rom[4] = 0x01
	machine.LoadROM(rom)

	start := time.Now()
	g.RunSlice(start)
	err := g.RunSlice(start.Add(10 * time.Microsecond))
	if err == nil {
		t.Fatal("expected ROM-write fault to propagate from RunSlice")
	}
}
