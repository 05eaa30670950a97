// Package governor paces the 8080 interpreter to the cabinet's real-time
// rate: 2 MHz, with the two half-frame RST interrupts the stock ROM
// expects at 60 Hz. It borrows the teacher's Execute-loop shape
// (cpu_z80.go's CPU_Z80.Execute) but trades the teacher's free-running
// "step until told to stop" loop for one slice per call, since the
// cabinet's renderer needs control back between frames.
package governor

import (
	"context"
	"log"
	"time"

	"github.com/otley-arcade/invaders8080/internal/cabinet"
	"github.com/otley-arcade/invaders8080/internal/cpu8080"
)

// CyclesPerHalfFrame is the number of 2 MHz cycles in half of a 60 Hz
// frame (the mid-screen and end-of-screen interrupt boundaries).
const CyclesPerHalfFrame = 16666

// cyclesPerMicrosecond is the 8080's clock rate expressed for the
// wall-clock-to-cycles conversion in RunSlice.
const cyclesPerMicrosecond = 2

// Governor drives one CPU/Machine pair through real-time-paced slices.
type Governor struct {
	cpu     *cpu8080.CPU
	machine *cabinet.Machine
	sleepUs int
	logger  *log.Logger

	lastTS        time.Time
	frameCycles   int
	pendingVector int

	// Instructions tracks total instructions executed, for diagnostics.
	Instructions uint64
}

// New returns a governor ready to run. The first call to RunSlice treats
// now as the baseline timestamp, matching spec.md's "on first call,
// initialize last_ts = now" rule.
func New(cpu *cpu8080.CPU, machine *cabinet.Machine, sleepUs int, logger *log.Logger) *Governor {
	if logger == nil {
		logger = log.Default()
	}
	return &Governor{
		cpu:           cpu,
		machine:       machine,
		sleepUs:       sleepUs,
		logger:        logger,
		pendingVector: 1,
	}
}

// RunSlice executes roughly one real-time slice's worth of cycles,
// firing half-frame interrupts as it crosses CyclesPerHalfFrame
// boundaries, then sleeps for the configured interval before returning.
// It returns the fault error from a ROM write, if any; a nil error with
// cpu.Halted true means the guest executed HLT.
func (g *Governor) RunSlice(now time.Time) error {
	if g.lastTS.IsZero() {
		g.lastTS = now
	}

	cyclesToRun := int(now.Sub(g.lastTS).Microseconds()) * cyclesPerMicrosecond
	ran := 0
	for ran < cyclesToRun {
		if g.cpu.Halted {
			break
		}
		g.machine.NotePC(g.cpu.PC)
		cost, err := g.cpu.Step(g.machine)
		ran += cost
		g.frameCycles += cost
		g.Instructions++

		if err != nil {
			return err
		}

		if g.frameCycles >= CyclesPerHalfFrame {
			g.cpu.RequestInterrupt(g.machine, g.pendingVector)
			if g.pendingVector == 1 {
				g.pendingVector = 2
			} else {
				g.pendingVector = 1
			}
			g.frameCycles -= CyclesPerHalfFrame
		}
	}

	g.lastTS = now
	g.sleep()
	return nil
}

func (g *Governor) sleep() {
	remaining := time.Duration(g.sleepUs) * time.Microsecond
	for remaining > 0 {
		start := time.Now()
		preciseSleep(remaining)
		elapsed := time.Since(start)
		remaining -= elapsed
	}
}

// Run drives RunSlice in a loop until ctx is cancelled or the guest
// halts or faults. It is the goroutine-friendly counterpart to the
// teacher's atomic-bool-gated Execute loop, using context.Context
// instead since the cabinet's renderer lives on a separate goroutine
// from this loop.
func (g *Governor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := g.RunSlice(time.Now()); err != nil {
			return err
		}
		if g.cpu.Halted {
			g.logger.Println("governor: CPU halted, stopping")
			return nil
		}
	}
}
