// Command invaders is the cabinet front end: it loads a ROM directory,
// then either runs it live, single-steps it from a terminal, or
// disassembles it, grounded on the cobra command wiring in
// cmd/z80opt/main.go.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/otley-arcade/invaders8080/internal/cabinet"
	"github.com/otley-arcade/invaders8080/internal/config"
	"github.com/otley-arcade/invaders8080/internal/cpu8080"
	"github.com/otley-arcade/invaders8080/internal/governor"
	"github.com/otley-arcade/invaders8080/internal/input"
	"github.com/otley-arcade/invaders8080/internal/loader"
	"github.com/otley-arcade/invaders8080/internal/video"
)

var sleepUs int
var logLevel string

func main() {
	rootCmd := &cobra.Command{
		Use:   "invaders [rom-dir]",
		Short: "Intel 8080 Space Invaders cabinet emulator",
	}
	rootCmd.PersistentFlags().IntVar(&sleepUs, "sleep-us", config.DefaultSleepUs(), "microseconds to sleep between governor slices")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info); overrides "+config.LogLevelEnvVar)

	runCmd := &cobra.Command{
		Use:   "run [rom-dir]",
		Short: "run the cabinet with live video and input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args[0])
		},
	}

	stepCmd := &cobra.Command{
		Use:   "step [rom-dir]",
		Short: "single-step the CPU from a terminal REPL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(args[0])
		},
	}

	disasmCmd := &cobra.Command{
		Use:   "disasm [rom-dir]",
		Short: "disassemble the loaded ROM image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisasm(args[0])
		},
	}

	rootCmd.AddCommand(runCmd, stepCmd, disasmCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	level := config.ResolveLogLevel(logLevel)
	prefix := "invaders: "
	if level == "debug" {
		prefix = "invaders[debug]: "
	}
	return log.New(os.Stderr, prefix, log.LstdFlags)
}

func loadMachine(romDir string, logger *log.Logger) (*cpu8080.CPU, *cabinet.Machine, error) {
	rom, err := loader.LoadROM(romDir)
	if err != nil {
		return nil, nil, err
	}
	m := cabinet.NewMachine()
	m.LoadROM(rom)
	cpu := cpu8080.NewCPU()
	logger.Printf("loaded ROM from %s (%d bytes)", romDir, len(rom))
	return cpu, m, nil
}

func runRun(romDir string) error {
	logger := newLogger()
	cpu, machine, err := loadMachine(romDir, logger)
	if err != nil {
		return err
	}

	var out video.Output = video.NewEbitenOutput()
	if p, ok := out.(interface{ SetPollInput(func()) }); ok {
		p.SetPollInput(func() { input.Poll(machine) })
	}
	if err := out.Start(); err != nil {
		return fmt.Errorf("invaders: starting video output: %w", err)
	}
	defer out.Close()

	g := governor.New(cpu, machine, sleepUs, logger)
	for {
		if err := g.RunSlice(time.Now()); err != nil {
			logger.Printf("fault: %v\n%s", err, cpu.Snapshot())
			return err
		}
		if err := out.UpdateFrame(video.Decode(machine.Framebuffer()).Pix); err != nil {
			return err
		}
		if cpu.Halted {
			logger.Println("CPU halted, stopping")
			return nil
		}
		if !out.IsStarted() {
			return nil
		}
	}
}

func runStep(romDir string) error {
	logger := newLogger()
	cpu, machine, err := loadMachine(romDir, logger)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("step mode: blank=1 step, N=N steps, q=quit")
	for {
		lines := disassembleOne(cpu, machine)
		fmt.Printf("PC=0x%04X  %s\n", cpu.PC, lines)
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		text := strings.TrimSpace(scanner.Text())
		switch {
		case text == "q":
			return nil
		case text == "":
			if err := stepN(cpu, machine, 1, logger); err != nil {
				return err
			}
		default:
			n, err := strconv.Atoi(text)
			if err != nil {
				fmt.Printf("invalid input %q\n", text)
				continue
			}
			if err := stepN(cpu, machine, n, logger); err != nil {
				return err
			}
		}
	}
}

func stepN(cpu *cpu8080.CPU, machine *cabinet.Machine, n int, logger *log.Logger) error {
	for i := 0; i < n; i++ {
		machine.NotePC(cpu.PC)
		if _, err := cpu.Step(machine); err != nil {
			logger.Printf("fault: %v\n%s", err, cpu.Snapshot())
			return err
		}
		if cpu.Halted {
			fmt.Println("CPU halted")
			return nil
		}
	}
	return nil
}

func disassembleOne(cpu *cpu8080.CPU, machine *cabinet.Machine) string {
	lines := cpu8080.Disassemble(machine.Read, cpu.PC, 1)
	if len(lines) == 0 {
		return ""
	}
	return fmt.Sprintf("%s  %s", lines[0].HexBytes, lines[0].Mnemonic)
}

func runDisasm(romDir string) error {
	logger := newLogger()
	_, machine, err := loadMachine(romDir, logger)
	if err != nil {
		return err
	}

	for addr := 0; addr < loader.ChunkSize*4; {
		l := cpu8080.Disassemble(machine.Read, uint16(addr), 1)[0]
		branch := ""
		if l.IsBranch {
			branch = fmt.Sprintf("  ; -> 0x%04X", l.BranchTarget)
		}
		fmt.Printf("%04X  %-9s %s%s\n", l.Address, l.HexBytes, l.Mnemonic, branch)
		addr += l.Size
	}
	return nil
}
