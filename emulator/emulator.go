// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/rvsim/asm"
	"github.com/ezrec/rvsim/cpu"
	"github.com/ezrec/rvsim/device"
	"github.com/ezrec/rvsim/internal"
	"github.com/ezrec/rvsim/mem"
)

const (
	MAX_STEPS       = 500000 // Default tick bound of Run.
	TICKS_PER_FRAME = 1000   // Default ticks of one Frame.
)

var _emulator_defines = map[string]string{
	"MAX_STEPS": fmt.Sprintf("%v", MAX_STEPS),
}

// Emulator state. CPU + bus + memory + DMA + peripherals.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Reference to the currently loaded program.

	Memory   *mem.Memory      // Byte store, DMA and peripherals.
	Bus      *mem.Bus         // Transaction slot between CPU and memory.
	Uart     *device.Uart     // Serial port at UART_BASE.
	Keyboard *device.Keyboard // Keyboard at KEYBOARD_BASE.

	MaxSteps      int                 // Tick bound of Run; zero uses MAX_STEPS.
	TicksPerFrame int                 // Ticks of one Frame; zero uses TICKS_PER_FRAME.
	OnTick        func(emu *Emulator) // Called after every tick.
	OnDmaDone     func(job mem.Job)   // Called when a DMA job completes.

	Exited   bool  // Set once the program exits.
	ExitCode int32 // Exit status of the program.

	ticks   int
	running atomic.Bool
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:      cpu.NewCpu(),
		Program:  &asm.Program{Image: mem.Image{}, Start: mem.TEXT_BASE},
		Memory:   mem.NewMemory(),
		Uart:     device.NewUart(mem.UART_BASE),
		Keyboard: device.NewKeyboard(mem.KEYBOARD_BASE),
	}

	emu.Bus = &mem.Bus{Port: emu.Memory}
	emu.Memory.Map(emu.Uart, emu.Keyboard)
	emu.Memory.Dma.OnDone = emu.dmaDone

	emu.Reset()

	return
}

func (emu *Emulator) dmaDone(job mem.Job) {
	if emu.OnDmaDone != nil {
		emu.OnDmaDone(job)
	}
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		mem.Defines(),
		emu.Cpu.Defines(),
	)
}

// SetOutput directs both system call and UART output to w.
func (emu *Emulator) SetOutput(w io.Writer) {
	emu.Cpu.Stdout = w
	emu.Uart.Output = w
}

// Assemble translates source, with the emulator defines predefined, and
// loads the result.
func (emu *Emulator) Assemble(source io.Reader) (err error) {
	assembler := &asm.Assembler{Verbose: emu.Verbose}
	for name, value := range emu.Defines() {
		assembler.Predefine(name, value)
	}

	prog, err := assembler.Parse(source)
	if err != nil {
		return
	}

	emu.Load(prog)
	return
}

// Load installs a program and resets the emulator.
func (emu *Emulator) Load(prog *asm.Program) {
	emu.Program = prog
	emu.Reset()
}

// Reset reloads the program image and reinitializes every component.
func (emu *Emulator) Reset() {
	emu.Memory.Reset()
	emu.Memory.Load(emu.Program.Image)
	emu.Bus.Reset()
	emu.Cpu.Reset(emu.Program.Start)

	emu.Exited = false
	emu.ExitCode = 0
	emu.ticks = 0
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// LineNo returns the source line of the instruction at the PC.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// Running reports whether Run is active.
func (emu *Emulator) Running() bool {
	return emu.running.Load()
}

// Stop requests that Run return after the current tick. It may be called
// from another goroutine.
func (emu *Emulator) Stop() {
	emu.running.Store(false)
}

// Tick performs a single tick of the emulator: CPU, memory, DMA, then the
// peripherals. The CPU is held while a DMA job runs, unless it is waiting
// on a response. done is set once the program has exited.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Exited {
		done = true
		return
	}

	// Set component verbosity
	emu.Cpu.Verbose = emu.Verbose
	emu.Memory.Verbose = emu.Verbose
	emu.Memory.Dma.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	if !emu.Memory.Dma.Busy() || emu.Cpu.State != cpu.STATE_IDLE {
		err = emu.Cpu.Tick(emu.Bus)
		var exit cpu.ErrExit
		if errors.As(err, &exit) {
			emu.Exited = true
			emu.ExitCode = int32(exit)
			done = true
			err = nil
			if emu.Verbose {
				logrus.WithField("code", emu.ExitCode).Debug("emulator: exit")
			}
			return
		}
		if err != nil {
			return
		}
	}

	emu.Memory.Tick(emu.Bus)
	emu.Memory.Dma.Tick(emu.Memory.Image, emu.Bus.Idle())
	for _, dev := range emu.Memory.Devices() {
		dev.Tick()
	}

	emu.ticks++
	if emu.OnTick != nil {
		emu.OnTick(emu)
	}

	return
}

// Step ticks until one instruction retires, the program exits, or an error
// occurs. It is not bounded by MaxSteps.
func (emu *Emulator) Step() (done bool, err error) {
	retired := emu.Cpu.Retired
	for emu.Cpu.Retired == retired {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
	return
}

// Run ticks until the program exits, an error occurs, Stop is called, or
// MaxSteps ticks have passed.
func (emu *Emulator) Run() (err error) {
	limit := emu.MaxSteps
	if limit <= 0 {
		limit = MAX_STEPS
	}

	emu.running.Store(true)
	defer emu.running.Store(false)

	for steps := 0; emu.running.Load(); steps++ {
		if steps >= limit {
			err = ErrMaxSteps
			return
		}

		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	return
}

// Frame runs one host frame worth of ticks.
func (emu *Emulator) Frame() (done bool, err error) {
	count := emu.TicksPerFrame
	if count <= 0 {
		count = TICKS_PER_FRAME
	}

	for range count {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	return
}
