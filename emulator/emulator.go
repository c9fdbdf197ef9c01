// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/ezrec/regvm/cpu"
	"github.com/ezrec/regvm/internal"
)

var log = commonlog.GetLogger("regvm.emulator")

const (
	MEMORY_SIZE = 0xffff // Default memory size.
)

var _emulator_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
}

// Stats are the run statistics of an emulator.
type Stats struct {
	Count   map[cpu.CodeCmd]int // Instructions executed, by command.
	Elapsed time.Duration       // Wall time spent in Run.
}

// Emulator state. CPU + run control.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	MaxSteps int       // If positive, the most instructions a run may execute.
	RunID    uuid.UUID // Identifies the current run in snapshots.
	Stats    Stats     // Statistics since the last reset.
}

// NewEmulator creates a new emulator with size bytes of memory.
func NewEmulator(size uint32) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(size),
	}

	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines
func Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// Reset the cpu state and statistics, and start a new run.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.RunID = uuid.New()
	emu.Stats = Stats{
		Count: make(map[cpu.CodeCmd]int),
	}
}

// Load clears memory, copies the image to address zero, and resets.
// An image that does not fit leaves the emulator untouched.
func (emu *Emulator) Load(image []byte) (err error) {
	if uint64(len(image)) > uint64(emu.Cpu.Memory.Size()) {
		err = cpu.ErrImageSize
		return
	}

	emu.Cpu.Memory.Reset()
	err = emu.Cpu.Memory.Load(0, image)
	if err != nil {
		return
	}

	emu.Reset()

	if emu.Verbose {
		log.Infof("emulator: loaded %d bytes, run %v", len(image), emu.RunID)
	}

	return
}

// LoadProgram loads the binary of a program.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	return emu.Load(prog.Binary())
}

// Ticks returns the instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Result returns the value of r0.
func (emu *Emulator) Result() int32 {
	return emu.Cpu.Register[cpu.REG_0]
}

// Tick performs a single instruction. done is set once the program halts.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	step := emu.Cpu.Ticks
	defer func() {
		if err != nil {
			err = &ErrRuntime{Step: step, Err: err}
		}
	}()

	// A HALT reached on the last allowed step still finishes the run.
	if emu.MaxSteps > 0 && step >= emu.MaxSteps {
		ins, ferr := emu.Cpu.Fetch()
		if ferr != nil || ins.Cmd() != cpu.CMD_HALT {
			err = ErrStepLimit
			return
		}
	}

	ins, err := emu.Cpu.Step()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	emu.Stats.Count[ins.Cmd()]++

	return
}

// Run ticks until the program halts, faults, reaches the step limit, or
// ctx is done.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		emu.Stats.Elapsed += time.Since(start)
		if emu.Verbose {
			log.Infof("emulator: %d ticks in %v", emu.Cpu.Ticks, emu.Stats.Elapsed)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
