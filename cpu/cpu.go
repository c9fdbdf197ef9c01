package cpu

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("regvm.cpu")

var _cpu_defines = map[string]string{
	"REG_COUNT":    fmt.Sprintf("%d", REG_COUNT),
	"CMD_HALT":     fmt.Sprintf("%d", CMD_HALT),
	"CMD_INC":      fmt.Sprintf("%d", CMD_INC),
	"CMD_MOV":      fmt.Sprintf("%d", CMD_MOV),
	"CMD_CMP":      fmt.Sprintf("%d", CMD_CMP),
	"CMD_JMP_NE":   fmt.Sprintf("%d", CMD_JMP_NE),
	"TX_REG_2_REG": fmt.Sprintf("%d", TX_REG_2_REG),
	"TX_REG_2_MEM": fmt.Sprintf("%d", TX_REG_2_MEM),
	"TX_MEM_2_REG": fmt.Sprintf("%d", TX_MEM_2_REG),
	"TX_MEM_2_MEM": fmt.Sprintf("%d", TX_MEM_2_MEM),
}

// Defines for the cpu
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Cpu is the execution context of one virtual machine.
type Cpu struct {
	Verbose    bool           // Set to enable the instruction trace.
	FlagPolicy CodeFlagPolicy // Comparison flag behaviour on CMP mismatch.

	Memory   *Memory      // Code and data.
	Pc       uint32       // Address of the next instruction header.
	Register RegisterFile // Register bank.
	Cmp      bool         // Comparison flag.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with memory of size bytes.
func NewCpu(size uint32) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: NewMemory(size),
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %08x\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "cmp", cpu.Cmp)
	for n, value := range cpu.Register {
		text += fmt.Sprintf("% 5s: %08x (%d)\n", CodeReg(n).String(), uint32(value), value)
	}

	return
}

// Reset the CPU state.
// - Clears the registers and the comparison flag.
// - Sets the program counter to zero.
// - Zeros the tick counter.
// Memory is left alone, so that a loaded image survives.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Infof("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Cmp = false
	cpu.Pc = 0
	cpu.Ticks = 0
}

// Fetch decodes the instruction at the program counter.
func (cpu *Cpu) Fetch() (ins Instruction, err error) {
	return Decode(cpu.Memory, cpu.Pc)
}

// Step fetches and executes a single instruction, returning it.
// ErrHalted is returned, unwrapped, when the instruction is HALT. Any other
// error is an *ErrFault, and the CPU state is unchanged.
func (cpu *Cpu) Step() (ins Instruction, err error) {
	pc := cpu.Pc
	defer func() {
		if err != nil && !errors.Is(err, ErrHalted) {
			header, _ := cpu.Memory.Read(pc)
			err = &ErrFault{Pc: pc, Header: header, Err: err}
		}
	}()

	ins, err = cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(ins)
	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	_, err = cpu.Step()
	return
}

// Execute executes a single decoded instruction at the program counter.
// The instruction takes effect completely or, on error, not at all.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	if cpu.Verbose {
		log.Infof("%08x: %v", cpu.Pc, ins)
	}

	next_pc := cpu.Pc + ins.Len()

	switch ins := ins.(type) {
	case Halt:
		err = ErrHalted
	case Inc:
		err = cpu.Register.Inc(ins.Reg)
	case Cmp:
		var value int32
		value, err = cpu.Register.Get(ins.Reg)
		if err != nil {
			break
		}
		switch {
		case value == ins.Value:
			cpu.Cmp = true
		case cpu.FlagPolicy == FLAG_CLEAR:
			cpu.Cmp = false
		}
	case JmpNe:
		if !cpu.Cmp {
			next_pc = ins.Addr
		}
	case MovRegReg:
		var value int32
		value, err = cpu.Register.Get(ins.Src)
		if err != nil {
			break
		}
		err = cpu.Register.Set(ins.Dst, value)
	case MovLoad:
		if cpu.Verbose {
			log.Infof("%08x: load %032b", cpu.Pc, ins.Addr)
		}
		var value byte
		value, err = cpu.Memory.Read(ins.Addr)
		if err != nil {
			break
		}
		err = cpu.Register.Set(ins.Reg, int32(value))
	case MovStore:
		var value int32
		value, err = cpu.Register.Get(ins.Reg)
		if err != nil {
			break
		}
		err = cpu.Memory.Write(ins.Addr, byte(value))
	case MovMemMem:
		var value byte
		value, err = cpu.Memory.Read(ins.Src)
		if err != nil {
			break
		}
		err = cpu.Memory.Write(ins.Dst, value)
	default:
		err = ErrOpcodeInvalid
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	return
}
