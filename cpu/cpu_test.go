package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// loadCpu returns a cpu with prog loaded at address zero.
func loadCpu(t *testing.T, size uint32, prog *Program) (cpu *Cpu) {
	cpu = NewCpu(size)
	err := cpu.Memory.Load(0, prog.Binary())
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestCpu_Execute(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(32)
	assert.NoError(cpu.Memory.Write(20, 0xfe))

	assert.NoError(cpu.Execute(Inc{Reg: REG_1}))
	assert.Equal(int32(1), cpu.Register[REG_1])
	assert.Equal(uint32(2), cpu.Pc)

	assert.NoError(cpu.Execute(MovRegReg{Src: REG_1, Dst: REG_6}))
	assert.Equal(int32(1), cpu.Register[REG_6])
	assert.Equal(uint32(4), cpu.Pc)

	// Loaded bytes are zero extended.
	assert.NoError(cpu.Execute(MovLoad{Reg: REG_2, Addr: 20}))
	assert.Equal(int32(0xfe), cpu.Register[REG_2])
	assert.Equal(uint32(10), cpu.Pc)

	// Stored registers are truncated to the low byte.
	cpu.Register[REG_3] = 0x1234
	assert.NoError(cpu.Execute(MovStore{Reg: REG_3, Addr: 21}))
	assert.Equal(byte(0x34), cpu.Memory.Data[21])
	assert.Equal(uint32(16), cpu.Pc)

	assert.NoError(cpu.Execute(MovMemMem{Dst: 22, Src: 21}))
	assert.Equal(byte(0x34), cpu.Memory.Data[22])
	assert.Equal(uint32(25), cpu.Pc)

	assert.Equal(5, cpu.Ticks)
}

func TestCpu_Halt(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(4)
	ins, err := cpu.Step()
	assert.Equal(ErrHalted, err)
	assert.Equal(Halt{}, ins)
	assert.Equal(uint32(0), cpu.Pc)
	assert.Equal(0, cpu.Ticks)

	// Halting is idempotent.
	_, err = cpu.Step()
	assert.Equal(ErrHalted, err)
}

func TestCpu_CmpSticky(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(4)
	cpu.Register[REG_0] = 3

	assert.NoError(cpu.Execute(Cmp{Reg: REG_0, Value: 4}))
	assert.False(cpu.Cmp)

	assert.NoError(cpu.Execute(Cmp{Reg: REG_0, Value: 3}))
	assert.True(cpu.Cmp)

	// A mismatch does not clear the flag.
	assert.NoError(cpu.Execute(Cmp{Reg: REG_0, Value: 4}))
	assert.True(cpu.Cmp)

	cpu.Reset()
	assert.False(cpu.Cmp)
}

func TestCpu_CmpClear(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(4)
	cpu.FlagPolicy = FLAG_CLEAR
	cpu.Register[REG_0] = -7

	assert.NoError(cpu.Execute(Cmp{Reg: REG_0, Value: -7}))
	assert.True(cpu.Cmp)

	assert.NoError(cpu.Execute(Cmp{Reg: REG_0, Value: 7}))
	assert.False(cpu.Cmp)
}

func TestCpu_JmpNe(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(4)
	cpu.Pc = 0x100

	assert.NoError(cpu.Execute(JmpNe{Addr: 0x40}))
	assert.Equal(uint32(0x40), cpu.Pc)

	cpu.Cmp = true
	assert.NoError(cpu.Execute(JmpNe{Addr: 0x80}))
	assert.Equal(uint32(0x45), cpu.Pc)

	// The flag is not consumed by the jump.
	assert.True(cpu.Cmp)
}

func TestCpu_FaultAtomic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		ins  Instruction
		err  error
	}){
		{"load", MovLoad{Reg: REG_0, Addr: 16}, ErrAddressBounds},
		{"store", MovStore{Reg: REG_0, Addr: 0xffffffff}, ErrAddressBounds},
		{"mem2mem_src", MovMemMem{Dst: 0, Src: 16}, ErrAddressBounds},
		{"mem2mem_dst", MovMemMem{Dst: 16, Src: 0}, ErrAddressBounds},
		{"inc", Inc{Reg: REG_COUNT}, ErrRegisterBounds},
		{"cmp", Cmp{Reg: REG_COUNT, Value: 0}, ErrRegisterBounds},
		{"reg2reg_src", MovRegReg{Src: REG_COUNT, Dst: REG_0}, ErrRegisterBounds},
		{"reg2reg_dst", MovRegReg{Src: REG_0, Dst: REG_COUNT}, ErrRegisterBounds},
	}

	for _, entry := range table {
		cpu := NewCpu(16)
		for n := range cpu.Memory.Data {
			cpu.Memory.Data[n] = byte(n + 1)
		}
		cpu.Register[REG_0] = 42
		cpu.Pc = 4

		mem := append([]byte(nil), cpu.Memory.Data...)
		regs := cpu.Register

		err := cpu.Execute(entry.ins)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Equal(mem, cpu.Memory.Data, entry.name)
		assert.Equal(regs, cpu.Register, entry.name)
		assert.Equal(uint32(4), cpu.Pc, entry.name)
		assert.Equal(0, cpu.Ticks, entry.name)
		assert.False(cpu.Cmp, entry.name)
	}
}

func TestCpu_StepFault(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(8)
	assert.NoError(cpu.Memory.Load(0, []byte{0x01, 0x00, 0x07}))

	_, err := cpu.Step()
	assert.NoError(err)
	assert.Equal(uint32(2), cpu.Pc)

	_, err = cpu.Step()
	assert.ErrorIs(err, ErrOpcodeInvalid)

	var fault *ErrFault
	assert.True(errors.As(err, &fault))
	assert.Equal(uint32(2), fault.Pc)
	assert.Equal(byte(0x07), fault.Header)
	assert.Equal(uint32(2), cpu.Pc)
	assert.Equal(1, cpu.Ticks)

	// Running off the end of memory is an address fault.
	cpu.Pc = 8
	_, err = cpu.Step()
	assert.ErrorIs(err, ErrAddressBounds)
	assert.True(errors.As(err, &fault))
	assert.Equal(uint32(8), fault.Pc)
	assert.Equal(byte(0), fault.Header)
}

func TestCpu_Program(t *testing.T) {
	assert := assert.New(t)

	// Copies r0 through memory into r1, then stops.
	prog := &Program{
		Code: []Instruction{
			Inc{Reg: REG_0},
			Inc{Reg: REG_0},
			MovStore{Reg: REG_0, Addr: 30},
			MovLoad{Reg: REG_1, Addr: 30},
			Halt{},
		},
	}

	cpu := loadCpu(t, 32, prog)

	var trace []Instruction
	for {
		ins, err := cpu.Step()
		trace = append(trace, ins)
		if err != nil {
			assert.Equal(ErrHalted, err)
			break
		}
	}

	assert.Equal(prog.Code, trace)
	assert.Equal(int32(2), cpu.Register[REG_1])
	assert.Equal(byte(2), cpu.Memory.Data[30])
	assert.Equal(4, cpu.Ticks)
}

func TestCpu_String(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(4)
	cpu.Register[REG_6] = -1
	text := cpu.String()
	assert.Contains(text, "   pc: 00000000\n")
	assert.Contains(text, "   r6: ffffffff (-1)\n")
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}

	assert.Equal("7", defines["REG_COUNT"])
	assert.Equal("4", defines["CMD_JMP_NE"])
	assert.Equal("3", defines["TX_MEM_2_MEM"])
}
