package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allInstructions = []Instruction{
	Halt{},
	Inc{Reg: REG_4},
	Cmp{Reg: REG_0, Value: 10},
	Cmp{Reg: REG_6, Value: -1},
	JmpNe{Addr: 0x12345678},
	MovRegReg{Src: REG_2, Dst: REG_5},
	MovLoad{Reg: REG_1, Addr: 0x0000ff00},
	MovStore{Reg: REG_3, Addr: 0xcafe},
	MovMemMem{Dst: 0x01020304, Src: 0x0a0b0c0d},
}

func TestInstruction_Encode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ins  Instruction
		code []byte
	}){
		{Halt{}, []byte{0x00}},
		{Inc{Reg: REG_4}, []byte{0x01, 0x04}},
		{Cmp{Reg: REG_0, Value: 10}, []byte{0x03, 0x00, 10, 0, 0, 0}},
		{Cmp{Reg: REG_6, Value: -1}, []byte{0x03, 0x06, 0xff, 0xff, 0xff, 0xff}},
		{JmpNe{Addr: 0x12345678}, []byte{0x04, 0x78, 0x56, 0x34, 0x12}},
		{MovRegReg{Src: REG_2, Dst: REG_5}, []byte{0x02, 0x25}},
		{MovLoad{Reg: REG_1, Addr: 0xff00}, []byte{0x12, 0x01, 0x00, 0xff, 0x00, 0x00}},
		{MovStore{Reg: REG_3, Addr: 0xcafe}, []byte{0x22, 0x03, 0xfe, 0xca, 0x00, 0x00}},
		{MovMemMem{Dst: 0x01020304, Src: 0x0a0b0c0d}, []byte{0x32, 4, 3, 2, 1, 0x0d, 0x0c, 0x0b, 0x0a}},
	}

	for _, entry := range table {
		code := entry.ins.Encode()
		assert.Equal(entry.code, code, entry.ins.String())
		assert.Equal(int(entry.ins.Len()), len(code), entry.ins.String())
	}
}

func TestInstruction_DecodeInverse(t *testing.T) {
	assert := assert.New(t)

	for _, ins := range allInstructions {
		dec, err := DecodeCode(ins.Encode())
		assert.NoError(err, ins.String())
		assert.Equal(ins, dec)
	}
}

func TestInstruction_DecodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code []byte
		err  error
	}){
		{"empty", []byte{}, ErrAddressBounds},
		{"bad_cmd", []byte{0x09}, ErrOpcodeInvalid},
		{"bad_tx", []byte{0x52, 0x00}, ErrTransferInvalid},
		{"inc_reg", []byte{0x01, 0x07}, ErrRegisterBounds},
		{"cmp_reg", []byte{0x03, 0xff, 0, 0, 0, 0}, ErrRegisterBounds},
		{"reg2reg_src", []byte{0x02, 0x70}, ErrRegisterBounds},
		{"reg2reg_dst", []byte{0x02, 0x0f}, ErrRegisterBounds},
		{"load_reg", []byte{0x12, 0x08, 0, 0, 0, 0}, ErrRegisterBounds},
		{"store_reg", []byte{0x22, 0x08, 0, 0, 0, 0}, ErrRegisterBounds},
		{"short", []byte{0x04, 0x00, 0x00}, ErrAddressBounds},
	}

	for _, entry := range table {
		_, err := DecodeCode(entry.code)
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestDecode_Memory(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(8)
	assert.NoError(mem.Load(0, []byte{0x01, 0x02, 0x04, 0x06, 0x00, 0x00}))

	ins, err := Decode(mem, 0)
	assert.NoError(err)
	assert.Equal(Inc{Reg: REG_2}, ins)

	// jne at 2 needs bytes 2..6, which fit.
	ins, err = Decode(mem, 2)
	assert.NoError(err)
	assert.Equal(JmpNe{Addr: 6}, ins)

	// cmp at 7 runs off the end of memory.
	assert.NoError(mem.Write(7, 0x03))
	_, err = Decode(mem, 7)
	assert.Equal(ErrAddress(8), err)

	_, err = Decode(mem, 8)
	assert.Equal(ErrAddress(8), err)
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("halt", Halt{}.String())
	assert.Equal("inc r4", Inc{Reg: REG_4}.String())
	assert.Equal("cmp r0 10", Cmp{Reg: REG_0, Value: 10}.String())
	assert.Equal("jne 0x00000006", JmpNe{Addr: 6}.String())
	assert.Equal("mov.reg2reg r2 r5", MovRegReg{Src: REG_2, Dst: REG_5}.String())
	assert.Equal("mov.reg2mem r0 [0x00000013]", MovLoad{Reg: REG_0, Addr: 19}.String())
	assert.Equal("mov.mem2reg [0x00000013] r0", MovStore{Reg: REG_0, Addr: 19}.String())
	assert.Equal("mov.mem2mem [0x00000001] [0x00000002]", MovMemMem{Dst: 1, Src: 2}.String())
}
