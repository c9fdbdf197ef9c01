package cpu

import (
	"encoding/binary"
	"fmt"
)

// Instruction is a decoded instruction. The concrete types are Halt, Inc,
// Cmp, JmpNe, MovRegReg, MovLoad, MovStore and MovMemMem.
type Instruction interface {
	Cmd() CodeCmd
	// Len is the encoded length in bytes.
	Len() uint32
	// Encode returns the encoded bytes, header first.
	Encode() []byte
	String() string
	instruction()
}

// Halt stops execution.
type Halt struct{}

// Inc adds one to Reg.
type Inc struct {
	Reg CodeReg
}

// Cmp sets the comparison flag if Reg equals Value.
type Cmp struct {
	Reg   CodeReg
	Value int32
}

// JmpNe jumps to Addr while the comparison flag is clear.
type JmpNe struct {
	Addr uint32
}

// MovRegReg copies register Src into register Dst.
type MovRegReg struct {
	Src CodeReg
	Dst CodeReg
}

// MovLoad loads the byte at Addr into Reg, zero extended. It is encoded
// with the TX_REG_2_MEM submode.
type MovLoad struct {
	Reg  CodeReg
	Addr uint32
}

// MovStore stores the low byte of Reg at Addr. It is encoded with the
// TX_MEM_2_REG submode.
type MovStore struct {
	Reg  CodeReg
	Addr uint32
}

// MovMemMem copies the byte at Src to Dst.
type MovMemMem struct {
	Dst uint32
	Src uint32
}

func (Halt) instruction()      {}
func (Inc) instruction()       {}
func (Cmp) instruction()       {}
func (JmpNe) instruction()     {}
func (MovRegReg) instruction() {}
func (MovLoad) instruction()   {}
func (MovStore) instruction()  {}
func (MovMemMem) instruction() {}

func (Halt) Cmd() CodeCmd      { return CMD_HALT }
func (Inc) Cmd() CodeCmd       { return CMD_INC }
func (Cmp) Cmd() CodeCmd       { return CMD_CMP }
func (JmpNe) Cmd() CodeCmd     { return CMD_JMP_NE }
func (MovRegReg) Cmd() CodeCmd { return CMD_MOV }
func (MovLoad) Cmd() CodeCmd   { return CMD_MOV }
func (MovStore) Cmd() CodeCmd  { return CMD_MOV }
func (MovMemMem) Cmd() CodeCmd { return CMD_MOV }

// Tx returns the transfer submode.
func (MovRegReg) Tx() CodeTx { return TX_REG_2_REG }
func (MovLoad) Tx() CodeTx   { return TX_REG_2_MEM }
func (MovStore) Tx() CodeTx  { return TX_MEM_2_REG }
func (MovMemMem) Tx() CodeTx { return TX_MEM_2_MEM }

func (Halt) Len() uint32      { return 1 }
func (Inc) Len() uint32       { return 2 }
func (Cmp) Len() uint32       { return 6 }
func (JmpNe) Len() uint32     { return 5 }
func (MovRegReg) Len() uint32 { return 2 }
func (MovLoad) Len() uint32   { return 6 }
func (MovStore) Len() uint32  { return 6 }
func (MovMemMem) Len() uint32 { return 9 }

func (ins Halt) Encode() []byte {
	return []byte{MakeHeader(CMD_HALT, 0)}
}

func (ins Inc) Encode() []byte {
	return []byte{MakeHeader(CMD_INC, 0), byte(ins.Reg)}
}

func (ins Cmp) Encode() []byte {
	code := []byte{MakeHeader(CMD_CMP, 0), byte(ins.Reg)}
	return binary.LittleEndian.AppendUint32(code, uint32(ins.Value))
}

func (ins JmpNe) Encode() []byte {
	code := []byte{MakeHeader(CMD_JMP_NE, 0)}
	return binary.LittleEndian.AppendUint32(code, ins.Addr)
}

func (ins MovRegReg) Encode() []byte {
	regs := (byte(ins.Src) << 4) | (byte(ins.Dst) & 0xf)
	return []byte{MakeHeader(CMD_MOV, ins.Tx()), regs}
}

func (ins MovLoad) Encode() []byte {
	code := []byte{MakeHeader(CMD_MOV, ins.Tx()), byte(ins.Reg)}
	return binary.LittleEndian.AppendUint32(code, ins.Addr)
}

func (ins MovStore) Encode() []byte {
	code := []byte{MakeHeader(CMD_MOV, ins.Tx()), byte(ins.Reg)}
	return binary.LittleEndian.AppendUint32(code, ins.Addr)
}

func (ins MovMemMem) Encode() []byte {
	code := []byte{MakeHeader(CMD_MOV, ins.Tx())}
	code = binary.LittleEndian.AppendUint32(code, ins.Dst)
	return binary.LittleEndian.AppendUint32(code, ins.Src)
}

func (ins Halt) String() string {
	return ins.Cmd().String()
}

func (ins Inc) String() string {
	return fmt.Sprintf("%v %v", ins.Cmd(), ins.Reg)
}

func (ins Cmp) String() string {
	return fmt.Sprintf("%v %v %d", ins.Cmd(), ins.Reg, ins.Value)
}

func (ins JmpNe) String() string {
	return fmt.Sprintf("%v 0x%08x", ins.Cmd(), ins.Addr)
}

func (ins MovRegReg) String() string {
	return fmt.Sprintf("%v.%v %v %v", ins.Cmd(), ins.Tx(), ins.Src, ins.Dst)
}

func (ins MovLoad) String() string {
	return fmt.Sprintf("%v.%v %v [0x%08x]", ins.Cmd(), ins.Tx(), ins.Reg, ins.Addr)
}

func (ins MovStore) String() string {
	return fmt.Sprintf("%v.%v [0x%08x] %v", ins.Cmd(), ins.Tx(), ins.Addr, ins.Reg)
}

func (ins MovMemMem) String() string {
	return fmt.Sprintf("%v.%v [0x%08x] [0x%08x]", ins.Cmd(), ins.Tx(), ins.Dst, ins.Src)
}

// decodeReg checks a register operand byte.
func decodeReg(operand byte) (reg CodeReg, err error) {
	reg = CodeReg(operand)
	if !reg.Valid() {
		err = ErrRegister(operand)
	}
	return
}

// DecodeCode decodes a complete instruction from code, which must hold at
// least HeaderLen(code[0]) bytes.
func DecodeCode(code []byte) (ins Instruction, err error) {
	if len(code) == 0 {
		err = ErrAddressBounds
		return
	}

	size, err := HeaderLen(code[0])
	if err != nil {
		return
	}
	if uint32(len(code)) < size {
		err = ErrAddress(uint32(len(code)))
		return
	}

	word := func(at int) uint32 {
		return binary.LittleEndian.Uint32(code[at:])
	}

	cmd, tx := DecodeHeader(code[0])
	switch cmd {
	case CMD_HALT:
		ins = Halt{}
	case CMD_INC:
		var reg CodeReg
		reg, err = decodeReg(code[1])
		if err != nil {
			return
		}
		ins = Inc{Reg: reg}
	case CMD_CMP:
		var reg CodeReg
		reg, err = decodeReg(code[1])
		if err != nil {
			return
		}
		ins = Cmp{Reg: reg, Value: int32(word(2))}
	case CMD_JMP_NE:
		ins = JmpNe{Addr: word(1)}
	case CMD_MOV:
		switch tx {
		case TX_REG_2_REG:
			var src, dst CodeReg
			src, err = decodeReg(code[1] >> 4)
			if err != nil {
				return
			}
			dst, err = decodeReg(code[1] & 0xf)
			if err != nil {
				return
			}
			ins = MovRegReg{Src: src, Dst: dst}
		case TX_REG_2_MEM, TX_MEM_2_REG:
			var reg CodeReg
			reg, err = decodeReg(code[1])
			if err != nil {
				return
			}
			if tx == TX_REG_2_MEM {
				ins = MovLoad{Reg: reg, Addr: word(2)}
			} else {
				ins = MovStore{Reg: reg, Addr: word(2)}
			}
		case TX_MEM_2_MEM:
			ins = MovMemMem{Dst: word(1), Src: word(5)}
		}
	}

	return
}

// Decode decodes the instruction whose header is at pc. Operand bytes that
// run past the end of memory are an address fault.
func Decode(mem *Memory, pc uint32) (ins Instruction, err error) {
	header, err := mem.Read(pc)
	if err != nil {
		return
	}

	size, err := HeaderLen(header)
	if err != nil {
		return
	}

	code, err := mem.Slice(pc, size)
	if err != nil {
		return
	}

	return DecodeCode(code)
}
