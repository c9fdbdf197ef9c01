package cpu

// CodeCmd is the command nibble of an instruction header.
type CodeCmd int

//go:generate go tool stringer -linecomment -type=CodeCmd
const (
	CMD_HALT   = CodeCmd(0) // halt
	CMD_INC    = CodeCmd(1) // inc
	CMD_MOV    = CodeCmd(2) // mov
	CMD_CMP    = CodeCmd(3) // cmp
	CMD_JMP_NE = CodeCmd(4) // jne
)

// CodeTx is the MOV transfer submode, held in the high nibble of a MOV header.
//
// TX_REG_2_MEM and TX_MEM_2_REG keep their historical names, which describe
// the opposite direction of the transfer they perform: TX_REG_2_MEM loads a
// register from memory (MovLoad), and TX_MEM_2_REG stores a register into
// memory (MovStore).
type CodeTx int

//go:generate go tool stringer -linecomment -type=CodeTx
const (
	TX_REG_2_REG = CodeTx(0) // reg2reg
	TX_REG_2_MEM = CodeTx(1) // reg2mem
	TX_MEM_2_REG = CodeTx(2) // mem2reg
	TX_MEM_2_MEM = CodeTx(3) // mem2mem
)

// CodeReg is a register index.
type CodeReg int

//go:generate go tool stringer -linecomment -type=CodeReg
const (
	REG_0 = CodeReg(0) // r0
	REG_1 = CodeReg(1) // r1
	REG_2 = CodeReg(2) // r2
	REG_3 = CodeReg(3) // r3
	REG_4 = CodeReg(4) // r4
	REG_5 = CodeReg(5) // r5
	REG_6 = CodeReg(6) // r6
)

// REG_COUNT is the size of the register file.
const REG_COUNT = 7

// CodeFlagPolicy selects how CMP treats the comparison flag on a mismatch.
type CodeFlagPolicy int

//go:generate go tool stringer -linecomment -type=CodeFlagPolicy
const (
	FLAG_STICKY = CodeFlagPolicy(0) // sticky
	FLAG_CLEAR  = CodeFlagPolicy(1) // clear
)

// Header masks.
const (
	CMD_MASK = 0x0f
	TX_MASK  = 0xf0
	TX_SHIFT = 4
)

// Valid returns true for the five known commands.
func (cmd CodeCmd) Valid() bool {
	return cmd >= CMD_HALT && cmd <= CMD_JMP_NE
}

// Valid returns true for the four known transfer submodes.
func (tx CodeTx) Valid() bool {
	return tx >= TX_REG_2_REG && tx <= TX_MEM_2_MEM
}

// Valid returns true if the register exists.
func (reg CodeReg) Valid() bool {
	return reg >= REG_0 && reg < REG_COUNT
}

// Valid returns true for a known flag policy.
func (policy CodeFlagPolicy) Valid() bool {
	return policy == FLAG_STICKY || policy == FLAG_CLEAR
}

// ParseFlagPolicy returns the policy whose name is str.
func ParseFlagPolicy(str string) (policy CodeFlagPolicy, err error) {
	for _, policy = range []CodeFlagPolicy{FLAG_STICKY, FLAG_CLEAR} {
		if policy.String() == str {
			return
		}
	}

	err = ErrFlagPolicy(str)
	return
}

// DecodeHeader splits an instruction header into its command and transfer
// submode. No validation is done.
func DecodeHeader(header byte) (cmd CodeCmd, tx CodeTx) {
	cmd = CodeCmd(header & CMD_MASK)
	tx = CodeTx((header & TX_MASK) >> TX_SHIFT)
	return
}

// MakeHeader builds an instruction header.
func MakeHeader(cmd CodeCmd, tx CodeTx) byte {
	return (byte(cmd) & CMD_MASK) | ((byte(tx) << TX_SHIFT) & TX_MASK)
}

// CheckHeader verifies that a header names a known instruction.
//
// Only the byte 0x00 halts; a HALT command with a non-zero high nibble is
// invalid. The high nibble of INC, CMP and JMP_NE is ignored.
func CheckHeader(header byte) (err error) {
	cmd, tx := DecodeHeader(header)
	switch {
	case !cmd.Valid():
		err = ErrOpcodeInvalid
	case cmd == CMD_HALT && header != 0:
		err = ErrOpcodeInvalid
	case cmd == CMD_MOV && !tx.Valid():
		err = ErrTransferInvalid
	}

	return
}

// HeaderLen returns the encoded length, in bytes, of the instruction that
// starts with header.
func HeaderLen(header byte) (size uint32, err error) {
	err = CheckHeader(header)
	if err != nil {
		return
	}

	cmd, tx := DecodeHeader(header)
	switch cmd {
	case CMD_HALT:
		size = 1
	case CMD_INC:
		size = 2
	case CMD_CMP:
		size = 6
	case CMD_JMP_NE:
		size = 5
	case CMD_MOV:
		switch tx {
		case TX_REG_2_REG:
			size = 2
		case TX_REG_2_MEM, TX_MEM_2_REG:
			size = 6
		case TX_MEM_2_MEM:
			size = 9
		}
	}

	return
}
