package cpu

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("halted"))
	ErrAddressBounds  = errors.New(f("address out of bounds"))
	ErrRegisterBounds = errors.New(f("register out of bounds"))
	ErrImageSize      = errors.New(f("image larger than memory"))

	// Instruction decode errors
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrTransferInvalid = errors.New(f("transfer mode invalid"))
)

// ErrAddress is a memory access outside of the memory.
type ErrAddress uint32

func (ea ErrAddress) Error() string {
	return f("address 0x%08x out of bounds", uint32(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrAddressBounds
}

// ErrRegister is an access to a register index outside of the register file.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register index %v out of bounds", int(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrRegisterBounds
}

type ErrFlagPolicy string

func (err ErrFlagPolicy) Error() string {
	return f("'%v' is not a flag policy", string(err))
}

// ErrFault reports the instruction that faulted. The cpu state is left as
// it was before the instruction.
type ErrFault struct {
	Pc     uint32 // Address of the instruction header.
	Header byte   // Instruction header, zero if it could not be read.
	Err    error
}

func (err *ErrFault) Error() string {
	return f("pc 0x%08x header 0x%02x: %v", err.Pc, err.Header, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
