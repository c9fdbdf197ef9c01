package emulator

import (
	"github.com/ezrec/regvm/cpu"
)

// ReferenceProgram counts r0 up from zero, halting once it reaches 10.
//
// The byte at address 19 is both the zero loaded into r0 and the HALT
// that the loop falls through to.
//
// The first instruction is a load from memory, header 0x12
// (TX_REG_2_MEM, which reads memory). Historical images of this program
// start with header 0x22 (TX_MEM_2_REG) instead, which stores r0 into
// address 19; r0 is zero either way, so both images print 10 but are not
// byte identical.
func ReferenceProgram() *cpu.Program {
	return &cpu.Program{
		Code: []cpu.Instruction{
			cpu.MovLoad{Reg: cpu.REG_0, Addr: 19}, // 0x00
			cpu.Inc{Reg: cpu.REG_0},               // 0x06
			cpu.Cmp{Reg: cpu.REG_0, Value: 10},    // 0x08
			cpu.JmpNe{Addr: 0x06},                 // 0x0e
			cpu.Halt{},                            // 0x13
		},
		Data: map[uint32][]byte{
			19: {0},
		},
	}
}
