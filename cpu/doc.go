// Package cpu implements the register machine of the regvm system.
//
// The machine has a flat byte memory (65535 bytes by default) holding both
// code and data, seven signed 32-bit registers (r0-r6), a program counter,
// and a comparison flag. Instructions are a one byte header, with the
// command in the low nibble and the MOV transfer submode in the high
// nibble, followed by little-endian operands:
//
//	halt                      00
//	inc r                     01 r
//	mov.reg2reg a b           02 ab          b = a
//	mov.reg2mem r [addr]      12 r addr32    r = memory[addr]
//	mov.mem2reg [addr] r      22 r addr32    memory[addr] = r
//	mov.mem2mem [dst] [src]   32 dst32 src32
//	cmp r value               03 r value32
//	jne addr                  04 addr32
//
// The reg2mem and mem2reg submode names are historical, and the inverse of
// the transfer they perform.
//
// The comparison flag is set by a matching cmp and, under the default
// FLAG_STICKY policy, never cleared. Every fault leaves the machine as it
// was before the faulting instruction.
package cpu
