package cpu

import (
	"iter"
	"maps"
	"slices"
)

// Program is a pre-encoded program image: instructions laid out from
// address zero, and data bytes placed at fixed addresses. Data is applied
// after the code and may overlap it.
type Program struct {
	Code []Instruction
	Data map[uint32][]byte
}

// Codes iterates over the instructions and their addresses.
func (prog *Program) Codes() iter.Seq2[uint32, Instruction] {
	return func(yield func(pc uint32, ins Instruction) bool) {
		var pc uint32
		for _, ins := range prog.Code {
			if !yield(pc, ins) {
				return
			}
			pc += ins.Len()
		}
	}
}

// Binary returns the program image.
func (prog *Program) Binary() (bin []byte) {
	for _, ins := range prog.Codes() {
		bin = append(bin, ins.Encode()...)
	}

	for _, addr := range slices.Sorted(maps.Keys(prog.Data)) {
		data := prog.Data[addr]
		end := int(addr) + len(data)
		if end > len(bin) {
			bin = append(bin, make([]byte, end-len(bin))...)
		}
		copy(bin[addr:], data)
	}

	return
}
