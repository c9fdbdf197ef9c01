package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line is one entry of a disassembly listing. If the bytes at Pc do not
// decode, Instruction is nil, Err says why, and Bytes holds the single
// byte that was skipped.
type Line struct {
	Pc          uint32
	Bytes       []byte
	Instruction Instruction
	Err         error
}

func (line Line) String() string {
	var hex []string
	for _, b := range line.Bytes {
		hex = append(hex, fmt.Sprintf("%02x", b))
	}

	text := fmt.Sprintf("%08x: %-26s ", line.Pc, strings.Join(hex, " "))
	if line.Instruction != nil {
		return text + line.Instruction.String()
	}

	return text + fmt.Sprintf(".byte 0x%02x ; %v", line.Bytes[0], line.Err)
}

// Disassemble decodes memory from start up to end, sweeping linearly.
// Data interleaved with code is shown as whatever it decodes to.
func Disassemble(mem *Memory, start uint32, end uint32) iter.Seq[Line] {
	if end > mem.Size() {
		end = mem.Size()
	}

	return func(yield func(line Line) bool) {
		for pc := start; pc < end; {
			ins, err := Decode(mem, pc)
			line := Line{Pc: pc, Instruction: ins, Err: err}
			size := uint32(1)
			if err == nil {
				size = ins.Len()
			}
			line.Bytes, _ = mem.Slice(pc, size)
			if !yield(line) {
				return
			}
			pc += size
		}
	}
}

// Listing writes the disassembly of [start, end) to w.
func Listing(w io.Writer, mem *Memory, start uint32, end uint32) (err error) {
	for line := range Disassemble(mem, start, end) {
		_, err = fmt.Fprintln(w, line.String())
		if err != nil {
			return
		}
	}

	return
}
