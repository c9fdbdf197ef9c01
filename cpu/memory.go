package cpu

import (
	"encoding/binary"
)

// Memory is a flat byte store shared by code and data. Multi-byte values
// are little-endian and need no alignment.
type Memory struct {
	Data []byte
}

// NewMemory creates a zeroed memory of size bytes.
func NewMemory(size uint32) (mem *Memory) {
	mem = &Memory{
		Data: make([]byte, size),
	}

	return
}

// Size returns the number of addressable bytes.
func (mem *Memory) Size() uint32 {
	return uint32(len(mem.Data))
}

// Reset zeroes the memory.
func (mem *Memory) Reset() {
	clear(mem.Data)
}

// Slice returns the n bytes starting at addr. The whole range must be
// inside of the memory; the error names the first address that is not.
func (mem *Memory) Slice(addr uint32, n uint32) (data []byte, err error) {
	end := uint64(addr) + uint64(n)
	if end > uint64(len(mem.Data)) {
		bad := addr
		if uint64(addr) < uint64(len(mem.Data)) {
			bad = uint32(len(mem.Data))
		}
		err = ErrAddress(bad)
		return
	}

	data = mem.Data[addr:end]
	return
}

// Read returns the byte at addr.
func (mem *Memory) Read(addr uint32) (value byte, err error) {
	if addr >= mem.Size() {
		err = ErrAddress(addr)
		return
	}

	value = mem.Data[addr]
	return
}

// Write sets the byte at addr.
func (mem *Memory) Write(addr uint32, value byte) (err error) {
	if addr >= mem.Size() {
		err = ErrAddress(addr)
		return
	}

	mem.Data[addr] = value
	return
}

// ReadWord returns the 32-bit little-endian value at addr.
func (mem *Memory) ReadWord(addr uint32) (value uint32, err error) {
	data, err := mem.Slice(addr, 4)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint32(data)
	return
}

// WriteWord stores a 32-bit little-endian value at addr. Nothing is written
// unless all four bytes fit.
func (mem *Memory) WriteWord(addr uint32, value uint32) (err error) {
	data, err := mem.Slice(addr, 4)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint32(data, value)
	return
}

// Load copies image into memory at base.
func (mem *Memory) Load(base uint32, image []byte) (err error) {
	if uint64(base)+uint64(len(image)) > uint64(len(mem.Data)) {
		err = ErrImageSize
		return
	}

	copy(mem.Data[base:], image)
	return
}
