package cpu

// RegisterFile holds the general purpose registers. Arithmetic wraps as
// two's complement 32-bit integers.
type RegisterFile [REG_COUNT]int32

// Get returns the value of a register.
func (rf *RegisterFile) Get(reg CodeReg) (value int32, err error) {
	if !reg.Valid() {
		err = ErrRegister(reg)
		return
	}

	value = rf[reg]
	return
}

// Set stores a value in a register.
func (rf *RegisterFile) Set(reg CodeReg, value int32) (err error) {
	if !reg.Valid() {
		err = ErrRegister(reg)
		return
	}

	rf[reg] = value
	return
}

// Inc adds one to a register, wrapping at the int32 limit.
func (rf *RegisterFile) Inc(reg CodeReg) (err error) {
	value, err := rf.Get(reg)
	if err != nil {
		return
	}

	return rf.Set(reg, value+1)
}

// Reset zeroes every register.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
}
