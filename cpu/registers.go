package cpu

// Registers holds the programmer-visible state.
// A7 is not stored in A: it resolves to SSP or USP depending on the
// supervisor bit of SR at the time of access.
type Registers struct {
	// D is for data registers.
	D [8]uint32
	// A is for address registers A0-A6.
	A [7]uint32
	// SSP is the supervisor stack pointer.
	SSP uint32
	// USP is the user stack pointer.
	USP uint32
	// PC is the address of the current opcode word.
	PC uint32
	// SR is the status register.
	SR uint16
}

// Supervisor returns true if the supervisor bit is set.
func (r *Registers) Supervisor() bool {
	return r.SR&SRS != 0
}

// Addr returns the full address register. Register 7 is the active stack pointer.
func (r *Registers) Addr(reg uint16) uint32 {
	if reg == 7 {
		if r.Supervisor() {
			return r.SSP
		}
		return r.USP
	}
	return r.A[reg]
}

// SetAddr sets the full address register. Register 7 is the active stack pointer.
func (r *Registers) SetAddr(reg uint16, v uint32) {
	if reg == 7 {
		if r.Supervisor() {
			r.SSP = v
		} else {
			r.USP = v
		}
		return
	}
	r.A[reg] = v
}

// ReadD returns the low bits of a data register.
func (r *Registers) ReadD(reg uint16, size Size) uint32 {
	return r.D[reg] & size.Mask()
}

// WriteD replaces the low bits of a data register and keeps the rest.
func (r *Registers) WriteD(reg uint16, size Size, v uint32) {
	m := size.Mask()
	r.D[reg] = r.D[reg]&^m | v&m
}

// ReadA returns the low bits of an address register.
func (r *Registers) ReadA(reg uint16, size Size) uint32 {
	return r.Addr(reg) & size.Mask()
}

// WriteA replaces the low bits of an address register and keeps the rest.
func (r *Registers) WriteA(reg uint16, size Size, v uint32) {
	m := size.Mask()
	r.SetAddr(reg, r.Addr(reg)&^m|v&m)
}

// CCR returns the condition code bits.
func (r *Registers) CCR() uint8 {
	return uint8(r.SR & ccrMask)
}

// SetCCR replaces the condition code bits only.
func (r *Registers) SetCCR(v uint8) {
	r.SR = r.SR&^ccrMask | uint16(v)&ccrMask
}

// Flag returns true if the given SR bit is set.
func (r *Registers) Flag(bit uint16) bool {
	return r.SR&bit != 0
}

func (r *Registers) setFlag(bit uint16, on bool) {
	if on {
		r.SR |= bit
	} else {
		r.SR &^= bit
	}
}
