package cpu

// setNZ updates the N and Z flags in the SR based on a value and operation size.
func (c *CPU) setNZ(value uint32, size Size) {
	v := value & size.Mask()
	c.setFlag(SRZ, v == 0)
	c.setFlag(SRN, v&size.MSB() != 0)
}

// setFlagsLogical sets N and Z from the result and clears V and C. X is not affected.
func (c *CPU) setFlagsLogical(result uint32, size Size) {
	c.setNZ(result, size)
	c.SR &^= SRV | SRC
}

// setFlagsAdd sets X, N, Z, V and C for dst + src = result.
func (c *CPU) setFlagsAdd(src, dst, result uint32, size Size) {
	msb := size.MSB()
	mask := size.Mask()
	sm := src&msb != 0
	dm := dst&msb != 0
	rm := result&msb != 0

	c.setNZ(result, size)
	c.setFlag(SRV, sm == dm && rm != sm)

	carry := uint64(src&mask)+uint64(dst&mask) > uint64(mask)
	c.setFlag(SRC, carry)
	c.setFlag(SRX, carry)
}

// setFlagsSub sets X, N, Z, V and C for dst - src = result.
func (c *CPU) setFlagsSub(src, dst, result uint32, size Size) {
	c.setFlagsCmp(src, dst, result, size)
	c.setFlag(SRX, c.Flag(SRC))
}

// setFlagsCmp sets N, Z, V and C for dst - src = result. X is not affected.
func (c *CPU) setFlagsCmp(src, dst, result uint32, size Size) {
	msb := size.MSB()
	sm := src&msb != 0
	dm := dst&msb != 0
	rm := result&msb != 0

	c.setNZ(result, size)
	c.setFlag(SRV, sm != dm && rm == sm)
	c.setFlag(SRC, (sm && !dm) || (rm && !dm) || (sm && rm))
}
