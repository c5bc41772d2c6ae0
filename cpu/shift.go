package cpu

import "fmt"

func generateShifts(b *builder) {
	for count := uint16(0); count < 8; count++ {
		for bits := uint16(0); bits < 3; bits++ {
			for ir := uint16(0); ir < 2; ir++ {
				for reg := uint16(0); reg < 8; reg++ {
					op := count<<9 | bits<<6 | ir<<5 | reg
					b.add(OPLSRReg|op, (*CPU).opLSReg)
					b.add(OPLSLReg|op, (*CPU).opLSReg)
				}
			}
		}
	}

	forEachEA(eaMemoryAlterable, func(mode, reg uint16) {
		b.add(OPLSRMem|mode<<3|reg, (*CPU).opLSMem)
		b.add(OPLSLMem|mode<<3|reg, (*CPU).opLSMem)
	})
}

// opLSReg handles LSL and LSR on a data register.
// Format: 1110 <count/reg> <dir> <size> <i/r> 01 <reg>
// The count is 1-8 from the opcode, or Dn modulo 64 when bit 5 is set.
func (c *CPU) opLSReg(opcode uint16) error {
	size := SizeFromBits((opcode >> 6) & 3)
	dy := opcode & 7

	count := uint32(regField(opcode))
	if opcode&0x0020 != 0 {
		count = c.D[count] % 64
	} else if count == 0 {
		count = 8
	}

	left := opcode&0x0100 != 0
	c.WriteD(dy, size, c.shiftLogical(c.ReadD(dy, size), count, size, left))
	return nil
}

// opLSMem handles LSL and LSR of a memory word by one bit.
func (c *CPU) opLSMem(opcode uint16) error {
	mode, reg := eaFields(opcode)
	o, err := c.Resolve(SizeWord, mode, reg)
	if err != nil {
		return fmt.Errorf("LS failed to resolve operand: %w", err)
	}

	left := opcode&0x0100 != 0
	if err := o.Write(c, c.shiftLogical(o.Read(c), 1, SizeWord, left)); err != nil {
		return fmt.Errorf("LS failed to put result: %w", err)
	}
	return nil
}

// shiftLogical shifts v by count bits and sets the flags. C and X receive
// the last bit shifted out; a zero count clears C and leaves X alone.
func (c *CPU) shiftLogical(v, count uint32, size Size, left bool) uint32 {
	bits := size.Bits()
	var result uint32
	var out bool

	switch {
	case count == 0:
		result = v
	case count > bits:
		result = 0
	case left:
		out = v&(1<<(bits-count)) != 0
		result = uint32(uint64(v) << count)
	default:
		out = v&(1<<(count-1)) != 0
		result = v >> count
	}
	result &= size.Mask()

	c.setFlagsLogical(result, size)
	if count > 0 {
		c.setFlag(SRC, out)
		c.setFlag(SRX, out)
	}
	return result
}
