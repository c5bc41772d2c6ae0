package cpu

import "fmt"

func generateNBCD(b *builder) {
	forEachEA(eaDataAlterable, func(mode, reg uint16) {
		b.add(OPNBCD|mode<<3|reg, (*CPU).opNBCD)
	})
}

// opNBCD handles NBCD <ea>: the destination becomes 0 - <ea> - X in packed BCD.
// Z is only cleared, so it accumulates across a multi-byte negation.
func (c *CPU) opNBCD(opcode uint16) error {
	mode, reg := eaFields(opcode)
	o, err := c.Resolve(SizeByte, mode, reg)
	if err != nil {
		return fmt.Errorf("NBCD failed to resolve operand: %w", err)
	}

	src := int(o.Read(c))
	x := 0
	if c.Flag(SRX) {
		x = 1
	}

	res := -(src & 0x0F) - x
	if res < 0 {
		res -= 6
	}
	res -= src & 0xF0
	borrow := res < 0
	if borrow {
		res += 0xA0
	}
	result := uint32(res) & 0xFF

	c.setFlag(SRC, borrow)
	c.setFlag(SRX, borrow)
	if result != 0 {
		c.SR &^= SRZ
	}
	c.setFlag(SRN, result&0x80 != 0)
	c.SR &^= SRV

	if err := o.Write(c, result); err != nil {
		return fmt.Errorf("NBCD failed to put result: %w", err)
	}
	return nil
}
