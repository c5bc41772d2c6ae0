package cpu

import "fmt"

func generateADD(b *builder) {
	for dn := uint16(0); dn < 8; dn++ {
		for opmode := uint16(0); opmode < 8; opmode++ {
			base := OPADD | dn<<9 | opmode<<6
			var cat eaCategory
			var h Handler
			switch opmode {
			case 0:
				cat, h = eaData, (*CPU).opADD
			case 1, 2:
				cat, h = eaAll, (*CPU).opADD
			case 4, 5, 6:
				// Dn and An destinations belong to ADDX.
				cat, h = eaMemoryAlterable, (*CPU).opADD
			case 3, 7:
				cat, h = eaAll, (*CPU).opADDA
			}
			forEachEA(cat, func(mode, reg uint16) {
				b.add(base|mode<<3|reg, h)
			})
		}
	}
}

func generateQuick(b *builder) {
	for data := uint16(0); data < 8; data++ {
		for bits := uint16(0); bits < 3; bits++ {
			cat := eaAlterable
			if bits == 0 {
				cat = eaDataAlterable
			}
			forEachEA(cat, func(mode, reg uint16) {
				op := data<<9 | bits<<6 | mode<<3 | reg
				b.add(OPADDQ|op, (*CPU).opADDQ)
				b.add(OPSUBQ|op, (*CPU).opSUBQ)
			})
		}
	}
}

func generateEXT(b *builder) {
	for reg := uint16(0); reg < 8; reg++ {
		b.add(OPEXTW|reg, (*CPU).opEXT)
		b.add(OPEXTL|reg, (*CPU).opEXT)
	}
}

// opADD handles the ADD instruction.
// Bit 8 of the opcode selects the direction:
// 0: Dn = Dn + <ea>
// 1: <ea> = <ea> + Dn
func (c *CPU) opADD(opcode uint16) error {
	size := SizeFromOpMode((opcode >> 6) & 7)
	mode, reg := eaFields(opcode)
	dn := regField(opcode)

	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("ADD failed to resolve operand: %w", err)
	}

	src, dst := o.Read(c), c.ReadD(dn, size)
	toEA := opcode&0x0100 != 0
	if toEA {
		src, dst = dst, src
	}

	result := uint32(uint64(dst)+uint64(src)) & size.Mask()
	c.setFlagsAdd(src, dst, result, size)

	if toEA {
		if err := o.Write(c, result); err != nil {
			return fmt.Errorf("ADD failed to put result: %w", err)
		}
		return nil
	}

	c.WriteD(dn, size, result)
	return nil
}

// opADDA handles the ADDA instruction. Word sources are sign-extended and
// the whole address register is updated. Flags are not affected.
func (c *CPU) opADDA(opcode uint16) error {
	size := SizeWord
	if opcode&0x0100 != 0 {
		size = SizeLong
	}
	mode, reg := eaFields(opcode)
	an := regField(opcode)

	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("ADDA failed to resolve source: %w", err)
	}

	src := o.Read(c)
	if size == SizeWord {
		src = signExtend16(uint16(src))
	}
	c.SetAddr(an, c.Addr(an)+src)
	return nil
}

// quickData decodes the 3-bit immediate of ADDQ/SUBQ, where 0 means 8.
func quickData(opcode uint16) uint32 {
	data := uint32(regField(opcode))
	if data == 0 {
		return 8
	}
	return data
}

// opADDQ handles the ADDQ (Add Quick) instruction.
// Format: 0101 <data> 0 <size> <ea>
func (c *CPU) opADDQ(opcode uint16) error {
	return c.quick(opcode, "ADDQ", false)
}

// opSUBQ handles the SUBQ (Subtract Quick) instruction.
// Format: 0101 <data> 1 <size> <ea>
func (c *CPU) opSUBQ(opcode uint16) error {
	return c.quick(opcode, "SUBQ", true)
}

func (c *CPU) quick(opcode uint16, name string, sub bool) error {
	src := quickData(opcode)
	mode, reg := eaFields(opcode)

	// Address registers are always updated in full, without flags.
	if mode == ModeAddr {
		if sub {
			c.SetAddr(reg, c.Addr(reg)-src)
		} else {
			c.SetAddr(reg, c.Addr(reg)+src)
		}
		return nil
	}

	size := SizeFromBits((opcode >> 6) & 3)
	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("%s failed to resolve destination: %w", name, err)
	}

	dst := o.Read(c)
	var result uint32
	if sub {
		result = (dst - src) & size.Mask()
		c.setFlagsSub(src, dst, result, size)
	} else {
		result = uint32(uint64(dst)+uint64(src)) & size.Mask()
		c.setFlagsAdd(src, dst, result, size)
	}

	if err := o.Write(c, result); err != nil {
		return fmt.Errorf("%s failed to put result: %w", name, err)
	}
	return nil
}

// opEXT handles EXT.W (byte to word) and EXT.L (word to long).
func (c *CPU) opEXT(opcode uint16) error {
	reg := opcode & 7
	if opcode&0x0040 == 0 {
		v := signExtend8(uint8(c.D[reg]))
		c.WriteD(reg, SizeWord, v)
		c.setFlagsLogical(v, SizeWord)
		return nil
	}

	v := signExtend16(uint16(c.D[reg]))
	c.D[reg] = v
	c.setFlagsLogical(v, SizeLong)
	return nil
}
