package cpu

import "fmt"

func generateCMP(b *builder) {
	for dn := uint16(0); dn < 8; dn++ {
		for opmode := uint16(0); opmode < 3; opmode++ {
			cat := eaAll
			if opmode == 0 {
				cat = eaData
			}
			forEachEA(cat, func(mode, reg uint16) {
				b.add(OPCMP|dn<<9|opmode<<6|mode<<3|reg, (*CPU).opCMP)
			})
		}
		forEachEA(eaAll, func(mode, reg uint16) {
			b.add(OPCMPA|dn<<9|mode<<3|reg, (*CPU).opCMPA)
			b.add(OPCMPA|0x0100|dn<<9|mode<<3|reg, (*CPU).opCMPA)
		})
		for bits := uint16(0); bits < 3; bits++ {
			for ay := uint16(0); ay < 8; ay++ {
				b.add(OPCMPM|dn<<9|bits<<6|ay, (*CPU).opCMPM)
			}
		}
	}
}

func generateCMPI(b *builder) {
	for bits := uint16(0); bits < 3; bits++ {
		forEachEA(eaDataAlterable, func(mode, reg uint16) {
			b.add(OPCMPI|bits<<6|mode<<3|reg, (*CPU).opCMPI)
		})
	}
}

func generateTST(b *builder) {
	for bits := uint16(0); bits < 3; bits++ {
		forEachEA(eaDataAlterable, func(mode, reg uint16) {
			b.add(OPTST|bits<<6|mode<<3|reg, (*CPU).opTST)
		})
	}
}

// opCMP handles CMP <ea>,Dn. Only the flags are written.
func (c *CPU) opCMP(opcode uint16) error {
	size := SizeFromOpMode((opcode >> 6) & 7)
	mode, reg := eaFields(opcode)

	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("CMP failed to resolve source: %w", err)
	}

	src := o.Read(c)
	dst := c.ReadD(regField(opcode), size)
	c.setFlagsCmp(src, dst, (dst-src)&size.Mask(), size)
	return nil
}

// opCMPA handles CMPA <ea>,An. Word sources are sign-extended and the
// comparison is always made at long size.
func (c *CPU) opCMPA(opcode uint16) error {
	size := SizeWord
	if opcode&0x0100 != 0 {
		size = SizeLong
	}
	mode, reg := eaFields(opcode)

	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("CMPA failed to resolve source: %w", err)
	}

	src := o.Read(c)
	if size == SizeWord {
		src = signExtend16(uint16(src))
	}
	dst := c.Addr(regField(opcode))
	c.setFlagsCmp(src, dst, dst-src, SizeLong)
	return nil
}

// opCMPM handles CMPM (Ay)+,(Ax)+.
func (c *CPU) opCMPM(opcode uint16) error {
	size := SizeFromBits((opcode >> 6) & 3)

	so, err := c.Resolve(size, ModeAddrPostInc, opcode&7)
	if err != nil {
		return fmt.Errorf("CMPM failed to resolve source: %w", err)
	}
	src := so.Read(c)

	do, err := c.Resolve(size, ModeAddrPostInc, regField(opcode))
	if err != nil {
		return fmt.Errorf("CMPM failed to resolve destination: %w", err)
	}
	dst := do.Read(c)

	c.setFlagsCmp(src, dst, (dst-src)&size.Mask(), size)
	return nil
}

// opCMPI handles CMPI #<data>,<ea>. The immediate precedes the
// destination's extension words.
func (c *CPU) opCMPI(opcode uint16) error {
	size := SizeFromBits((opcode >> 6) & 3)
	src := c.fetchImmediate(size)

	mode, reg := eaFields(opcode)
	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("CMPI failed to resolve destination: %w", err)
	}

	dst := o.Read(c)
	c.setFlagsCmp(src, dst, (dst-src)&size.Mask(), size)
	return nil
}

// opTST handles the TST instruction.
func (c *CPU) opTST(opcode uint16) error {
	size := SizeFromBits((opcode >> 6) & 3)
	mode, reg := eaFields(opcode)

	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("TST failed to resolve operand: %w", err)
	}

	c.setFlagsLogical(o.Read(c), size)
	return nil
}
