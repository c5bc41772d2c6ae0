package cpu

import "fmt"

func generateOR(b *builder) {
	for dn := uint16(0); dn < 8; dn++ {
		for opmode := uint16(0); opmode < 8; opmode++ {
			var cat eaCategory
			switch opmode {
			case 0, 1, 2:
				cat = eaData
			case 4, 5, 6:
				// Dn and An destinations belong to SBCD.
				cat = eaMemoryAlterable
			default:
				// DIVU and DIVS.
				continue
			}
			forEachEA(cat, func(mode, reg uint16) {
				b.add(OPOR|dn<<9|opmode<<6|mode<<3|reg, (*CPU).opOR)
			})
		}
	}
}

func generateORI(b *builder) {
	for bits := uint16(0); bits < 3; bits++ {
		forEachEA(eaDataAlterable, func(mode, reg uint16) {
			b.add(OPORI|bits<<6|mode<<3|reg, (*CPU).opORI)
		})
	}
}

func generateNOT(b *builder) {
	for bits := uint16(0); bits < 3; bits++ {
		forEachEA(eaDataAlterable, func(mode, reg uint16) {
			b.add(OPNOT|bits<<6|mode<<3|reg, (*CPU).opNOT)
		})
	}
}

func generateImmediateSR(b *builder) {
	b.add(OPORItoCCR, (*CPU).opORItoCCR)
	b.add(OPANDItoCCR, (*CPU).opANDItoCCR)
	b.add(OPEORItoCCR, (*CPU).opEORItoCCR)
	b.add(OPORItoSR, (*CPU).opORItoSR)
	b.add(OPANDItoSR, (*CPU).opANDItoSR)
	b.add(OPEORItoSR, (*CPU).opEORItoSR)
}

// opOR handles the OR instruction.
// Bit 8 of the opcode selects the direction:
// 0: Dn = Dn | <ea>
// 1: <ea> = <ea> | Dn
func (c *CPU) opOR(opcode uint16) error {
	size := SizeFromOpMode((opcode >> 6) & 7)
	mode, reg := eaFields(opcode)
	dn := regField(opcode)

	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("OR failed to resolve operand: %w", err)
	}

	result := o.Read(c) | c.ReadD(dn, size)
	c.setFlagsLogical(result, size)

	if opcode&0x0100 != 0 {
		if err := o.Write(c, result); err != nil {
			return fmt.Errorf("OR failed to put result: %w", err)
		}
		return nil
	}

	c.WriteD(dn, size, result)
	return nil
}

// opORI handles ORI #<data>,<ea>.
func (c *CPU) opORI(opcode uint16) error {
	size := SizeFromBits((opcode >> 6) & 3)
	src := c.fetchImmediate(size)

	mode, reg := eaFields(opcode)
	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("ORI failed to resolve destination: %w", err)
	}

	result := o.Read(c) | src
	c.setFlagsLogical(result, size)
	if err := o.Write(c, result); err != nil {
		return fmt.Errorf("ORI failed to put result: %w", err)
	}
	return nil
}

// opNOT handles the NOT instruction.
func (c *CPU) opNOT(opcode uint16) error {
	size := SizeFromBits((opcode >> 6) & 3)
	mode, reg := eaFields(opcode)

	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("NOT failed to resolve operand: %w", err)
	}

	result := ^o.Read(c) & size.Mask()
	c.setFlagsLogical(result, size)
	if err := o.Write(c, result); err != nil {
		return fmt.Errorf("NOT failed to put result: %w", err)
	}
	return nil
}

// The CCR forms take a byte immediate in the low half of the extension word.

func (c *CPU) opORItoCCR(uint16) error {
	c.SetCCR(c.CCR() | uint8(c.fetchImmediate(SizeByte)))
	return nil
}

func (c *CPU) opANDItoCCR(uint16) error {
	c.SetCCR(c.CCR() & uint8(c.fetchImmediate(SizeByte)))
	return nil
}

func (c *CPU) opEORItoCCR(uint16) error {
	c.SetCCR(c.CCR() ^ uint8(c.fetchImmediate(SizeByte)))
	return nil
}

// The SR forms are privileged. The check comes before the immediate is
// fetched so PC is untouched when they fail.

func (c *CPU) opORItoSR(uint16) error {
	if !c.Supervisor() {
		return fmt.Errorf("ORI to SR: %w", ErrPrivilege)
	}
	c.SetSR(c.SR | uint16(c.fetchImmediate(SizeWord)))
	return nil
}

func (c *CPU) opANDItoSR(uint16) error {
	if !c.Supervisor() {
		return fmt.Errorf("ANDI to SR: %w", ErrPrivilege)
	}
	c.SetSR(c.SR & uint16(c.fetchImmediate(SizeWord)))
	return nil
}

func (c *CPU) opEORItoSR(uint16) error {
	if !c.Supervisor() {
		return fmt.Errorf("EORI to SR: %w", ErrPrivilege)
	}
	c.SetSR(c.SR ^ uint16(c.fetchImmediate(SizeWord)))
	return nil
}
