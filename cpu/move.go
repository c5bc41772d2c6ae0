package cpu

import "fmt"

func generateMOVE(b *builder) {
	for _, base := range []uint16{OPMOVEB, OPMOVEW, OPMOVEL} {
		src := eaAll
		if base == OPMOVEB {
			src = eaData
		}
		forEachEA(src, func(smode, sreg uint16) {
			forEachEA(eaDataAlterable, func(dmode, dreg uint16) {
				b.add(base|dreg<<9|dmode<<6|smode<<3|sreg, (*CPU).opMOVE)
			})
			if base == OPMOVEB {
				return
			}
			for an := uint16(0); an < 8; an++ {
				b.add(base|an<<9|ModeAddr<<6|smode<<3|sreg, (*CPU).opMOVEA)
			}
		})
	}
}

func generateMOVESR(b *builder) {
	forEachEA(eaDataAlterable, func(mode, reg uint16) {
		b.add(OPMOVEFromSR|mode<<3|reg, (*CPU).opMOVEFromSR)
	})
	forEachEA(eaData, func(mode, reg uint16) {
		b.add(OPMOVEToCCR|mode<<3|reg, (*CPU).opMOVEToCCR)
		b.add(OPMOVEToSR|mode<<3|reg, (*CPU).opMOVEToSR)
	})
}

func generateMOVEQ(b *builder) {
	for dn := uint16(0); dn < 8; dn++ {
		for data := uint16(0); data < 0x100; data++ {
			b.add(OPMOVEQ|dn<<9|data, (*CPU).opMOVEQ)
		}
	}
}

// opMOVEQ handles the MOVEQ (Move Quick) instruction.
// Format: 0111 <reg> 0 <8-bit data>
func (c *CPU) opMOVEQ(opcode uint16) error {
	value := signExtend8(uint8(opcode))
	c.D[regField(opcode)] = value
	c.setFlagsLogical(value, SizeLong)
	return nil
}

// opMOVEA handles the MOVEA (Move Address) instruction.
func (c *CPU) opMOVEA(opcode uint16) error {
	size := SizeFromMoveBits((opcode >> 12) & 3)
	mode, reg := eaFields(opcode)

	o, err := c.Resolve(size, mode, reg)
	if err != nil {
		return fmt.Errorf("MOVEA failed to get source operand: %w", err)
	}

	// If the size is word, the source is sign-extended to 32 bits.
	value := o.Read(c)
	if size == SizeWord {
		value = signExtend16(uint16(value))
	}

	// MOVEA does not affect condition codes.
	c.SetAddr(regField(opcode), value)
	return nil
}

// opMOVE handles the general MOVE instruction. The source is resolved
// first, so its extension words come before the destination's.
func (c *CPU) opMOVE(opcode uint16) error {
	size := SizeFromMoveBits((opcode >> 12) & 3)
	smode, sreg := eaFields(opcode)

	so, err := c.Resolve(size, smode, sreg)
	if err != nil {
		return fmt.Errorf("MOVE failed to get source operand: %w", err)
	}
	value := so.Read(c)

	do, err := c.Resolve(size, (opcode>>6)&7, regField(opcode))
	if err != nil {
		return fmt.Errorf("MOVE failed to resolve destination: %w", err)
	}
	if err := do.Write(c, value); err != nil {
		return fmt.Errorf("MOVE failed to put destination operand: %w", err)
	}

	c.setFlagsLogical(value, size)
	return nil
}

// opMOVEFromSR stores the whole status register. It is not privileged on the 68000.
func (c *CPU) opMOVEFromSR(opcode uint16) error {
	mode, reg := eaFields(opcode)
	o, err := c.Resolve(SizeWord, mode, reg)
	if err != nil {
		return fmt.Errorf("MOVE from SR failed to resolve destination: %w", err)
	}
	return o.Write(c, uint32(c.SR))
}

// opMOVEToCCR reads a word and keeps the low five bits as condition codes.
func (c *CPU) opMOVEToCCR(opcode uint16) error {
	mode, reg := eaFields(opcode)
	o, err := c.Resolve(SizeWord, mode, reg)
	if err != nil {
		return fmt.Errorf("MOVE to CCR failed to resolve source: %w", err)
	}
	c.SetCCR(uint8(o.Read(c)))
	return nil
}

// opMOVEToSR replaces the status register. Privileged; the check happens
// before the source is resolved.
func (c *CPU) opMOVEToSR(opcode uint16) error {
	if !c.Supervisor() {
		return fmt.Errorf("MOVE to SR: %w", ErrPrivilege)
	}

	mode, reg := eaFields(opcode)
	o, err := c.Resolve(SizeWord, mode, reg)
	if err != nil {
		return fmt.Errorf("MOVE to SR failed to resolve source: %w", err)
	}
	c.SetSR(uint16(o.Read(c)))
	return nil
}
