package cpu

import "fmt"

func generateControl(b *builder) {
	b.add(OPNOP, (*CPU).opNOP)
	b.add(OPSTOP, (*CPU).opSTOP)
	b.add(OPRTE, (*CPU).opRTE)
	b.add(OPRTS, (*CPU).opRTS)
	b.add(OPRTR, (*CPU).opRTR)
}

func generateTRAP(b *builder) {
	for n := uint16(0); n < 16; n++ {
		b.add(OPTRAP|n, (*CPU).opTRAP)
	}
}

func generateJumps(b *builder) {
	forEachEA(eaControl, func(mode, reg uint16) {
		b.add(OPJSR|mode<<3|reg, (*CPU).opJSR)
		b.add(OPJMP|mode<<3|reg, (*CPU).opJMP)
	})
}

// Control transfers leave PC two bytes before the target, since the run
// loop always advances past the opcode word.

// opNOP handles the NOP instruction.
func (c *CPU) opNOP(uint16) error {
	return nil
}

// opJSR handles the JSR (Jump to Subroutine) instruction.
// Format: 0100 1110 10 <ea>
func (c *CPU) opJSR(opcode uint16) error {
	mode, reg := eaFields(opcode)
	o, err := c.Resolve(SizeLong, mode, reg)
	if err != nil {
		return fmt.Errorf("JSR failed to resolve target: %w", err)
	}

	// PC is on the last word of the instruction.
	c.push(c.stackPointer(), c.PC+2, SizeLong)
	c.PC = o.Address - 2
	return nil
}

// opJMP handles the JMP instruction.
func (c *CPU) opJMP(opcode uint16) error {
	mode, reg := eaFields(opcode)
	o, err := c.Resolve(SizeLong, mode, reg)
	if err != nil {
		return fmt.Errorf("JMP failed to resolve target: %w", err)
	}

	c.PC = o.Address - 2
	return nil
}

// opRTS handles the RTS (Return from Subroutine) instruction.
// Format: 0100 1110 0111 0101 (4E75)
func (c *CPU) opRTS(uint16) error {
	c.PC = c.pop(c.stackPointer(), SizeLong) - 2
	return nil
}

// opRTR handles RTR. Only the condition codes are restored from the
// stacked status word.
func (c *CPU) opRTR(uint16) error {
	sp := c.stackPointer()
	c.SetCCR(uint8(c.pop(sp, SizeWord)))
	c.PC = c.pop(sp, SizeLong) - 2
	return nil
}

// opRTE handles RTE. The frame is always taken from the supervisor stack,
// and SR is written last so A7 follows the restored mode.
func (c *CPU) opRTE(uint16) error {
	sr := uint16(c.pop(&c.SSP, SizeWord))
	pc := c.pop(&c.SSP, SizeLong)
	c.SetSR(sr)
	c.PC = pc - 2
	return nil
}

// opSTOP loads SR from the immediate word and halts until Resume.
// The new SR must keep the supervisor bit.
func (c *CPU) opSTOP(uint16) error {
	if !c.Supervisor() {
		return fmt.Errorf("STOP: %w", ErrPrivilege)
	}

	sr := uint16(c.bus.Read(c.PC+2, SizeWord))
	if sr&SRS == 0 {
		return fmt.Errorf("STOP #%04X leaves supervisor mode: %w", sr, ErrIllegalOperation)
	}

	c.PC += 2
	c.SetSR(sr)
	c.stopped = true
	c.logf("stopped, SR=%04X", sr)
	return nil
}

// opTRAP handles TRAP #n.
// Format: 0100 1110 0100 <vector>
func (c *CPU) opTRAP(opcode uint16) error {
	vector := uint8(VecTrap0 + opcode&0xF)
	handler, err := c.exception(vector, c.PC+2)
	if err != nil {
		return err
	}

	c.PC = handler - 2
	return nil
}

// stackPointer returns the active A7.
func (c *CPU) stackPointer() *uint32 {
	if c.Supervisor() {
		return &c.SSP
	}
	return &c.USP
}

// push stores v below *sp one byte at a time, low byte first, so the value
// ends up big-endian in memory.
func (c *CPU) push(sp *uint32, v uint32, size Size) {
	for i := 0; i < size.Bytes(); i++ {
		*sp--
		c.bus.Write(*sp, v&0xFF, SizeByte)
		v >>= 8
	}
}

// pop reads a big-endian value at *sp one byte at a time and releases it.
func (c *CPU) pop(sp *uint32, size Size) uint32 {
	var v uint32
	for i := 0; i < size.Bytes(); i++ {
		v = v<<8 | c.bus.Read(*sp, SizeByte)&0xFF
		*sp++
	}
	return v
}
