package cpu

import "fmt"

// Dispatch runs the handler for opcode. PC must point at the opcode word;
// the caller advances it past the instruction afterwards.
func (c *CPU) Dispatch(opcode uint16) error {
	h := c.table.Lookup(opcode)
	if h == nil {
		return &ExecError{Opcode: opcode, PC: c.PC, Err: ErrUnimplemented}
	}

	pc := c.PC
	if err := h(c, opcode); err != nil {
		c.logf("%04X at %08X failed: %v", opcode, pc, err)
		return &ExecError{Opcode: opcode, PC: pc, Err: err}
	}
	return nil
}

// Step fetches and executes a single instruction. It does nothing while
// the CPU is stopped. On failure PC is left on the failing opcode.
func (c *CPU) Step() error {
	if c.stopped {
		return nil
	}

	pc := c.PC
	opcode := uint16(c.bus.Read(pc, SizeWord))
	if err := c.Dispatch(opcode); err != nil {
		c.PC = pc
		return err
	}

	c.PC += 2
	return nil
}

// Reset loads the initial supervisor stack pointer and PC from vectors 0
// and 1 and enters supervisor mode with interrupts masked.
func (c *CPU) Reset() error {
	c.stopped = false
	c.SetSR(SRS | SRI2 | SRI1 | SRI0)
	c.SSP = c.vectors.ReadInterruptVector(0)
	c.PC = c.vectors.ReadInterruptVector(4)
	c.logf("reset: SSP=%08X PC=%08X", c.SSP, c.PC)
	if c.PC&1 != 0 {
		return fmt.Errorf("reset vector %08X is odd: %w", c.PC, ErrIllegalOperation)
	}
	return nil
}
