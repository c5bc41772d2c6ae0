package cpu

import "fmt"

// Exception enters the handler for vector from outside an instruction.
// The stacked PC is the current PC, which the run loop leaves on the
// faulting opcode. PC is set to the handler itself.
func (c *CPU) Exception(vector uint8) error {
	handler, err := c.exception(vector, c.PC)
	if err != nil {
		return err
	}

	c.PC = handler
	return nil
}

// exception switches to supervisor mode, pushes the return PC and the old
// SR on the supervisor stack and returns the handler address.
func (c *CPU) exception(vector uint8, returnPC uint32) (uint32, error) {
	addr := uint32(vector) * 4
	handler := c.vectors.ReadInterruptVector(addr)
	if handler&1 != 0 {
		return 0, fmt.Errorf("vector %d at %03X holds odd address %08X: %w", vector, addr, handler, ErrIllegalOperation)
	}

	old := c.SR
	c.SetSR((old | SRS) &^ SRT)
	c.push(&c.SSP, returnPC, SizeLong)
	c.push(&c.SSP, uint32(old), SizeWord)
	c.stopped = false

	c.logf("exception %d from %08X to %08X", vector, returnPC, handler)
	return handler, nil
}
