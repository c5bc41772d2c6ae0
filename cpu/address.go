package cpu

import "fmt"

// Operand is one resolved operand of the executing instruction.
// Resolve computes the effective address once; Read and Write may then be
// called any number of times without further side effects.
type Operand struct {
	Size    Size
	Mode    AddressingMode
	Reg     uint16
	Address uint32
}

// Resolve decodes the mode and register fields of an effective address.
// Extension words are fetched from PC+2 onwards and PC is advanced past each
// one; post-increment and pre-decrement adjust the address register.
func (c *CPU) Resolve(size Size, mode, reg uint16) (*Operand, error) {
	m, ok := modeOf(mode, reg)
	if !ok {
		return nil, fmt.Errorf("mode %d register %d: %w", mode, reg, ErrInvalidMode)
	}

	o := &Operand{Size: size, Mode: m, Reg: reg}
	switch m {
	case DataDirect, AddrDirect:
	case AddrIndirect:
		o.Address = c.Addr(reg)
	case AddrPostInc:
		o.Address = c.Addr(reg)
		c.SetAddr(reg, o.Address+stackStep(size, reg))
	case AddrPreDec:
		o.Address = c.Addr(reg) - stackStep(size, reg)
		c.SetAddr(reg, o.Address)
	case AddrDisp:
		disp := c.fetchExtension()
		o.Address = c.Addr(reg) + signExtend16(disp)
	case AddrIndex:
		ext := c.fetchExtension()
		o.Address = c.Addr(reg) + c.indexOffset(ext)
	case AbsShort:
		o.Address = signExtend16(c.fetchExtension())
	case AbsLong:
		o.Address = c.bus.Read(c.PC+2, SizeLong)
		c.PC += 4
	case PCDisp:
		base := c.PC + 2
		o.Address = base + signExtend16(c.fetchExtension())
	case PCIndex:
		base := c.PC + 2
		ext := c.fetchExtension()
		o.Address = base + c.indexOffset(ext)
	case Immediate:
		// Byte immediates still occupy a whole word.
		o.Address = c.PC + 2
		if size == SizeLong {
			c.PC += 4
		} else {
			c.PC += 2
		}
	}

	return o, nil
}

// Read returns the operand value masked to its size.
func (o *Operand) Read(c *CPU) uint32 {
	switch o.Mode {
	case DataDirect:
		return c.ReadD(o.Reg, o.Size)
	case AddrDirect:
		return c.ReadA(o.Reg, o.Size)
	case Immediate:
		if o.Size == SizeByte {
			return c.bus.Read(o.Address, SizeWord) & 0xFF
		}
		return c.bus.Read(o.Address, o.Size) & o.Size.Mask()
	case AddrIndirect, AddrPostInc, AddrPreDec, AddrDisp, AddrIndex,
		AbsShort, AbsLong, PCDisp, PCIndex:
		return c.bus.Read(o.Address, o.Size) & o.Size.Mask()
	}
	panic(fmt.Sprintf("cpu: unknown addressing mode %d", o.Mode))
}

// Write stores v at the operand. Program counter relative and immediate
// operands are read-only.
func (o *Operand) Write(c *CPU, v uint32) error {
	if !o.Mode.Writable() {
		return fmt.Errorf("write to %s: %w", o.Mode, ErrIllegalOperation)
	}

	switch o.Mode {
	case DataDirect:
		c.WriteD(o.Reg, o.Size, v)
	case AddrDirect:
		c.WriteA(o.Reg, o.Size, v)
	case AddrIndirect, AddrPostInc, AddrPreDec, AddrDisp, AddrIndex, AbsShort, AbsLong:
		c.bus.Write(o.Address, v&o.Size.Mask(), o.Size)
	default:
		panic(fmt.Sprintf("cpu: unknown addressing mode %d", o.Mode))
	}
	return nil
}

// fetchExtension reads the word following PC and advances PC to it.
func (c *CPU) fetchExtension() uint16 {
	v := uint16(c.bus.Read(c.PC+2, SizeWord))
	c.PC += 2
	return v
}

// indexOffset decodes a brief extension word.
// Bit 15 selects An, bits 14-12 the register, bit 11 long index, bits 7-0 the displacement.
func (c *CPU) indexOffset(ext uint16) uint32 {
	reg := (ext >> 12) & 7
	var idx uint32
	if ext&0x8000 != 0 {
		idx = c.Addr(reg)
	} else {
		idx = c.D[reg]
	}
	if ext&0x0800 == 0 {
		idx = signExtend16(uint16(idx))
	}
	return uint32(int32(int8(ext))) + idx
}

// stackStep is the post-increment/pre-decrement amount. Byte accesses
// through A7 move by two to keep the stack word aligned.
func stackStep(size Size, reg uint16) uint32 {
	if size == SizeByte && reg == 7 {
		return 2
	}
	return uint32(size.Bytes())
}

// signExtend16 sign-extends a 16-bit value to 32 bits.
func signExtend16(v uint16) uint32 {
	return uint32(int32(int16(v)))
}

// signExtend8 sign-extends an 8-bit value to 32 bits.
func signExtend8(v uint8) uint32 {
	return uint32(int32(int8(v)))
}
