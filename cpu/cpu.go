package cpu

import "log"

// Bus is the memory collaborator. Values are big-endian with the most
// significant byte at the lowest address. Mapping of unpopulated regions
// is up to the implementation.
type Bus interface {
	Read(addr uint32, size Size) uint32
	Write(addr uint32, value uint32, size Size)
}

// VectorReader supplies exception handler addresses.
type VectorReader interface {
	ReadInterruptVector(addr uint32) uint32
}

// CPU registers, collaborators and run state.
type CPU struct {
	Registers

	// Log receives diagnostics when set.
	Log *log.Logger

	bus     Bus
	vectors VectorReader
	table   *Table
	stopped bool
}

// Status register flags.
const (
	// SRC is carry
	SRC = 1 << 0
	// SRV is overflow
	SRV = 1 << 1
	// SRZ is zero
	SRZ = 1 << 2
	// SRN is negative
	SRN = 1 << 3
	// SRX is extend
	SRX = 1 << 4
	// SRI0 is interrupt level 0
	SRI0 = 1 << 8
	// SRI1 is interrupt level 1
	SRI1 = 1 << 9
	// SRI2 is interrupt level 2
	SRI2 = 1 << 10
	// SRS is supervisor state
	SRS = 1 << 13
	// SRT is trace mode
	SRT = 1 << 15

	// ccrMask covers the five condition flags.
	ccrMask = SRX | SRN | SRZ | SRV | SRC
)

// New creates a CPU in supervisor mode using the shared dispatch table.
// If vectors is nil, exception vectors are read as longs from the bus.
func New(bus Bus, vectors VectorReader) *CPU {
	return NewWithTable(bus, vectors, defaultTable)
}

// NewWithTable creates a CPU that dispatches through t.
func NewWithTable(bus Bus, vectors VectorReader, t *Table) *CPU {
	if vectors == nil {
		vectors = busVectors{bus}
	}

	return &CPU{
		Registers: Registers{SR: SRS | SRI2 | SRI1 | SRI0},
		bus:       bus,
		vectors:   vectors,
		table:     t,
	}
}

// Bus returns the memory collaborator.
func (c *CPU) Bus() Bus {
	return c.bus
}

// SetSR replaces the status register. A7 follows the supervisor bit, so the
// active stack switches as part of the write.
func (c *CPU) SetSR(v uint16) {
	was := c.Supervisor()
	c.SR = v
	if was != c.Supervisor() {
		c.logf("supervisor %t -> %t, A7=%08X", was, !was, c.Addr(7))
	}
}

// Stopped returns true after STOP until Resume is called.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// Resume clears the stopped state.
func (c *CPU) Resume() {
	c.stopped = false
}

func (c *CPU) logf(format string, v ...any) {
	if c.Log != nil {
		c.Log.Printf(format, v...)
	}
}

// busVectors reads vectors straight from memory.
type busVectors struct {
	bus Bus
}

func (b busVectors) ReadInterruptVector(addr uint32) uint32 {
	return b.bus.Read(addr, SizeLong)
}
