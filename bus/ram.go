// Package bus provides flat big-endian memory for the 68000 core.
package bus

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Urethramancer/gen68k/cpu"
)

// AddressMask covers the 24 address lines of the 68000.
const AddressMask = 0x00FFFFFF

// ErrOutOfRange is returned when data does not fit in memory.
var ErrOutOfRange = errors.New("address out of range")

// RAM is memory from address 0 up to its size. Reads past the end return
// zero and writes there are dropped. An optional read-only window covers
// a loaded ROM image.
type RAM struct {
	mem      []byte
	romStart uint32
	romEnd   uint32
}

// New allocates size bytes of memory. Sizes past the 24-bit address space are clamped.
func New(size int) *RAM {
	if size > AddressMask+1 {
		size = AddressMask + 1
	}
	return &RAM{mem: make([]byte, size)}
}

// Size returns the number of bytes of backing memory.
func (r *RAM) Size() int {
	return len(r.mem)
}

// Bytes returns the backing memory.
func (r *RAM) Bytes() []byte {
	return r.mem
}

func (r *RAM) inRange(addr uint32, n int) bool {
	return int(addr)+n <= len(r.mem)
}

// Read returns a big-endian value. Accesses that run off the end read as zero.
func (r *RAM) Read(addr uint32, size cpu.Size) uint32 {
	addr &= AddressMask
	if !r.inRange(addr, size.Bytes()) {
		return 0
	}

	switch size {
	case cpu.SizeByte:
		return uint32(r.mem[addr])
	case cpu.SizeWord:
		return uint32(binary.BigEndian.Uint16(r.mem[addr:]))
	case cpu.SizeLong:
		return binary.BigEndian.Uint32(r.mem[addr:])
	}
	return 0
}

// Write stores a big-endian value. Writes into the ROM window or past the
// end are ignored.
func (r *RAM) Write(addr uint32, value uint32, size cpu.Size) {
	addr &= AddressMask
	if !r.inRange(addr, size.Bytes()) || r.inROM(addr, size.Bytes()) {
		return
	}
	r.put(addr, value, size)
}

func (r *RAM) put(addr uint32, value uint32, size cpu.Size) {
	switch size {
	case cpu.SizeByte:
		r.mem[addr] = byte(value)
	case cpu.SizeWord:
		binary.BigEndian.PutUint16(r.mem[addr:], uint16(value))
	case cpu.SizeLong:
		binary.BigEndian.PutUint32(r.mem[addr:], value)
	}
}

func (r *RAM) inROM(addr uint32, n int) bool {
	return addr < r.romEnd && addr+uint32(n) > r.romStart
}

// ReadInterruptVector reads the handler address stored at a vector address.
func (r *RAM) ReadInterruptVector(addr uint32) uint32 {
	return r.Read(addr, cpu.SizeLong)
}

// Load copies data into memory at addr, ignoring the ROM window.
func (r *RAM) Load(addr uint32, data []byte) error {
	addr &= AddressMask
	if !r.inRange(addr, len(data)) {
		return fmt.Errorf("%d bytes at %06X in %d bytes of memory: %w", len(data), addr, len(r.mem), ErrOutOfRange)
	}

	copy(r.mem[addr:], data)
	return nil
}

// LoadROM loads data at addr and makes that range read-only.
func (r *RAM) LoadROM(addr uint32, data []byte) error {
	if err := r.Load(addr, data); err != nil {
		return err
	}

	r.romStart = addr & AddressMask
	r.romEnd = r.romStart + uint32(len(data))
	return nil
}

// Patch overwrites a word even inside the ROM window.
func (r *RAM) Patch(addr uint32, value uint16) error {
	addr &= AddressMask
	if !r.inRange(addr, 2) {
		return fmt.Errorf("patch at %06X: %w", addr, ErrOutOfRange)
	}

	r.put(addr, uint32(value), cpu.SizeWord)
	return nil
}
