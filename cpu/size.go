package cpu

import "fmt"

// Size defines the data size for an instruction's operation.
type Size int

const (
	// SizeInvalid is the zero value, indicating no size was decoded.
	SizeInvalid Size = iota
	// SizeByte represents 8-bit data size.
	SizeByte
	// SizeWord represents 16-bit data size.
	SizeWord
	// SizeLong represents 32-bit data size.
	SizeLong
)

// MSB returns the sign bit for the size.
func (s Size) MSB() uint32 {
	switch s {
	case SizeByte:
		return 0x80
	case SizeWord:
		return 0x8000
	case SizeLong:
		return 0x80000000
	}
	return 0
}

// Mask returns the largest value representable in the size.
func (s Size) Mask() uint32 {
	switch s {
	case SizeByte:
		return 0xFF
	case SizeWord:
		return 0xFFFF
	case SizeLong:
		return 0xFFFFFFFF
	}
	return 0
}

// Bytes returns the number of bytes occupied by a value of this size.
func (s Size) Bytes() int {
	switch s {
	case SizeByte:
		return 1
	case SizeWord:
		return 2
	case SizeLong:
		return 4
	}
	return 0
}

// Bits returns the width of the size in bits.
func (s Size) Bits() uint32 {
	return uint32(s.Bytes()) * 8
}

func (s Size) String() string {
	switch s {
	case SizeByte:
		return "b"
	case SizeWord:
		return "w"
	case SizeLong:
		return "l"
	}
	return "?"
}

// SizeFromMoveBits decodes the MOVE size field (bits 13-12).
// 01 is byte, 11 is word and 10 is long.
func SizeFromMoveBits(bits uint16) Size {
	switch bits {
	case 1:
		return SizeByte
	case 3:
		return SizeWord
	case 2:
		return SizeLong
	}
	panic(fmt.Sprintf("cpu: invalid move size field %02b", bits))
}

// SizeFromBits decodes the two-bit ALU size field (bits 7-6).
// 00 is byte, 01 is word and 10 is long.
func SizeFromBits(bits uint16) Size {
	switch bits {
	case 0:
		return SizeByte
	case 1:
		return SizeWord
	case 2:
		return SizeLong
	}
	panic(fmt.Sprintf("cpu: invalid size field %02b", bits))
}

// SizeFromOpMode decodes a three-bit op-mode field. Bit 2 selects the
// direction and is ignored here.
func SizeFromOpMode(opmode uint16) Size {
	switch opmode {
	case 0, 4:
		return SizeByte
	case 1, 5:
		return SizeWord
	case 2, 6:
		return SizeLong
	}
	panic(fmt.Sprintf("cpu: invalid op-mode field %03b", opmode))
}
