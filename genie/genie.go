// Package genie translates Game Genie codes for the Genesis to and from
// the 24-bit address and 16-bit word they patch.
//
// A code is eight characters from ABCDEFGHJKLMNPRSTVWXYZ0123456789, each
// worth five bits, usually written as two groups of four: SCRA-BJX0 is
// 009C76:5478. The bits of address and data are interleaved across the
// characters.
package genie

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const alphabet = "ABCDEFGHJKLMNPRSTVWXYZ0123456789"

var (
	// ErrBadCode is returned for codes with the wrong length or characters outside the alphabet.
	ErrBadCode = errors.New("bad genie code")
	// ErrBadModifier is returned for a malformed [n] or +n/-n suffix.
	ErrBadModifier = errors.New("bad modifier")
	// ErrOddAddress is returned when applying a word patch to an odd address.
	ErrOddAddress = errors.New("odd address")
)

// values maps a code character to its five bits, or -1.
var values [256]int8

func init() {
	for i := range values {
		values[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		values[alphabet[i]] = int8(i)
	}
	// Look-alikes for the digits.
	values['O'] = values['0']
	values['I'] = values['1']
}

// Patch is one word written to ROM or RAM.
type Patch struct {
	Address uint32
	Value   uint16
}

func (p Patch) String() string {
	return fmt.Sprintf("%06X:%04X", p.Address, p.Value)
}

// Decode parses a code with an optional modifier after it:
// "[n]" replaces the low byte of the value with n, as for a MOVEQ or a
// word-sized immediate; "+n" or "-n" with n in 1-8 turns the value into
// an ADDQ or SUBQ of n.
func Decode(code string) (Patch, error) {
	code = strings.TrimSpace(code)
	chars, mod, _ := strings.Cut(code, " ")
	if i := strings.IndexAny(chars, "[+"); i >= 0 {
		chars, mod = chars[:i], chars[i:]
	}

	chars = strings.ToUpper(strings.ReplaceAll(chars, "-", ""))
	if len(chars) != 8 {
		return Patch{}, fmt.Errorf("%q: %w", code, ErrBadCode)
	}

	var b [8]uint32
	for i := range b {
		v := values[chars[i]]
		if v < 0 {
			return Patch{}, fmt.Errorf("%q: character %q: %w", code, chars[i], ErrBadCode)
		}
		b[i] = uint32(v)
	}

	addr := (b[3]&0x0F)<<20 |
		(b[4]&0x1E)<<15 |
		(b[1]&0x03)<<14 |
		(b[2]&0x1F)<<9 |
		(b[3]&0x10)<<4 |
		(b[6]&0x07)<<5 |
		b[7]&0x1F
	value := (b[5]&0x01)<<15 |
		(b[6]&0x18)<<10 |
		(b[4]&0x01)<<12 |
		(b[5]&0x1E)<<7 |
		(b[0]&0x1F)<<3 |
		(b[1]&0x1C)>>2

	p := Patch{Address: addr, Value: uint16(value)}
	mod = strings.TrimSpace(mod)
	if mod == "" {
		return p, nil
	}

	v, err := applyModifier(p.Value, mod)
	if err != nil {
		return Patch{}, fmt.Errorf("%q: %w", code, err)
	}
	p.Value = v
	return p, nil
}

func applyModifier(value uint16, mod string) (uint16, error) {
	switch mod[0] {
	case '[':
		n, err := strconv.ParseUint(strings.TrimSuffix(mod[1:], "]"), 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", mod, ErrBadModifier)
		}
		return value&0xFF00 | uint16(n), nil

	case '+', '-':
		n, err := strconv.ParseUint(mod[1:], 10, 4)
		if err != nil || n < 1 || n > 8 {
			return 0, fmt.Errorf("%q: %w", mod, ErrBadModifier)
		}
		if mod[0] == '-' {
			value |= 0x0100
		} else {
			value &^= 0x0100
		}
		// 8 is encoded as 0 in the quick data field.
		return value&0xF1FF | uint16(n<<9)&0x0E00, nil
	}

	return 0, fmt.Errorf("%q: %w", mod, ErrBadModifier)
}

// Encode returns the code for p as XXXX-XXXX. Address bits above 24 are ignored.
func Encode(p Patch) string {
	a, v := p.Address, uint32(p.Value)
	b := [8]uint32{
		(v >> 3) & 0x1F,
		(v<<2)&0x1C | (a>>14)&0x03,
		(a >> 9) & 0x1F,
		(a>>4)&0x10 | (a>>20)&0x0F,
		(a>>15)&0x1E | (v>>12)&0x01,
		(v>>7)&0x1E | (v>>15)&0x01,
		(v>>10)&0x18 | (a>>5)&0x07,
		a & 0x1F,
	}

	var sb strings.Builder
	for i, x := range b {
		if i == 4 {
			sb.WriteByte('-')
		}
		sb.WriteByte(alphabet[x])
	}
	return sb.String()
}

// Annotate returns the modifier that describes v, in the form Decode
// accepts: "[n]" for a MOVEQ or a word whose high byte is zero, "+n" or
// "-n" for an ADDQ or SUBQ, and "" for anything else.
func Annotate(v uint16) string {
	switch {
	case v&0xF100 == 0x7000, v&0xFF00 == 0:
		return fmt.Sprintf("[%d]", v&0xFF)
	case v&0xF000 == 0x5000 && v&0x00C0 != 0x00C0:
		sign := '+'
		if v&0x0100 != 0 {
			sign = '-'
		}
		n := (v >> 9) & 7
		if n == 0 {
			n = 8
		}
		return fmt.Sprintf("%c%d", sign, n)
	}
	return ""
}

// ParseHex parses the address:value form, such as "009c76:5478".
// Several words may follow the address, separated by spaces; they patch
// consecutive words: "400: 4e71 4e75". Values wider than a word keep
// their low 16 bits.
func ParseHex(s string) ([]Patch, error) {
	as, vs, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("%q: missing ':': %w", s, ErrBadCode)
	}

	addr, err := strconv.ParseUint(strings.TrimSpace(as), 16, 24)
	if err != nil {
		return nil, fmt.Errorf("%q: address: %w", s, ErrBadCode)
	}

	words := strings.Fields(vs)
	if len(words) == 0 {
		return nil, fmt.Errorf("%q: no value: %w", s, ErrBadCode)
	}

	patches := make([]Patch, 0, len(words))
	for i, w := range words {
		value, err := strconv.ParseUint(w, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%q: value %q: %w", s, w, ErrBadCode)
		}
		patches = append(patches, Patch{
			Address: uint32(addr) + uint32(2*i),
			Value:   uint16(value),
		})
	}
	return patches, nil
}

// Parse accepts either a genie code or the address:value form.
func Parse(s string) ([]Patch, error) {
	if strings.Contains(s, ":") {
		return ParseHex(s)
	}
	p, err := Decode(s)
	if err != nil {
		return nil, err
	}
	return []Patch{p}, nil
}

// Patcher writes a word regardless of write protection.
type Patcher interface {
	Patch(addr uint32, value uint16) error
}

// Apply writes every patch in order and stops at the first failure.
func Apply(dst Patcher, patches ...Patch) error {
	for _, p := range patches {
		if p.Address&1 != 0 {
			return fmt.Errorf("%s: %w", p, ErrOddAddress)
		}
		if err := dst.Patch(p.Address, p.Value); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
