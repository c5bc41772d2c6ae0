package cpu

// Addressing mode constants (3-bit mode field + 3-bit register field)
const (
	// 000 Data Register Direct: Dn
	ModeData uint16 = 0

	// 001 Address Register Direct: An
	ModeAddr uint16 = 1

	// 010 Address Register Indirect: (An)
	ModeAddrInd uint16 = 2

	// 011 Address Register Indirect with Postincrement: (An)+
	ModeAddrPostInc uint16 = 3

	// 100 Address Register Indirect with Predecrement: -(An)
	ModeAddrPreDec uint16 = 4

	// 101 Address Register Indirect with Displacement: (d16,An)
	ModeAddrDisp uint16 = 5

	// 110 Address Register Indirect with Index: (d8,An,Xn)
	ModeAddrIndex uint16 = 6

	// 111 Miscellaneous / "other" addressing modes
	ModeOther uint16 = 7
)

// Submodes for ModeOther (register field = 3 bits)
const (
	// 000 Absolute short address: (xxx).W
	RegAbsShort uint16 = 0

	// 001 Absolute long address: (xxx).L
	RegAbsLong uint16 = 1

	// 010 Program counter with displacement: (d16,PC)
	RegPCDisp uint16 = 2

	// 011 Program counter with index: (d8,PC,Xn)
	RegPCIndex uint16 = 3

	// 100 Immediate: #<data>
	RegImmediate uint16 = 4
)

// AddressingMode identifies one resolved addressing strategy.
type AddressingMode uint8

const (
	// DataDirect is Dn.
	DataDirect AddressingMode = iota
	// AddrDirect is An.
	AddrDirect
	// AddrIndirect is (An).
	AddrIndirect
	// AddrPostInc is (An)+.
	AddrPostInc
	// AddrPreDec is -(An).
	AddrPreDec
	// AddrDisp is (d16,An).
	AddrDisp
	// AddrIndex is (d8,An,Xn).
	AddrIndex
	// AbsShort is (xxx).W.
	AbsShort
	// AbsLong is (xxx).L.
	AbsLong
	// PCDisp is (d16,PC).
	PCDisp
	// PCIndex is (d8,PC,Xn).
	PCIndex
	// Immediate is #<data>.
	Immediate

	modeCount
)

var modeNames = [modeCount]string{
	DataDirect:   "Dn",
	AddrDirect:   "An",
	AddrIndirect: "(An)",
	AddrPostInc:  "(An)+",
	AddrPreDec:   "-(An)",
	AddrDisp:     "(d16,An)",
	AddrIndex:    "(d8,An,Xn)",
	AbsShort:     "(xxx).W",
	AbsLong:      "(xxx).L",
	PCDisp:       "(d16,PC)",
	PCIndex:      "(d8,PC,Xn)",
	Immediate:    "#<data>",
}

func (m AddressingMode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return "invalid"
}

// Writable returns false for modes that can only be read.
func (m AddressingMode) Writable() bool {
	return m != PCDisp && m != PCIndex && m != Immediate
}

// modeOf maps the opcode mode and register fields to an addressing mode.
func modeOf(mode, reg uint16) (AddressingMode, bool) {
	if mode < ModeOther {
		return AddressingMode(mode), true
	}

	if reg > RegImmediate {
		return 0, false
	}

	return AbsShort + AddressingMode(reg), true
}

// eaCategory is a set of addressing modes an instruction accepts.
type eaCategory uint16

func categoryOf(modes ...AddressingMode) eaCategory {
	var c eaCategory
	for _, m := range modes {
		c |= 1 << m
	}
	return c
}

func (c eaCategory) has(m AddressingMode) bool {
	return c&(1<<m) != 0
}

// Addressing categories as defined by the 68000 programmer's reference.
var (
	eaAll = categoryOf(DataDirect, AddrDirect, AddrIndirect, AddrPostInc, AddrPreDec,
		AddrDisp, AddrIndex, AbsShort, AbsLong, PCDisp, PCIndex, Immediate)
	eaData            = eaAll &^ categoryOf(AddrDirect)
	eaAlterable       = eaAll &^ categoryOf(PCDisp, PCIndex, Immediate)
	eaDataAlterable   = eaAlterable &^ categoryOf(AddrDirect)
	eaMemoryAlterable = eaDataAlterable &^ categoryOf(DataDirect)
	eaControl         = categoryOf(AddrIndirect, AddrDisp, AddrIndex, AbsShort, AbsLong, PCDisp, PCIndex)
)

// forEachEA calls fn for every mode/register pair in the category.
func forEachEA(c eaCategory, fn func(mode, reg uint16)) {
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			m, ok := modeOf(mode, reg)
			if ok && c.has(m) {
				fn(mode, reg)
			}
		}
	}
}
