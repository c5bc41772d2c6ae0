package cpu

// Opcodes for the implemented instruction families. Variable fields are
// OR'd in by the generators.
const (
	// Immediate and status register instructions
	OPORI       = 0x0000 // ORI
	OPORItoCCR  = 0x003C // ORI to CCR
	OPORItoSR   = 0x007C // ORI to SR (privileged)
	OPANDItoCCR = 0x023C // ANDI to CCR
	OPANDItoSR  = 0x027C // ANDI to SR (privileged)
	OPEORItoCCR = 0x0A3C // EORI to CCR
	OPEORItoSR  = 0x0A7C // EORI to SR (privileged)
	OPCMPI      = 0x0C00 // CMPI

	// Move instructions
	OPMOVEB      = 0x1000 // MOVE.B
	OPMOVEL      = 0x2000 // MOVE.L
	OPMOVEW      = 0x3000 // MOVE.W
	OPMOVEFromSR = 0x40C0 // MOVE from SR
	OPMOVEToCCR  = 0x44C0 // MOVE to CCR
	OPMOVEToSR   = 0x46C0 // MOVE to SR (privileged)
	OPMOVEQ      = 0x7000 // MOVEQ

	// Single operand instructions
	OPNOT  = 0x4600 // NOT
	OPNBCD = 0x4800 // NBCD
	OPEXTW = 0x4880 // EXT.W
	OPEXTL = 0x48C0 // EXT.L
	OPTST  = 0x4A00 // TST

	// Control instructions
	OPTRAP = 0x4E40 // TRAP
	OPNOP  = 0x4E71 // NOP
	OPSTOP = 0x4E72 // STOP
	OPRTE  = 0x4E73 // RTE
	OPRTS  = 0x4E75 // RTS
	OPRTR  = 0x4E77 // RTR
	OPJSR  = 0x4E80 // JSR
	OPJMP  = 0x4EC0 // JMP

	// Arithmetic instructions
	OPADDQ = 0x5000 // ADDQ
	OPSUBQ = 0x5100 // SUBQ
	OPOR   = 0x8000 // OR
	OPCMP  = 0xB000 // CMP
	OPCMPA = 0xB0C0 // CMPA (word; long adds 0x0100)
	OPCMPM = 0xB108 // CMPM
	OPADD  = 0xD000 // ADD
	OPADDA = 0xD0C0 // ADDA (word; long adds 0x0100)

	// Shift instructions
	OPLSRReg = 0xE008 // LSR Dx/#,Dy
	OPLSLReg = 0xE108 // LSL Dx/#,Dy
	OPLSRMem = 0xE2C0 // LSR <ea>
	OPLSLMem = 0xE3C0 // LSL <ea>
)

// Vector numbers used by the exception sequence.
const (
	VecIllegalInstruction = 4
	VecPrivilegeViolation = 8
	VecTrap0              = 32
)

// generators install every instruction family into a table.
var generators = []func(*builder){
	generateImmediateSR,
	generateORI,
	generateCMPI,
	generateMOVE,
	generateMOVESR,
	generateNOT,
	generateNBCD,
	generateEXT,
	generateTST,
	generateControl,
	generateTRAP,
	generateJumps,
	generateQuick,
	generateMOVEQ,
	generateOR,
	generateCMP,
	generateADD,
	generateShifts,
}

// eaFields extracts the mode and register of the effective address in bits 5-0.
func eaFields(opcode uint16) (mode, reg uint16) {
	return (opcode >> 3) & 7, opcode & 7
}

// regField extracts the register in bits 11-9.
func regField(opcode uint16) uint16 {
	return (opcode >> 9) & 7
}

// fetchImmediate reads the immediate operand following the opcode.
func (c *CPU) fetchImmediate(size Size) uint32 {
	o, _ := c.Resolve(size, ModeOther, RegImmediate)
	return o.Read(c)
}
