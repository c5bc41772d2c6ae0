package cpu

import "testing"

func TestLogicalShiftRegister(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		d0, d1 uint32
		x      bool
		want   uint32
		ccr    uint8
	}{
		// LSL.B #1,D0
		{"lsl_byte_carry", 0xE308, 0x81, 0, false, 0x02, SRX | SRC},
		// LSR.W #8,D0 (count field 0)
		{"lsr_word_eight", 0xE048, 0xFFFF1280, 0, false, 0xFFFF0012, SRX | SRC},
		// LSR.W #1,D0
		{"lsr_word_zero", 0xE248, 0x0001, 0, false, 0x0000, SRX | SRZ | SRC},
		// LSL.L D1,D0 with a zero count keeps X and clears C.
		{"lsl_count_zero", 0xE3A8, 0x80000000, 0, true, 0x80000000, SRX | SRN},
		// LSL.L D1,D0 counts modulo 64.
		{"lsl_count_mod", 0xE3A8, 0x40000000, 65, false, 0x80000000, SRN},
		// LSL.L D1,D0 past the width clears everything.
		{"lsl_count_wide", 0xE3A8, 0xFFFFFFFF, 33, true, 0, SRZ},
		// LSR.L D1,D0 by exactly 32
		{"lsr_count_32", 0xE2A8, 0x80000000, 32, false, 0, SRX | SRZ | SRC},
	}

	for _, tc := range tests {
		c, _ := newTestCPU(t, tc.opcode)
		c.D[0], c.D[1] = tc.d0, tc.d1
		c.setFlag(SRX, tc.x)
		c.SR |= SRV
		run(t, c, 1)
		if c.D[0] != tc.want {
			t.Errorf("[%s] D0 = %08X, want %08X", tc.name, c.D[0], tc.want)
		}
		checkCCR(t, tc.name, c, tc.ccr)
	}
}

func TestLogicalShiftMemory(t *testing.T) {
	// LSL.W (A0)
	c, b := newTestCPU(t, 0xE3D0)
	c.A[0] = 0x3000
	b.Write(0x3000, 0x8001, SizeWord)
	run(t, c, 1)
	if v := b.Read(0x3000, SizeWord); v != 0x0002 {
		t.Errorf("(A0) = %04X, want 0002", v)
	}
	checkCCR(t, "lsl_mem", c, SRX|SRC)

	// LSR.W (A0)+
	c, b = newTestCPU(t, 0xE2D8)
	c.A[0] = 0x3000
	b.Write(0x3000, 0x8000, SizeWord)
	run(t, c, 1)
	if v := b.Read(0x3000, SizeWord); v != 0x4000 {
		t.Errorf("(A0) = %04X, want 4000", v)
	}
	if c.A[0] != 0x3002 {
		t.Errorf("A0 = %08X, want 00003002", c.A[0])
	}
	checkCCR(t, "lsr_mem", c, 0)
}
