package cpu

import "testing"

func TestNBCD(t *testing.T) {
	tests := []struct {
		name string
		d0   uint32
		x, z bool
		want uint32
		ccr  uint8
	}{
		{"one", 0x01, false, true, 0x99, SRX | SRN | SRC},
		{"one_with_extend", 0x01, true, true, 0x98, SRX | SRN | SRC},
		{"tens", 0x10, false, true, 0x90, SRX | SRN | SRC},
		{"mixed", 0x25, false, false, 0x75, SRX | SRC},
		{"zero_keeps_z", 0x00, false, true, 0x00, SRZ},
		{"zero_keeps_z_clear", 0x00, false, false, 0x00, 0},
		{"zero_extend", 0x00, true, true, 0x99, SRX | SRN | SRC},
		{"upper_untouched", 0xABCD0001, false, false, 0xABCD0099, SRX | SRN | SRC},
	}

	for _, tc := range tests {
		// NBCD D0
		c, _ := newTestCPU(t, 0x4800)
		c.D[0] = tc.d0
		c.setFlag(SRX, tc.x)
		c.setFlag(SRZ, tc.z)
		c.SR |= SRV
		run(t, c, 1)
		if c.D[0] != tc.want {
			t.Errorf("[%s] D0 = %08X, want %08X", tc.name, c.D[0], tc.want)
		}
		checkCCR(t, tc.name, c, tc.ccr)
	}
}

func TestNBCDMultiByte(t *testing.T) {
	// Negate the BCD number 0100 held big-endian at $3000 with
	// NBCD -(A0) twice.
	c, b := newTestCPU(t, 0x4820, 0x4820)
	c.A[0] = 0x3002
	b.Write(0x3000, 0x0100, SizeWord)
	c.SetCCR(SRZ)
	run(t, c, 2)
	if v := b.Read(0x3000, SizeWord); v != 0x9900 {
		t.Errorf("result = %04X, want 9900", v)
	}
	checkCCR(t, "nbcd_multi", c, SRX|SRN|SRC)
}
