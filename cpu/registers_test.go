package cpu

import "testing"

func TestStackPointerAlias(t *testing.T) {
	var r Registers
	r.SR = SRS
	r.SetAddr(7, 0x8000)
	r.SR = 0
	r.SetAddr(7, 0x6000)

	if r.SSP != 0x8000 || r.USP != 0x6000 {
		t.Fatalf("SSP = %08X USP = %08X", r.SSP, r.USP)
	}
	if r.Addr(7) != 0x6000 {
		t.Errorf("user A7 = %08X, want 00006000", r.Addr(7))
	}
	r.SR = SRS
	if r.Addr(7) != 0x8000 {
		t.Errorf("supervisor A7 = %08X, want 00008000", r.Addr(7))
	}
}

func TestDataRegisterSizes(t *testing.T) {
	tests := []struct {
		size Size
		v    uint32
		want uint32
	}{
		{SizeByte, 0xFFFFFF01, 0xAABBCC01},
		{SizeWord, 0xFFFF0102, 0xAABB0102},
		{SizeLong, 0x01020304, 0x01020304},
	}
	for _, tc := range tests {
		var r Registers
		r.D[0] = 0xAABBCCDD
		r.WriteD(0, tc.size, tc.v)
		if r.D[0] != tc.want {
			t.Errorf("WriteD.%s = %08X, want %08X", tc.size, r.D[0], tc.want)
		}
		if got := r.ReadD(0, tc.size); got != tc.want&tc.size.Mask() {
			t.Errorf("ReadD.%s = %08X", tc.size, got)
		}
	}
}

func TestSetCCR(t *testing.T) {
	r := Registers{SR: 0xA71F}
	r.SetCCR(0xE4)
	if r.SR != 0xA704 {
		t.Errorf("SR = %04X, want A704", r.SR)
	}
	if r.CCR() != SRZ {
		t.Errorf("CCR = %02X, want %02X", r.CCR(), SRZ)
	}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		size      Size
		msb, mask uint32
		bytes     int
	}{
		{SizeByte, 0x80, 0xFF, 1},
		{SizeWord, 0x8000, 0xFFFF, 2},
		{SizeLong, 0x80000000, 0xFFFFFFFF, 4},
	}
	for _, tc := range tests {
		if tc.size.MSB() != tc.msb || tc.size.Mask() != tc.mask || tc.size.Bytes() != tc.bytes {
			t.Errorf("%s: MSB %X Mask %X Bytes %d", tc.size, tc.size.MSB(), tc.size.Mask(), tc.size.Bytes())
		}
	}
	if SizeFromMoveBits(3) != SizeWord || SizeFromOpMode(6) != SizeLong || SizeFromBits(0) != SizeByte {
		t.Error("size field decoding")
	}
}
