package cpu

import (
	"errors"
	"testing"
)

func TestMOVE(t *testing.T) {
	// MOVE.L #$12345678,D3
	c, _ := newTestCPU(t, 0x263C, 0x1234, 0x5678)
	c.SetCCR(SRX | SRV | SRC)
	run(t, c, 1)
	if c.D[3] != 0x12345678 {
		t.Errorf("D3 = %08X, want 12345678", c.D[3])
	}
	checkCCR(t, "move_imm", c, SRX)
	if c.PC != testOrigin+6 {
		t.Errorf("PC = %08X, want %08X", c.PC, testOrigin+6)
	}

	// MOVE.B D0,D1 leaves the upper bytes alone.
	c, _ = newTestCPU(t, 0x1200)
	c.D[0], c.D[1] = 0x80, 0xFFFFFF00
	run(t, c, 1)
	if c.D[1] != 0xFFFFFF80 {
		t.Errorf("D1 = %08X, want FFFFFF80", c.D[1])
	}
	checkCCR(t, "move_byte", c, SRN)
}

func TestMOVEExtensionOrder(t *testing.T) {
	// MOVE.W ($0004,A1),($0008,A0): source displacement first.
	c, b := newTestCPU(t, 0x3169, 0x0004, 0x0008)
	c.A[0], c.A[1] = 0x3000, 0x3100
	b.Write(0x3104, 0xBEEF, SizeWord)
	run(t, c, 1)
	if v := b.Read(0x3008, SizeWord); v != 0xBEEF {
		t.Errorf("($0008,A0) = %04X, want BEEF", v)
	}
	if c.PC != testOrigin+6 {
		t.Errorf("PC = %08X, want %08X", c.PC, testOrigin+6)
	}
}

func TestMOVEPostIncrement(t *testing.T) {
	// MOVE.W D0,(A0)+
	c, b := newTestCPU(t, 0x30C0)
	c.A[0] = 0x3000
	c.D[0] = 0x1234
	run(t, c, 1)
	if v := b.Read(0x3000, SizeWord); v != 0x1234 {
		t.Errorf("(A0) = %04X, want 1234", v)
	}
	if c.A[0] != 0x3002 {
		t.Errorf("A0 = %08X, want 00003002", c.A[0])
	}
}

func TestMOVEA(t *testing.T) {
	// MOVEA.W D0,A1
	c, _ := newTestCPU(t, 0x3240)
	c.D[0] = 0x00008000
	c.SetCCR(SRZ)
	run(t, c, 1)
	if c.A[1] != 0xFFFF8000 {
		t.Errorf("A1 = %08X, want FFFF8000", c.A[1])
	}
	checkCCR(t, "movea", c, SRZ)
}

func TestMOVEQ(t *testing.T) {
	// MOVEQ #-1,D7
	c, _ := newTestCPU(t, 0x7EFF)
	run(t, c, 1)
	if c.D[7] != 0xFFFFFFFF {
		t.Errorf("D7 = %08X, want FFFFFFFF", c.D[7])
	}
	checkCCR(t, "moveq", c, SRN)
}

func TestMOVEToSRSwitchesStack(t *testing.T) {
	// MOVE #$0000,SR
	c, _ := newTestCPU(t, 0x46FC, 0x0000)
	if c.Addr(7) != testSSP {
		t.Fatalf("A7 = %08X before, want SSP", c.Addr(7))
	}
	run(t, c, 1)
	if c.Supervisor() {
		t.Fatal("still in supervisor mode")
	}
	if c.Addr(7) != testUSP {
		t.Errorf("A7 = %08X, want USP %08X", c.Addr(7), testUSP)
	}
	if c.SSP != testSSP {
		t.Errorf("SSP = %08X, want %08X", c.SSP, testSSP)
	}
}

func TestMOVEToSRPrivilege(t *testing.T) {
	c, _ := newTestCPU(t, 0x46FC, 0x2700)
	c.SetSR(0)
	err := c.Step()
	if !errors.Is(err, ErrPrivilege) {
		t.Fatalf("MOVE to SR in user mode = %v, want ErrPrivilege", err)
	}
	if !errors.Is(err, ErrIllegalOperation) {
		t.Error("privilege violation is not an illegal operation")
	}
	if c.SR != 0 || c.PC != testOrigin {
		t.Errorf("SR = %04X PC = %08X", c.SR, c.PC)
	}
}

func TestMOVEToAndFromCCR(t *testing.T) {
	// MOVE #$FFFF,CCR
	c, _ := newTestCPU(t, 0x44FC, 0xFFFF)
	run(t, c, 1)
	if c.SR != SRS|SRI2|SRI1|SRI0|ccrMask {
		t.Errorf("SR = %04X", c.SR)
	}

	// MOVE SR,D0
	c, _ = newTestCPU(t, 0x40C0)
	c.D[0] = 0xAAAA0000
	c.SetCCR(SRZ)
	run(t, c, 1)
	if c.D[0] != 0xAAAA2704 {
		t.Errorf("D0 = %08X, want AAAA2704", c.D[0])
	}
}
