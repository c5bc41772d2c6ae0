package bus_test

import (
	"errors"
	"testing"

	"github.com/Urethramancer/gen68k/bus"
	"github.com/Urethramancer/gen68k/cpu"
)

func TestReadWrite(t *testing.T) {
	r := bus.New(0x100)
	r.Write(0x10, 0x11223344, cpu.SizeLong)

	tests := []struct {
		addr uint32
		size cpu.Size
		want uint32
	}{
		{0x10, cpu.SizeLong, 0x11223344},
		{0x10, cpu.SizeWord, 0x1122},
		{0x12, cpu.SizeWord, 0x3344},
		{0x13, cpu.SizeByte, 0x44},
		// Upper address lines are not decoded.
		{0xFF000010, cpu.SizeLong, 0x11223344},
		// Past the end reads as zero.
		{0xFE, cpu.SizeLong, 0},
	}
	for _, tc := range tests {
		if got := r.Read(tc.addr, tc.size); got != tc.want {
			t.Errorf("Read(%08X, %s) = %08X, want %08X", tc.addr, tc.size, got, tc.want)
		}
	}

	r.Write(0x200, 0xFFFFFFFF, cpu.SizeLong)
	for _, b := range r.Bytes()[0x14:] {
		if b != 0 {
			t.Fatal("write past the end landed in memory")
		}
	}
}

func TestLoad(t *testing.T) {
	r := bus.New(8)
	if err := r.Load(4, []byte{1, 2, 3, 4, 5}); !errors.Is(err, bus.ErrOutOfRange) {
		t.Errorf("Load past end = %v, want ErrOutOfRange", err)
	}
	if err := r.Load(4, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v := r.ReadInterruptVector(4); v != 0x01020304 {
		t.Errorf("vector = %08X, want 01020304", v)
	}
}

func TestROMWindow(t *testing.T) {
	r := bus.New(0x100)
	if err := r.LoadROM(0x20, bus.WordsToBytes(0x4E71, 0x4E71)); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}

	r.Write(0x1F, 0xFFFF, cpu.SizeWord)
	r.Write(0x22, 0x1234, cpu.SizeWord)
	if v := r.Read(0x20, cpu.SizeLong); v != 0x4E714E71 {
		t.Errorf("ROM = %08X after writes", v)
	}
	r.Write(0x24, 0x1234, cpu.SizeWord)
	if v := r.Read(0x24, cpu.SizeWord); v != 0x1234 {
		t.Errorf("RAM after ROM = %04X, want 1234", v)
	}

	if err := r.Patch(0x22, 0x4E75); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if v := r.Read(0x22, cpu.SizeWord); v != 0x4E75 {
		t.Errorf("patched word = %04X, want 4E75", v)
	}
	if err := r.Patch(0xFF, 0); !errors.Is(err, bus.ErrOutOfRange) {
		t.Errorf("Patch past end = %v", err)
	}
}

func TestWords(t *testing.T) {
	b := bus.WordsToBytes(0x1234, 0xABCD)
	if len(b) != 4 || b[0] != 0x12 || b[3] != 0xCD {
		t.Fatalf("WordsToBytes = % X", b)
	}
	w := bus.BytesToWords([]byte{0x12, 0x34, 0x56})
	if len(w) != 2 || w[0] != 0x1234 || w[1] != 0x5600 {
		t.Errorf("BytesToWords = %04X", w)
	}
}

// A small program: count D0 down from 3 with SUBQ, subroutine call, TRAP to
// a handler that returns with RTE, then STOP.
func TestProgram(t *testing.T) {
	r := bus.New(0x10000)
	vectors := bus.WordsToBytes(
		0x0000, 0x8000, // initial SSP
		0x0000, 0x0400, // initial PC
	)
	if err := r.Load(0, vectors); err != nil {
		t.Fatal(err)
	}
	r.Write(0x80, 0x600, cpu.SizeLong) // TRAP #0

	prog := bus.WordsToBytes(
		0x7003,                 // moveq #3,d0
		0x4EB9, 0x0000, 0x0500, // jsr $500
		0x4E40,         // trap #0
		0x4E72, 0x2700, // stop #$2700
	)
	if err := r.LoadROM(0x400, prog); err != nil {
		t.Fatal(err)
	}
	sub := bus.WordsToBytes(
		0x5380, // subq.l #1,d0
		0x5380, // subq.l #1,d0
		0x4E75, // rts
	)
	handler := bus.WordsToBytes(
		0x5380, // subq.l #1,d0
		0x4E73, // rte
	)
	if err := r.Load(0x500, sub); err != nil {
		t.Fatal(err)
	}
	if err := r.Load(0x600, handler); err != nil {
		t.Fatal(err)
	}

	c := cpu.New(r, r)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	for i := 0; i < 20 && !c.Stopped(); i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	if !c.Stopped() {
		t.Fatal("program did not stop")
	}
	if c.D[0] != 0 || c.SR != 0x2700 {
		t.Errorf("D0 = %08X SR = %04X", c.D[0], c.SR)
	}
	if c.SSP != 0x8000 {
		t.Errorf("SSP = %08X, want 00008000", c.SSP)
	}
	if c.PC != 0x40E {
		t.Errorf("PC = %08X, want 0000040E", c.PC)
	}
}
