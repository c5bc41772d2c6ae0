package cpu

import "testing"

const (
	testOrigin = 0x1000
	testSSP    = 0x8000
	testUSP    = 0x6000
)

// testBus is 64 KiB of big-endian memory mirrored across the address space.
type testBus struct {
	mem [0x10000]byte
}

func (b *testBus) Read(addr uint32, size Size) uint32 {
	var v uint32
	for i := 0; i < size.Bytes(); i++ {
		v = v<<8 | uint32(b.mem[(addr+uint32(i))&0xFFFF])
	}
	return v
}

func (b *testBus) Write(addr uint32, value uint32, size Size) {
	for i := size.Bytes() - 1; i >= 0; i-- {
		b.mem[(addr+uint32(i))&0xFFFF] = byte(value)
		value >>= 8
	}
}

// newTestCPU loads words at testOrigin and returns a supervisor-mode CPU
// with PC on the first word.
func newTestCPU(t *testing.T, words ...uint16) (*CPU, *testBus) {
	t.Helper()

	b := &testBus{}
	for i, w := range words {
		b.Write(testOrigin+uint32(i*2), uint32(w), SizeWord)
	}

	c := New(b, nil)
	c.PC = testOrigin
	c.SSP = testSSP
	c.USP = testUSP
	return c, b
}

// run executes n instructions and fails the test on any error.
func run(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

// checkCCR compares the condition codes against want, formatted as XNZVC.
func checkCCR(t *testing.T, name string, c *CPU, want uint8) {
	t.Helper()
	if got := c.CCR(); got != want {
		t.Errorf("[%s] CCR = %05b, want %05b", name, got, want)
	}
}
