package cpu

import "fmt"

// Handler executes one instruction. It gets the concrete opcode and decodes
// its own fields from it.
type Handler func(c *CPU, opcode uint16) error

// Table maps every opcode to its handler. Empty slots are illegal opcodes.
type Table [0x10000]Handler

// defaultTable is shared by every CPU created with New.
var defaultTable = mustTable()

func mustTable() *Table {
	t, err := NewTable()
	if err != nil {
		panic(fmt.Sprintf("cpu: building instruction table: %v", err))
	}
	return t
}

// NewTable builds a table with every implemented instruction installed.
func NewTable() (*Table, error) {
	b := &builder{t: &Table{}}
	for _, gen := range generators {
		gen(b)
		if b.err != nil {
			return nil, b.err
		}
	}
	return b.t, nil
}

// AddInstruction installs h at opcode. A populated slot is a configuration error.
func (t *Table) AddInstruction(opcode uint16, h Handler) error {
	if t[opcode] != nil {
		return fmt.Errorf("%04X: %w", opcode, ErrDuplicateOpcode)
	}

	t[opcode] = h
	return nil
}

// Lookup returns the handler for opcode, or nil for an illegal opcode.
func (t *Table) Lookup(opcode uint16) Handler {
	return t[opcode]
}

// Count returns the number of populated slots.
func (t *Table) Count() int {
	n := 0
	for _, h := range t {
		if h != nil {
			n++
		}
	}
	return n
}

// builder keeps the first registration error so generators stay loop-shaped.
type builder struct {
	t   *Table
	err error
}

func (b *builder) add(opcode uint16, h Handler) {
	if b.err != nil {
		return
	}
	b.err = b.t.AddInstruction(opcode, h)
}
