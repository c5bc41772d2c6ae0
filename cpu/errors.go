package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalOperation is returned when an instruction cannot be carried out,
	// such as a write through a read-only addressing mode.
	ErrIllegalOperation = errors.New("illegal operation")
	// ErrPrivilege is returned when a privileged instruction runs in user mode.
	ErrPrivilege = fmt.Errorf("privilege violation: %w", ErrIllegalOperation)
	// ErrUnimplemented is returned when the dispatch table has no handler for an opcode.
	ErrUnimplemented = errors.New("unimplemented opcode")
	// ErrDuplicateOpcode is returned when two generators claim the same opcode.
	ErrDuplicateOpcode = errors.New("opcode already registered")
	// ErrInvalidMode is returned for a mode/register pair the ISA does not define.
	ErrInvalidMode = errors.New("invalid addressing mode")
)

// ExecError reports an instruction that could not be executed.
// The run loop can inspect Err with errors.Is and raise the matching exception.
type ExecError struct {
	// Opcode that failed.
	Opcode uint16
	// PC of the failing opcode word.
	PC uint32
	// Err is the underlying condition.
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("opcode %04X at %08X: %v", e.Opcode, e.PC, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
