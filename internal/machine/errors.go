package machine

import (
	"errors"
	"fmt"

	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

var (
	// ErrNoProgram is returned when stepping a machine that has no ROM loaded.
	ErrNoProgram = errors.New("no program loaded")

	// ErrHalted is returned when stepping a machine that stopped on a fatal error.
	ErrHalted = errors.New("machine halted")
)

// CapacityError is returned when a ROM does not fit into program memory.
type CapacityError struct {
	Size int // size of the rejected ROM in bytes
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("rom size %d exceeds available program memory of %d bytes", e.Size, MaxProgramSize)
}

// StackError is returned when a call overflows or a return underflows the call stack.
type StackError struct {
	Address  uint16 // address of the failing instruction
	Pointer  uint8  // stack pointer at the time of the failure
	Overflow bool   // true for CALL with a full stack, false for RET with an empty one
}

func (e *StackError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("stack overflow at $%04X: call depth exceeds %d", e.Address, StackDepth)
	}
	return fmt.Sprintf("stack underflow at $%04X: return without call", e.Address)
}

// Unwrap returns the matching CHIP-8 CPU sentinel error.
func (e *StackError) Unwrap() error {
	if e.Overflow {
		return cpu.ErrStackOverflow
	}
	return cpu.ErrStackUnderflow
}

// DecodeError is returned for opcodes that match no known instruction when
// the machine is configured to halt on them.
type DecodeError struct {
	Address uint16
	Opcode  uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown opcode $%04X at $%04X", e.Opcode, e.Address)
}

// MemoryError is returned when an instruction accesses memory outside of the address space.
type MemoryError struct {
	Address int // first address that is out of range
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("memory access at $%04X is out of range", e.Address)
}

func (e *MemoryError) Unwrap() error {
	return cpu.ErrMemoryOutOfBounds
}
