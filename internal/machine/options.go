package machine

import (
	"fmt"
	"strings"
)

// UnknownPolicy defines how the machine treats opcodes that decode to no
// known instruction.
type UnknownPolicy uint8

const (
	// UnknownHalt stops execution with a DecodeError.
	UnknownHalt UnknownPolicy = iota
	// UnknownSkip treats unknown opcodes as no-ops, each distinct opcode is logged once.
	UnknownSkip
)

// ParseUnknownPolicy converts a policy name as used on the command line.
func ParseUnknownPolicy(name string) (UnknownPolicy, error) {
	switch strings.ToLower(name) {
	case "", "halt":
		return UnknownHalt, nil
	case "skip":
		return UnknownSkip, nil
	default:
		return UnknownHalt, fmt.Errorf("unsupported unknown opcode policy '%s'", name)
	}
}

func (p UnknownPolicy) String() string {
	if p == UnknownSkip {
		return "skip"
	}
	return "halt"
}

// Quirks switch individual instructions to the behavior of other interpreter
// generations. The zero value selects the documented CHIP-48 era semantics.
type Quirks struct {
	ShiftFromVY      bool // SHR/SHL shift Vy and store the result in Vx
	IncrementIndex   bool // LD [I], Vx and LD Vx, [I] leave I pointing past the last register
	ResetFlagOnLogic bool // OR, AND and XOR clear VF
}

// Option configures a Machine.
type Option func(*Machine)

// WithUnknownPolicy sets how unknown opcodes are handled, the default is UnknownHalt.
func WithUnknownPolicy(policy UnknownPolicy) Option {
	return func(m *Machine) {
		m.policy = policy
	}
}

// WithQuirks enables interpreter compatibility quirks.
func WithQuirks(quirks Quirks) Option {
	return func(m *Machine) {
		m.quirks = quirks
	}
}

// WithSeed makes the random numbers of RND reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Machine) {
		m.seeded = true
		m.seed = seed
	}
}
