// Package machine implements the CHIP-8 virtual machine: the CPU state and a
// single step fetch-decode-execute cycle.
//
// A Machine is not safe for concurrent use. Keypad updates, timer ticks and
// display reads have to be serialized with calls to Step by the owner.
package machine

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Machine owns the complete CHIP-8 CPU state.
type Machine struct {
	logger *log.Logger
	policy UnknownPolicy
	quirks Quirks
	seeded bool
	seed   uint64
	random *rand.Rand

	memory  [MemorySize]byte
	v       [RegisterCount]uint8
	index   uint16
	pc      uint16
	sp      uint8
	stack   [StackDepth]uint16
	delay   uint8
	sound   uint8
	keys    [KeyCount]bool
	display [DisplaySize]bool

	loaded  bool
	status  Status
	err     error // fatal error that halted the machine
	cycles  uint64
	wait    keyWait
	skipped set.Set[uint16] // unknown opcodes that were already reported
}

// New returns a machine with zeroed state and the font glyphs loaded.
// A ROM has to be loaded before the machine can be stepped.
func New(logger *log.Logger, options ...Option) *Machine {
	m := &Machine{
		logger: logger,
	}
	for _, option := range options {
		option(m)
	}
	m.Reset()
	return m
}

// Reset restores the machine to its just constructed state. Options passed
// to New are kept, a seeded random source restarts its sequence.
func (m *Machine) Reset() {
	m.random = m.newRandom()
	m.memory = [MemorySize]byte{}
	copy(m.memory[FontAddress:], font[:])

	m.v = [RegisterCount]uint8{}
	m.index = 0
	m.pc = 0
	m.sp = 0
	m.stack = [StackDepth]uint16{}
	m.delay = 0
	m.sound = 0
	m.keys = [KeyCount]bool{}
	m.display = [DisplaySize]bool{}

	m.loaded = false
	m.status = StatusRunning
	m.err = nil
	m.cycles = 0
	m.wait = keyWait{}
	m.skipped = set.New[uint16]()
}

// Load resets the machine, copies the ROM into memory at ProgramStart and
// points the program counter to it.
func (m *Machine) Load(rom []byte) error {
	if len(rom)+ProgramStart > MemorySize {
		return &CapacityError{Size: len(rom)}
	}

	m.Reset()
	copy(m.memory[ProgramStart:], rom)
	m.pc = ProgramStart
	m.sp = 0
	m.loaded = true

	m.logger.Debug("Loaded program",
		log.Int("size", len(rom)),
		log.Hex("address", ProgramStart))
	return nil
}

// Step executes a single instruction. It fetches the big-endian word at the
// program counter, advances the program counter by 2, decodes the word and
// applies the instruction.
//
// StatusBlocked is returned while LD Vx, K waits for a key press, the program
// counter stays on the instruction in that case. Fatal errors halt the machine
// until Reset or Load is called.
func (m *Machine) Step() (Status, error) {
	if m.status == StatusHalted {
		return StatusHalted, fmt.Errorf("%w: %w", ErrHalted, m.err)
	}
	if !m.loaded {
		return m.status, ErrNoProgram
	}

	address := m.pc
	data, err := m.read(address, chip8.OpcodeSize)
	if err != nil {
		return m.halt(fmt.Errorf("fetching instruction: %w", err))
	}
	opcode := chip8.Word(data[0], data[1])
	m.pc += chip8.OpcodeSize

	ins := chip8.Decode(opcode)
	if m.logger.Enabled(context.Background(), log.DebugLevel) {
		m.logExecution(address, ins)
	}

	status, err := m.execute(address, ins)
	if err != nil {
		return m.halt(err)
	}

	m.cycles++
	m.status = status
	return status, nil
}

// logExecution logs an instruction before it is executed, memory accessing
// instructions include the address register.
func (m *Machine) logExecution(address uint16, ins chip8.Instruction) {
	fields := []log.Field{
		log.Hex("address", address),
		log.Hex("opcode", ins.Opcode),
		log.String("instruction", ins.Kind.String()),
	}
	if ins.ReadsMemory() || ins.WritesMemory() {
		fields = append(fields, log.Hex("index", m.index))
	}
	m.logger.Debug("Executing instruction", fields...)
}

func (m *Machine) newRandom() *rand.Rand {
	if m.seeded {
		return rand.New(rand.NewPCG(m.seed, m.seed^0x9E3779B97F4A7C15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (m *Machine) halt(err error) (Status, error) {
	m.status = StatusHalted
	m.err = err
	return StatusHalted, err
}

// read returns a view of size bytes of memory starting at address.
func (m *Machine) read(address uint16, size int) ([]byte, error) {
	start := int(address)
	end := start + size
	if end > MemorySize {
		return nil, &MemoryError{Address: max(start, MemorySize)}
	}
	return m.memory[start:end], nil
}

// Status returns the execution state after the last step.
func (m *Machine) Status() Status {
	return m.status
}

// Err returns the fatal error that halted the machine, if any.
func (m *Machine) Err() error {
	return m.err
}

// Cycles returns the number of instructions executed since the last reset.
// Steps that end blocked on a key press are counted as well.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Index returns the address register I.
func (m *Machine) Index() uint16 {
	return m.index
}

// SP returns the stack pointer.
func (m *Machine) SP() uint8 {
	return m.sp
}

// Register returns the value of register Vx, the index is masked to 0-F.
func (m *Machine) Register(x uint8) uint8 {
	return m.v[x&0xF]
}

// Memory returns the byte at the given address.
func (m *Machine) Memory(address uint16) (byte, error) {
	data, err := m.read(address, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}
