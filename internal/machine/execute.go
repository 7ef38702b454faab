package machine

import (
	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/log"
)

// execute applies a decoded instruction. address is the location the
// instruction was fetched from, the program counter already points past it.
func (m *Machine) execute(address uint16, ins chip8.Instruction) (Status, error) {
	x, y := ins.X, ins.Y

	switch ins.Kind {
	case chip8.KindSys:
		// machine code routines of the host computer are ignored

	case chip8.KindClearScreen:
		m.clearDisplay()

	case chip8.KindReturn:
		if m.sp == 0 {
			return StatusHalted, &StackError{Address: address, Pointer: m.sp}
		}
		m.sp--
		m.pc = m.stack[m.sp]

	case chip8.KindJump:
		m.pc = ins.Address

	case chip8.KindCall:
		if int(m.sp) >= StackDepth {
			return StatusHalted, &StackError{Address: address, Pointer: m.sp, Overflow: true}
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.pc = ins.Address

	case chip8.KindSkipEqualImmediate:
		m.skipIf(m.v[x] == ins.Immediate)

	case chip8.KindSkipNotEqualImmediate:
		m.skipIf(m.v[x] != ins.Immediate)

	case chip8.KindSkipEqualRegister:
		m.skipIf(m.v[x] == m.v[y])

	case chip8.KindSkipNotEqualRegister:
		m.skipIf(m.v[x] != m.v[y])

	case chip8.KindLoadImmediate:
		m.v[x] = ins.Immediate

	case chip8.KindAddImmediate:
		m.v[x] += ins.Immediate

	case chip8.KindLoadRegister:
		m.v[x] = m.v[y]

	case chip8.KindOr, chip8.KindAnd, chip8.KindXor:
		m.logic(ins.Kind, x, y)

	case chip8.KindAddRegister:
		sum := uint16(m.v[x]) + uint16(m.v[y])
		m.setWithFlag(x, uint8(sum), sum > 0xFF)

	case chip8.KindSub:
		m.setWithFlag(x, m.v[x]-m.v[y], m.v[x] >= m.v[y])

	case chip8.KindSubReverse:
		m.setWithFlag(x, m.v[y]-m.v[x], m.v[y] >= m.v[x])

	case chip8.KindShiftRight:
		source := m.shiftSource(x, y)
		m.setWithFlag(x, source>>1, source&0x01 != 0)

	case chip8.KindShiftLeft:
		source := m.shiftSource(x, y)
		m.setWithFlag(x, source<<1, source&0x80 != 0)

	case chip8.KindLoadIndex:
		m.index = ins.Address

	case chip8.KindJumpOffset:
		m.pc = ins.Address + uint16(m.v[0])

	case chip8.KindRandom:
		m.v[x] = uint8(m.random.Uint32()) & ins.Immediate

	case chip8.KindDraw:
		sprite, err := m.read(m.index, int(ins.Nibble))
		if err != nil {
			return StatusHalted, err
		}
		collision := m.draw(m.v[x], m.v[y], sprite)
		m.v[FlagRegister] = flag(collision)

	case chip8.KindSkipKeyPressed:
		m.skipIf(m.keys[m.v[x]&0xF])

	case chip8.KindSkipKeyNotPressed:
		m.skipIf(!m.keys[m.v[x]&0xF])

	case chip8.KindLoadDelayTimer:
		m.v[x] = m.delay

	case chip8.KindWaitKey:
		return m.waitKey(address, x), nil

	case chip8.KindSetDelayTimer:
		m.delay = m.v[x]

	case chip8.KindSetSoundTimer:
		m.sound = m.v[x]

	case chip8.KindAddIndex:
		m.index += uint16(m.v[x])

	case chip8.KindLoadFont:
		m.index = FontAddress + uint16(m.v[x]&0xF)*FontGlyphSize

	case chip8.KindStoreBCD:
		digits, err := m.read(m.index, 3)
		if err != nil {
			return StatusHalted, err
		}
		value := m.v[x]
		digits[0] = value / 100
		digits[1] = value / 10 % 10
		digits[2] = value % 10

	case chip8.KindStoreRegisters:
		block, err := m.read(m.index, int(x)+1)
		if err != nil {
			return StatusHalted, err
		}
		copy(block, m.v[:x+1])
		m.advanceIndex(x)

	case chip8.KindLoadRegisters:
		block, err := m.read(m.index, int(x)+1)
		if err != nil {
			return StatusHalted, err
		}
		copy(m.v[:x+1], block)
		m.advanceIndex(x)

	default:
		return m.unknown(address, ins)
	}

	return StatusRunning, nil
}

// skipIf skips the next instruction when the condition holds.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += chip8.OpcodeSize
	}
}

// setWithFlag writes the result before the flag so that VF holds the flag
// when it is also the destination register.
func (m *Machine) setWithFlag(x, result uint8, on bool) {
	m.v[x] = result
	m.v[FlagRegister] = flag(on)
}

func (m *Machine) logic(kind chip8.Kind, x, y uint8) {
	switch kind {
	case chip8.KindOr:
		m.v[x] |= m.v[y]
	case chip8.KindAnd:
		m.v[x] &= m.v[y]
	default:
		m.v[x] ^= m.v[y]
	}

	if m.quirks.ResetFlagOnLogic {
		m.v[FlagRegister] = 0
	}
}

func (m *Machine) shiftSource(x, y uint8) uint8 {
	if m.quirks.ShiftFromVY {
		return m.v[y]
	}
	return m.v[x]
}

func (m *Machine) advanceIndex(x uint8) {
	if m.quirks.IncrementIndex {
		m.index += uint16(x) + 1
	}
}

func (m *Machine) unknown(address uint16, ins chip8.Instruction) (Status, error) {
	if m.policy == UnknownHalt {
		return StatusHalted, &DecodeError{Address: address, Opcode: ins.Opcode}
	}

	if !m.skipped.Contains(ins.Opcode) {
		m.skipped.Add(ins.Opcode)
		m.logger.Warn("Skipping unknown opcode",
			log.Hex("address", address),
			log.Hex("opcode", ins.Opcode))
	}
	return StatusRunning, nil
}

func flag(on bool) uint8 {
	if on {
		return 1
	}
	return 0
}
