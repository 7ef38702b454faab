package machine

import (
	"fmt"

	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// keyWait tracks an LD Vx, K instruction that waits for a key press.
type keyWait struct {
	active bool
	held   [KeyCount]bool // keys that were already down when the wait started
}

// SetKey sets the state of one key of the hexadecimal keypad.
func (m *Machine) SetKey(key uint8, pressed bool) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: key %d, keypad has %d keys", cpu.ErrKeyIndexOutOfBounds, key, KeyCount)
	}
	m.keys[key] = pressed
	return nil
}

// Key returns whether the given key is pressed. Keys are masked to 0-F.
func (m *Machine) Key(key uint8) bool {
	return m.keys[key&0xF]
}

// Keys returns a copy of the keypad state.
func (m *Machine) Keys() [KeyCount]bool {
	return m.keys
}

// waitKey implements LD Vx, K. The first execution records the keys that
// are already held down, the instruction completes once a key is pressed that
// was not down before. Keys released in between become eligible again.
func (m *Machine) waitKey(address uint16, x uint8) Status {
	if !m.wait.active {
		m.wait = keyWait{active: true, held: m.keys}
		m.pc = address
		return StatusBlocked
	}

	for key, pressed := range m.keys {
		if pressed && !m.wait.held[key] {
			m.v[x] = uint8(key)
			m.wait = keyWait{}
			return StatusRunning
		}
		if !pressed {
			m.wait.held[key] = false
		}
	}

	m.pc = address
	return StatusBlocked
}
