package machine

import (
	"testing"

	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestSetKey(t *testing.T) {
	m := newMachine(t, nil)

	assert.NoError(t, m.SetKey(0xF, true))
	assert.True(t, m.Key(0xF))
	assert.True(t, m.Keys()[0xF])

	assert.NoError(t, m.SetKey(0xF, false))
	assert.False(t, m.Key(0xF))

	assert.ErrorIs(t, m.SetKey(KeyCount, true), cpu.ErrKeyIndexOutOfBounds)
}

func TestExecute_SkipOnKey(t *testing.T) {
	tests := []struct {
		name    string
		op      uint16
		pressed bool
		skipped bool
	}{
		{"SKP pressed", 0xE09E, true, true},
		{"SKP released", 0xE09E, false, false},
		{"SKNP pressed", 0xE0A1, true, false},
		{"SKNP released", 0xE0A1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(t, []uint16{0x6007, tt.op})
			assert.NoError(t, m.SetKey(7, tt.pressed))
			run(t, m, 2)

			expected := uint16(0x204)
			if tt.skipped {
				expected += 2
			}
			assert.Equal(t, expected, m.PC())
		})
	}
}

func TestExecute_WaitKey(t *testing.T) {
	m := newMachine(t, []uint16{0xF30A, 0x6001})

	status, err := m.Step()
	assert.NoError(t, err)
	assert.Equal(t, StatusBlocked, status)
	assert.Equal(t, uint16(ProgramStart), m.PC())

	status, err = m.Step()
	assert.NoError(t, err)
	assert.Equal(t, StatusBlocked, status)
	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, StatusBlocked, m.Status())

	assert.NoError(t, m.SetKey(0xB, true))
	status, err = m.Step()
	assert.NoError(t, err)
	assert.Equal(t, StatusRunning, status)
	assert.Equal(t, uint8(0xB), m.Register(3))
	assert.Equal(t, uint16(0x202), m.PC())

	run(t, m, 1)
	assert.Equal(t, uint8(1), m.Register(0))
}

func TestExecute_WaitKeyNeedsTransition(t *testing.T) {
	m := newMachine(t, []uint16{0xF30A})
	assert.NoError(t, m.SetKey(2, true))

	// a key held down before the wait started does not count
	status, err := m.Step()
	assert.NoError(t, err)
	assert.Equal(t, StatusBlocked, status)
	status, err = m.Step()
	assert.NoError(t, err)
	assert.Equal(t, StatusBlocked, status)

	// releasing and pressing it again completes the wait
	assert.NoError(t, m.SetKey(2, false))
	status, err = m.Step()
	assert.NoError(t, err)
	assert.Equal(t, StatusBlocked, status)

	assert.NoError(t, m.SetKey(2, true))
	status, err = m.Step()
	assert.NoError(t, err)
	assert.Equal(t, StatusRunning, status)
	assert.Equal(t, uint8(2), m.Register(3))
}

func TestExecute_WaitKeyKeepsTimers(t *testing.T) {
	m := newMachine(t, []uint16{0xF00A})
	m.SetDelayTimer(3)

	_, err := m.Step()
	assert.NoError(t, err)
	m.TickTimers()
	_, err = m.Step()
	assert.NoError(t, err)

	assert.Equal(t, uint8(2), m.DelayTimer())
}
