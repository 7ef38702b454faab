package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestMachineOptions(t *testing.T) {
	opts := options.Program{
		Flags:  options.Flags{Unknown: "skip", Seed: 3},
		Quirks: options.Quirks{ShiftFromVY: true},
	}

	machineOptions, err := MachineOptions(opts)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(machineOptions))

	// unknown opcodes are skipped and SHR uses Vy
	m := machine.New(log.NewTestLogger(t), machineOptions...)
	assert.NoError(t, m.Load([]byte{0x5A, 0xB1, 0x61, 0x03, 0x80, 0x16}))
	for range 3 {
		_, err := m.Step()
		assert.NoError(t, err)
	}
	assert.Equal(t, uint8(0x01), m.Register(0))
	assert.Equal(t, uint8(1), m.Register(machine.FlagRegister))
}

func TestMachineOptions_RandomSeed(t *testing.T) {
	machineOptions, err := MachineOptions(options.Program{Flags: options.Flags{Seed: -1}})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(machineOptions))
}

func TestMachineOptions_InvalidPolicy(t *testing.T) {
	_, err := MachineOptions(options.Program{Flags: options.Flags{Unknown: "ignore"}})
	assert.ErrorContains(t, err, "unknown opcode policy")
}
