package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Cycles: 1000, CyclesPerTick: 10, Unknown: "halt", Seed: -1},
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Cycles: 1000, CyclesPerTick: 10, Unknown: "halt", Seed: -1},
			},
		},
		{
			name: "execution flags",
			args: []string{"prog", "-cycles", "0", "-tick", "20", "-unknown", "SKIP", "-keys", "5a", "-seed", "7", "-debug", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{CyclesPerTick: 20, Unknown: "skip", Keys: "5A", Seed: 7, Debug: true},
			},
		},
		{
			name: "output flags",
			args: []string{"prog", "-o", "frame.txt", "-listing", "pong.lst", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8", Output: "frame.txt", Listing: "pong.lst"},
				Flags:      options.Flags{Cycles: 1000, CyclesPerTick: 10, Unknown: "halt", Seed: -1},
			},
		},
		{
			name: "quirk flags",
			args: []string{"prog", "-shift-vy", "-inc-i", "-vf-reset", "-s", "chip8", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8", System: "chip8"},
				Flags:      options.Flags{Cycles: 1000, CyclesPerTick: 10, Unknown: "halt", Seed: -1},
				Quirks:     options.Quirks{ShiftFromVY: true, IncrementIndex: true, ResetFlagOnLogic: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_UsageError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no rom file", []string{"prog"}},
		{"flag after rom file", []string{"prog", "pong.ch8", "-debug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestNormalizeOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		expectError bool
	}{
		{
			name: "valid options",
			opts: options.Program{Flags: options.Flags{Unknown: "Halt", CyclesPerTick: 1, Keys: "0f"}},
		},
		{
			name:        "invalid policy",
			opts:        options.Program{Flags: options.Flags{Unknown: "ignore", CyclesPerTick: 1}},
			expectError: true,
		},
		{
			name:        "invalid key",
			opts:        options.Program{Flags: options.Flags{Unknown: "halt", CyclesPerTick: 1, Keys: "1G"}},
			expectError: true,
		},
		{
			name:        "zero tick ratio",
			opts:        options.Program{Flags: options.Flags{Unknown: "halt"}},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := normalizeOptions(&tt.opts)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
