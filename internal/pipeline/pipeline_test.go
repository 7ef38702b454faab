package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func defaultOptions(input string) options.Program {
	return options.Program{
		Parameters: options.Parameters{Input: input},
		Flags: options.Flags{
			Cycles:        100,
			CyclesPerTick: 10,
			Unknown:       "halt",
			Seed:          1,
			Quiet:         true,
		},
	}
}

func TestNew(t *testing.T) {
	p := New(log.NewTestLogger(t))

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecute(t *testing.T) {
	// CLS, LD V0, 8, LD F, V0, DRW V0, V0, 5, JP $208
	rom := []byte{0x00, 0xE0, 0x60, 0x08, 0xF0, 0x29, 0xD0, 0x05, 0x12, 0x08}
	path := createTempFile(t, "glyph.ch8", rom)

	result, err := New(log.NewTestLogger(t)).Execute(context.Background(), defaultOptions(path))
	assert.NoError(t, err)
	assert.Equal(t, runner.ReasonHaltLoop, result.Reason)
	assert.Equal(t, uint64(4), result.Cycles)
	assert.Equal(t, 16, result.LitPixels)
}

func TestExecute_Outputs(t *testing.T) {
	rom := []byte{0x60, 0x00, 0xF0, 0x29, 0xD0, 0x05, 0x12, 0x06}
	dir := t.TempDir()

	opts := defaultOptions(createTempFile(t, "zero.ch8", rom))
	opts.Output = filepath.Join(dir, "frame.txt")
	opts.Listing = filepath.Join(dir, "zero.lst")

	_, err := New(log.NewTestLogger(t)).Execute(context.Background(), opts)
	assert.NoError(t, err)

	frame, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(frame), "\n"), "\n")
	assert.Len(t, lines, machine.DisplayHeight)
	assert.Equal(t, "####"+strings.Repeat(".", machine.DisplayWidth-4), lines[0])
	assert.Equal(t, "#..#"+strings.Repeat(".", machine.DisplayWidth-4), lines[1])

	listing, err := os.ReadFile(opts.Listing)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(listing), "; $0206  1206"))
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		rom        []byte
		modify     func(*options.Program)
		errContain string
	}{
		{
			name:       "unsupported system",
			file:       "game.nes",
			rom:        []byte{0x12, 0x00},
			errContain: "unsupported system",
		},
		{
			name:       "rom too large",
			file:       "large.ch8",
			rom:        make([]byte, machine.MaxProgramSize+1),
			errContain: "exceeds available program memory",
		},
		{
			name:       "invalid policy",
			file:       "game.ch8",
			rom:        []byte{0x12, 0x00},
			modify:     func(opts *options.Program) { opts.Unknown = "ignore" },
			errContain: "configuring machine",
		},
		{
			name:       "invalid keys",
			file:       "game.ch8",
			rom:        []byte{0x12, 0x00},
			modify:     func(opts *options.Program) { opts.Keys = "XY" },
			errContain: "parsing key sequence",
		},
		{
			name:       "unknown opcode",
			file:       "game.ch8",
			rom:        []byte{0xFF, 0xFF},
			errContain: "unknown opcode $FFFF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions(createTempFile(t, tt.file, tt.rom))
			if tt.modify != nil {
				tt.modify(&opts)
			}

			_, err := New(log.NewTestLogger(t)).Execute(context.Background(), opts)
			assert.ErrorContains(t, err, tt.errContain)
		})
	}
}

func TestExecuteWithROM_SkipUnknown(t *testing.T) {
	opts := defaultOptions("inline")
	opts.Unknown = "skip"
	opts.Cycles = 0

	result, err := New(log.NewTestLogger(t)).ExecuteWithROM(context.Background(), []byte{0xFF, 0xFF, 0x12, 0x02}, opts)
	assert.NoError(t, err)
	assert.Equal(t, runner.ReasonHaltLoop, result.Reason)
	assert.Equal(t, uint64(1), result.Cycles)
}

func TestExecuteWithROM_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(log.NewTestLogger(t)).ExecuteWithROM(ctx, []byte{0x12, 0x02, 0x12, 0x00}, defaultOptions("inline"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
