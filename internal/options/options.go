// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input   string `flag:"i" usage:"input ROM file"`
	Output  string `flag:"o" usage:"output file for the final display frame"`
	Listing string `flag:"listing" usage:"output file for the program listing"`
	System  string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
}

// Flags contains behavior options.
type Flags struct {
	Cycles        uint64 `flag:"cycles" usage:"maximum number of instructions to execute, 0 runs until halted" default:"1000"`
	CyclesPerTick uint   `flag:"tick" usage:"instructions executed per 60Hz timer tick" default:"10"`
	Unknown       string `flag:"unknown" usage:"unknown opcode policy: halt, skip" default:"halt"`
	Keys          string `flag:"keys" usage:"hex digits of keys to press when the program waits for input"`
	Seed          int64  `flag:"seed" usage:"seed for random numbers, negative for a random seed" default:"-1"`
	Debug         bool   `flag:"debug" usage:"enable debug logging"`
	Quiet         bool   `flag:"q" usage:"quiet mode"`
}

// Quirks contains interpreter compatibility options.
type Quirks struct {
	ShiftFromVY      bool `flag:"shift-vy" usage:"SHR/SHL shift Vy into Vx"`
	IncrementIndex   bool `flag:"inc-i" usage:"register block load/store increments I"`
	ResetFlagOnLogic bool `flag:"vf-reset" usage:"OR/AND/XOR reset VF"`
}

// Program options of the virtual machine runner.
type Program struct {
	Parameters
	Flags
	Quirks
}
