// Package runner executes a loaded program headless for a bounded number of
// instructions, driving the timers and keypad of the machine.
package runner

import (
	"context"
	"fmt"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Reasons for the end of a run.
const (
	ReasonCycleLimit    = "cycle limit reached"
	ReasonHaltLoop      = "halt loop"
	ReasonWaitingForKey = "waiting for key"
	ReasonError         = "error"
	ReasonCancelled     = "cancelled"
)

// Config controls a run.
type Config struct {
	MaxCycles     uint64  // maximum number of instructions to execute, 0 for no limit
	CyclesPerTick uint    // instructions executed per 60Hz timer tick
	Keys          []uint8 // keys pressed in order whenever the program waits for a key
}

// Result summarizes a finished run.
type Result struct {
	Cycles    uint64         // executed instructions
	Ticks     uint64         // timer ticks
	Addresses int            // distinct instruction addresses executed
	Reason    string         // why the run ended
	Status    machine.Status // machine status at the end of the run
	LitPixels int            // lit pixels of the final display
}

// Runner drives a machine.
type Runner struct {
	logger  *log.Logger
	machine *machine.Machine
	cfg     Config

	visited set.Set[uint16]
	keys    []uint8
	held    int // key pressed by the runner, -1 if none
}

// New returns a runner for a machine that has a program loaded.
func New(logger *log.Logger, m *machine.Machine, cfg Config) *Runner {
	if cfg.CyclesPerTick == 0 {
		cfg.CyclesPerTick = 1
	}
	return &Runner{
		logger:  logger,
		machine: m,
		cfg:     cfg,
		visited: set.New[uint16](),
		keys:    cfg.Keys,
		held:    -1,
	}
}

// Run steps the machine until the cycle limit is reached, the program halts,
// waits for a key with no scripted keys left, or the context is cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var result Result

	for r.cfg.MaxCycles == 0 || result.Cycles < r.cfg.MaxCycles {
		if err := ctx.Err(); err != nil {
			return r.finish(result, ReasonCancelled), fmt.Errorf("running program: %w", err)
		}

		pc := r.machine.PC()
		if r.isHaltLoop(pc) {
			r.logger.Debug("Program entered halt loop", log.Hex("address", pc))
			return r.finish(result, ReasonHaltLoop), nil
		}
		r.visited.Add(pc)

		status, err := r.machine.Step()
		if err != nil {
			return r.finish(result, ReasonError), fmt.Errorf("executing instruction at $%04X: %w", pc, err)
		}
		result.Cycles++

		if result.Cycles%uint64(r.cfg.CyclesPerTick) == 0 {
			r.machine.TickTimers()
			result.Ticks++
		}

		if err := r.updateKeys(status); err != nil {
			return r.finish(result, ReasonError), err
		}
		if status == machine.StatusBlocked && r.held < 0 {
			return r.finish(result, ReasonWaitingForKey), nil
		}
	}

	return r.finish(result, ReasonCycleLimit), nil
}

// updateKeys releases a scripted key once the wait completed and presses the
// next scripted key when the program waits for one.
func (r *Runner) updateKeys(status machine.Status) error {
	if status != machine.StatusBlocked {
		if r.held >= 0 {
			if err := r.machine.SetKey(uint8(r.held), false); err != nil {
				return fmt.Errorf("releasing key: %w", err)
			}
			r.held = -1
		}
		return nil
	}

	if r.held >= 0 || len(r.keys) == 0 {
		return nil
	}

	key := r.keys[0]
	r.keys = r.keys[1:]
	if err := r.machine.SetKey(key, true); err != nil {
		return fmt.Errorf("pressing key: %w", err)
	}
	r.held = int(key)
	r.logger.Debug("Pressing key", log.Uint8("key", key))
	return nil
}

// isHaltLoop detects the common end of program idiom, a jump to itself.
// JP V0, nnn counts when V0 makes it target its own address.
func (r *Runner) isHaltLoop(pc uint16) bool {
	high, err := r.machine.Memory(pc)
	if err != nil {
		return false
	}
	low, err := r.machine.Memory(pc + 1)
	if err != nil {
		return false
	}

	ins := chip8.Decode(chip8.Word(high, low))
	if !ins.IsJump() {
		return false
	}
	target := ins.Address
	if ins.Kind == chip8.KindJumpOffset {
		target += uint16(r.machine.Register(0))
	}
	return target == pc
}

func (r *Runner) finish(result Result, reason string) Result {
	result.Reason = reason
	result.Addresses = len(r.visited)
	result.Status = r.machine.Status()
	result.LitPixels = r.machine.LitPixels()
	return result
}

// ParseKeys converts a string of hexadecimal digits into a key sequence.
func ParseKeys(keys string) ([]uint8, error) {
	sequence := make([]uint8, 0, len(keys))
	for _, c := range keys {
		var key uint8
		switch {
		case c >= '0' && c <= '9':
			key = uint8(c - '0')
		case c >= 'a' && c <= 'f':
			key = uint8(c-'a') + 10
		case c >= 'A' && c <= 'F':
			key = uint8(c-'A') + 10
		default:
			return nil, fmt.Errorf("invalid key '%c'", c)
		}
		sequence = append(sequence, key)
	}
	return sequence, nil
}
