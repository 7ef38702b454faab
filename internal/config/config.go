// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineOptions converts the program options into virtual machine options.
func MachineOptions(opts options.Program) ([]machine.Option, error) {
	policy, err := machine.ParseUnknownPolicy(opts.Unknown)
	if err != nil {
		return nil, fmt.Errorf("parsing unknown opcode policy: %w", err)
	}

	machineOptions := []machine.Option{
		machine.WithUnknownPolicy(policy),
		machine.WithQuirks(machine.Quirks{
			ShiftFromVY:      opts.ShiftFromVY,
			IncrementIndex:   opts.IncrementIndex,
			ResetFlagOnLogic: opts.ResetFlagOnLogic,
		}),
	}

	if opts.Seed >= 0 {
		machineOptions = append(machineOptions, machine.WithSeed(uint64(opts.Seed)))
	}

	return machineOptions, nil
}
