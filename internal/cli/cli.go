// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	readQuirkFlags(flags, &opts.Quirks)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <rom file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after rom file, please pass the rom file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Unknown = strings.ToLower(opts.Unknown)
	opts.Keys = strings.ToUpper(opts.Keys)

	for _, key := range opts.Keys {
		if !strings.ContainsRune("0123456789ABCDEF", key) {
			return fmt.Errorf("invalid key '%c' in key sequence, valid keys are 0-9 and A-F", key)
		}
	}

	if opts.CyclesPerTick == 0 {
		return errors.New("instructions per timer tick must be at least 1")
	}

	validPolicies := []string{"halt", "skip"}
	for _, valid := range validPolicies {
		if opts.Unknown == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported unknown opcode policy: %s. Valid options: %s",
		opts.Unknown, strings.Join(validPolicies, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file for the final display frame, - for stdout")
	flags.StringVar(&opts.Listing, "listing", "", "name of the output file for a listing of the program")
	flags.StringVar(&opts.System, "s", "", "system of the ROM (chip8) - if not auto-detected from file extension")
	flags.Uint64Var(&opts.Cycles, "cycles", 1000, "maximum number of instructions to execute, 0 runs until the program halts")
	flags.UintVar(&opts.CyclesPerTick, "tick", 10, "instructions executed per 60Hz timer tick")
	flags.StringVar(&opts.Unknown, "unknown", "halt", "handling of unknown opcodes (halt/skip)")
	flags.StringVar(&opts.Keys, "keys", "", "hex digits of keys to press one by one when the program waits for a key, for example 5A0")
	flags.Int64Var(&opts.Seed, "seed", -1, "seed for the random number generator, negative values use a random seed")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readQuirkFlags(flags *flag.FlagSet, quirks *options.Quirks) {
	flags.BoolVar(&quirks.ShiftFromVY, "shift-vy", false, "SHR and SHL shift Vy and store the result in Vx")
	flags.BoolVar(&quirks.IncrementIndex, "inc-i", false, "register block load and store leave I past the last register")
	flags.BoolVar(&quirks.ResetFlagOnLogic, "vf-reset", false, "OR, AND and XOR reset VF")
}
