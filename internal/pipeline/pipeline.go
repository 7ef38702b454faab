// Package pipeline orchestrates the stages of running a ROM file.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete run workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new run pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete pipeline: system detection, ROM loading and execution.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (runner.Result, error) {
	system := p.detector.Detect(opts)
	if err := p.detector.Runnable(system); err != nil {
		return runner.Result{}, err
	}

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return runner.Result{}, fmt.Errorf("loading rom: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts)
}

// ExecuteWithROM runs a ROM that is already in memory.
// This is useful for testing and programmatic usage.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program) (runner.Result, error) {
	machineOptions, err := config.MachineOptions(opts)
	if err != nil {
		return runner.Result{}, fmt.Errorf("configuring machine: %w", err)
	}

	keys, err := runner.ParseKeys(opts.Keys)
	if err != nil {
		return runner.Result{}, fmt.Errorf("parsing key sequence: %w", err)
	}

	m := machine.New(p.logger, machineOptions...)
	if err := m.Load(rom); err != nil {
		return runner.Result{}, fmt.Errorf("loading program: %w", err)
	}

	app.PrintInfo(p.logger, opts, len(rom))

	if opts.Listing != "" {
		if err := writeOutput(opts.Listing, func(w *writer.Writer) error { return w.WriteListing(rom) }); err != nil {
			return runner.Result{}, fmt.Errorf("writing listing: %w", err)
		}
	}

	r := runner.New(p.logger, m, runner.Config{
		MaxCycles:     opts.Cycles,
		CyclesPerTick: opts.CyclesPerTick,
		Keys:          keys,
	})

	result, err := r.Run(ctx)

	if opts.Output != "" && !errors.Is(err, context.Canceled) {
		display := m.Display()
		if frameErr := writeOutput(opts.Output, func(w *writer.Writer) error { return w.WriteFrame(display) }); frameErr != nil {
			return result, errors.Join(err, fmt.Errorf("writing display frame: %w", frameErr))
		}
	}

	return result, err
}

// writeOutput creates the named output, - selects stdout, and passes a writer for it to the callback.
func writeOutput(name string, write func(w *writer.Writer) error) error {
	out, err := createWriter(name)
	if err != nil {
		return err
	}

	if err := write(writer.New(out, writer.DefaultOptions())); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", name, err)
	}
	return nil
}

func createWriter(name string) (io.WriteCloser, error) {
	if name == "-" {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", name, err)
	}
	return file, nil
}

// nopCloser wraps an io.Writer to add a no-op Close method.
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
