// Package writer implements the text output of program listings and display frames.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrochip8/internal/machine"
)

const dataBytesPerLine = 16

type lineWriterFunc func(line string, byteCount int) error

// Writer implements the listing and frame writing functionality.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	OffsetComments bool // append the address of every line as comment
	PixelOn        byte
	PixelOff       byte
}

// DefaultOptions returns the default writer options.
func DefaultOptions() Options {
	return Options{
		OffsetComments: true,
		PixelOn:        '#',
		PixelOff:       '.',
	}
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// WriteListing writes a linear listing of a ROM as it is placed at the program start.
// Words that do not decode to a known instruction are written as data bytes.
// Targets of calls and jumps inside the ROM get labels, code blocks are separated
// by an empty line after unconditional control flow.
func (w Writer) WriteListing(rom []byte) error {
	address := uint16(machine.ProgramStart)
	if _, err := fmt.Fprintf(w.writer, "; Program size: %d bytes\n; Program start: $%04X\n\n", len(rom), address); err != nil {
		return fmt.Errorf("writing listing header: %w", err)
	}

	labels := collectLabels(rom)
	var previous chip8.Instruction
	separated := true

	for i := 0; i < len(rom); i += chip8.OpcodeSize {
		lineAddress := address + uint16(i)

		if err := w.writeLabel(labels, lineAddress, !separated); err != nil {
			return err
		}

		if i+1 >= len(rom) {
			if err := w.writeData(lineAddress, rom[i:]); err != nil {
				return err
			}
			break
		}

		ins := chip8.Decode(chip8.Word(rom[i], rom[i+1]))
		if ins.IsUnknown() {
			if err := w.writeData(lineAddress, rom[i:i+chip8.OpcodeSize]); err != nil {
				return err
			}
		} else if err := w.writeCodeLine(Format(ins), w.comment(lineAddress, ins.Opcode)); err != nil {
			return fmt.Errorf("writing code line: %w", err)
		}

		separated = false
		if endsBlock(ins) && !previous.IsSkip() && i+chip8.OpcodeSize < len(rom) {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
			separated = true
		}
		previous = ins
	}
	return nil
}

// WriteFrame writes the display as one text line per display row.
func (w Writer) WriteFrame(display [machine.DisplaySize]bool) error {
	line := make([]byte, machine.DisplayWidth+1)
	line[machine.DisplayWidth] = '\n'

	for y := range machine.DisplayHeight {
		for x := range machine.DisplayWidth {
			if display[y*machine.DisplayWidth+x] {
				line[x] = w.options.PixelOn
			} else {
				line[x] = w.options.PixelOff
			}
		}
		if _, err := w.writer.Write(line); err != nil {
			return fmt.Errorf("writing display row %d: %w", y, err)
		}
	}
	return nil
}

// BundleDataWrites bundles writes of data bytes to print dataBytesPerLine bytes per line.
func (w Writer) BundleDataWrites(data []byte, lineWriter lineWriterFunc) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString(".byte ")
		for j := range toWrite {
			if _, err := fmt.Fprintf(buf, "$%02x, ", data[i+j]); err != nil {
				return fmt.Errorf("writing data byte: %w", err)
			}
		}

		line := strings.TrimRight(buf.String(), ", ")

		if lineWriter != nil {
			if err := lineWriter(line, toWrite); err != nil {
				return fmt.Errorf("writing data line using custom writer: %w", err)
			}
		} else {
			if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
				return fmt.Errorf("writing data line: %w", err)
			}
		}

		i += toWrite
		remaining -= toWrite
	}

	return nil
}

// collectLabels returns the label names of all call and jump targets that
// are inside the program.
func collectLabels(rom []byte) map[uint16]string {
	start := uint16(machine.ProgramStart)
	end := start + uint16(len(rom))
	labels := map[uint16]string{}

	for i := 0; i+1 < len(rom); i += chip8.OpcodeSize {
		ins := chip8.Decode(chip8.Word(rom[i], rom[i+1]))
		if ins.Address < start || ins.Address >= end {
			continue
		}

		switch {
		case ins.IsCall():
			labels[ins.Address] = fmt.Sprintf("_sub_%04X", ins.Address)
		case ins.Kind == chip8.KindJump:
			if _, ok := labels[ins.Address]; !ok {
				labels[ins.Address] = fmt.Sprintf("_label_%04X", ins.Address)
			}
		}
	}
	return labels
}

// endsBlock returns whether execution never continues with the next instruction.
func endsBlock(ins chip8.Instruction) bool {
	return ins.IsJump() || ins.IsReturn()
}

func (w Writer) writeLabel(labels map[uint16]string, address uint16, separate bool) error {
	label, ok := labels[address]
	if !ok {
		return nil
	}

	if separate {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", label); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w Writer) writeData(address uint16, data []byte) error {
	lineWriter := func(line string, _ int) error {
		return w.writeCodeLine(line, w.comment(address, 0))
	}
	if err := w.BundleDataWrites(data, lineWriter); err != nil {
		return fmt.Errorf("writing data at $%04X: %w", address, err)
	}
	return nil
}

func (w Writer) comment(address, opcode uint16) string {
	if !w.options.OffsetComments {
		return ""
	}
	if opcode == 0 {
		return fmt.Sprintf("$%04X", address)
	}
	return fmt.Sprintf("$%04X  %04X", address, opcode)
}

func (w Writer) writeCodeLine(code, comment string) error {
	if comment == "" {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(w.writer, "  %-30s ; %s\n", code, comment); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}
