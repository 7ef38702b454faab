// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw ROM image. CHIP-8 ROMs have no header, the file content
// is the program as it is placed into memory. Files that can not fit into
// program memory are rejected before being read completely.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info %s: %w", path, err)
	}
	if info.Size() > machine.MaxProgramSize {
		return nil, fmt.Errorf("loading %s: %w", path, &machine.CapacityError{Size: int(info.Size())})
	}

	rom, err := io.ReadAll(io.LimitReader(file, machine.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(rom) > machine.MaxProgramSize {
		return nil, fmt.Errorf("loading %s: %w", path, &machine.CapacityError{Size: len(rom)})
	}
	return rom, nil
}
