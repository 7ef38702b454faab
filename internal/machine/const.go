package machine

// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Built-in font glyphs (16 glyphs of 5 bytes)
//	0x050-0x1FF: Reserved interpreter area
//	0x200-0xFFF: Program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the address where loaded programs begin execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest ROM that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontAddress is the memory address of the first font glyph.
	FontAddress = 0x000

	// FontGlyphSize is the size of one font glyph in bytes.
	FontGlyphSize = 5
)

const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, written by arithmetic, shift and draw instructions.
	FlagRegister = 0xF

	// StackDepth is the number of return addresses the call stack can hold.
	StackDepth = 16

	// KeyCount is the number of keys of the hexadecimal keypad.
	KeyCount = 16
)

const (
	// DisplayWidth is the horizontal resolution of the display in pixels.
	DisplayWidth = 64

	// DisplayHeight is the vertical resolution of the display in pixels.
	DisplayHeight = 32

	// DisplaySize is the number of pixel cells of the display.
	DisplaySize = DisplayWidth * DisplayHeight
)

// font contains the hexadecimal digit glyphs 0-F, each 4 pixels wide and 5 rows high.
var font = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
