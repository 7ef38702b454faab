package chip8

// OpcodeSize is the size of CHIP-8 instructions in bytes.
const OpcodeSize = 2

// Class returns the top nibble of an opcode that selects the instruction class.
func Class(opcode uint16) uint8 {
	return uint8((opcode & 0xF000) >> 12)
}

// Address returns the 12-bit address field (nnn) of an opcode.
func Address(opcode uint16) uint16 {
	return opcode & 0x0FFF
}

// RegisterX extracts the X register nibble (bits 8-11) from an opcode.
func RegisterX(opcode uint16) uint8 {
	return uint8((opcode & 0x0F00) >> 8)
}

// RegisterY extracts the Y register nibble (bits 4-7) from an opcode.
func RegisterY(opcode uint16) uint8 {
	return uint8((opcode & 0x00F0) >> 4)
}

// Immediate returns the 8-bit immediate (kk), the low byte of an opcode.
func Immediate(opcode uint16) uint8 {
	return uint8(opcode & 0x00FF)
}

// Nibble returns the trailing 4-bit field (n) of an opcode.
func Nibble(opcode uint16) uint8 {
	return uint8(opcode & 0x000F)
}

// Word combines two big-endian instruction bytes into an opcode.
func Word(high, low byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}
