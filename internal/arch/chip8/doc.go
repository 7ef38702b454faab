// Package chip8 provides the CHIP-8 instruction decoder.
//
// # Instruction Set
//
// CHIP-8 has a simple instruction set with 35 opcodes:
//   - All instructions are 2 bytes (16 bits), stored big-endian
//   - Instructions use direct addressing with 12-bit addresses
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag register
//   - Special-purpose registers: I (16-bit), PC, SP
//
// # Decoding
//
// Decode maps every 16-bit word to exactly one Instruction value. The top nibble
// selects the instruction class, within a class the low nibble, the low byte or
// the full opcode disambiguates the variant:
//
//	0x0  low byte     CLS (00E0), RET (00EE), otherwise SYS nnn
//	0x1  none         JP nnn
//	0x2  none         CALL nnn
//	0x3  none         SE Vx, kk
//	0x4  none         SNE Vx, kk
//	0x5  low nibble   SE Vx, Vy
//	0x6  none         LD Vx, kk
//	0x7  none         ADD Vx, kk
//	0x8  low nibble   LD, OR, AND, XOR, ADD, SUB, SHR, SUBN, SHL
//	0x9  low nibble   SNE Vx, Vy
//	0xA  none         LD I, nnn
//	0xB  none         JP V0, nnn
//	0xC  none         RND Vx, kk
//	0xD  low nibble   DRW Vx, Vy, n
//	0xE  low byte     SKP Vx, SKNP Vx
//	0xF  low byte     timer, key, index, font, BCD and register block transfers
//
// Bit patterns that match no variant decode to KindUnknown, carrying the raw
// opcode. Decoding never fails; whether an unknown instruction is fatal is
// decided by the executing machine.
//
// # Extensions
//
// Super-CHIP instructions (00Cn, 00FB-00FF, Fx30, Fx75, Fx85) are not supported
// and decode to KindUnknown.
//
// # Usage Example
//
//	ins := chip8.Decode(0x8124)
//	if ins.Kind == chip8.KindAddRegister {
//		fmt.Printf("V%X += V%X\n", ins.X, ins.Y)
//	}
package chip8
