package writer

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
)

// Format returns the assembly text of a decoded instruction, for example "add V1, V2".
// Unknown instructions are formatted as a data word.
func Format(ins chip8.Instruction) string {
	name := ins.Name()

	switch ins.Kind {
	case chip8.KindClearScreen, chip8.KindReturn:
		return name
	case chip8.KindSys, chip8.KindJump, chip8.KindCall, chip8.KindLoadIndex:
		if ins.Kind == chip8.KindLoadIndex {
			return fmt.Sprintf("%s I, $%03X", name, ins.Address)
		}
		return fmt.Sprintf("%s $%03X", name, ins.Address)
	case chip8.KindJumpOffset:
		return fmt.Sprintf("%s V0, $%03X", name, ins.Address)
	case chip8.KindSkipEqualImmediate, chip8.KindSkipNotEqualImmediate, chip8.KindLoadImmediate,
		chip8.KindAddImmediate, chip8.KindRandom:
		return fmt.Sprintf("%s V%X, $%02X", name, ins.X, ins.Immediate)
	case chip8.KindSkipEqualRegister, chip8.KindSkipNotEqualRegister, chip8.KindLoadRegister, chip8.KindOr,
		chip8.KindAnd, chip8.KindXor, chip8.KindAddRegister, chip8.KindSub, chip8.KindSubReverse,
		chip8.KindShiftRight, chip8.KindShiftLeft:
		return fmt.Sprintf("%s V%X, V%X", name, ins.X, ins.Y)
	case chip8.KindDraw:
		return fmt.Sprintf("%s V%X, V%X, %d", name, ins.X, ins.Y, ins.Nibble)
	case chip8.KindSkipKeyPressed, chip8.KindSkipKeyNotPressed:
		return fmt.Sprintf("%s V%X", name, ins.X)
	case chip8.KindLoadDelayTimer:
		return fmt.Sprintf("%s V%X, DT", name, ins.X)
	case chip8.KindWaitKey:
		return fmt.Sprintf("%s V%X, K", name, ins.X)
	case chip8.KindSetDelayTimer:
		return fmt.Sprintf("%s DT, V%X", name, ins.X)
	case chip8.KindSetSoundTimer:
		return fmt.Sprintf("%s ST, V%X", name, ins.X)
	case chip8.KindAddIndex:
		return fmt.Sprintf("%s I, V%X", name, ins.X)
	case chip8.KindLoadFont:
		return fmt.Sprintf("%s F, V%X", name, ins.X)
	case chip8.KindStoreBCD:
		return fmt.Sprintf("%s B, V%X", name, ins.X)
	case chip8.KindStoreRegisters:
		return fmt.Sprintf("%s [I], V%X", name, ins.X)
	case chip8.KindLoadRegisters:
		return fmt.Sprintf("%s V%X, [I]", name, ins.X)
	default:
		return fmt.Sprintf(".word $%04X", ins.Opcode)
	}
}
