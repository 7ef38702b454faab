package chip8

// Decode translates an opcode into its instruction variant. Decoding is total:
// opcodes that match no variant return a KindUnknown instruction.
func Decode(opcode uint16) Instruction {
	switch Class(opcode) {
	case 0x0:
		return decodeSystem(opcode)
	case 0x1:
		return withAddress(KindJump, opcode)
	case 0x2:
		return withAddress(KindCall, opcode)
	case 0x3:
		return withImmediate(KindSkipEqualImmediate, opcode)
	case 0x4:
		return withImmediate(KindSkipNotEqualImmediate, opcode)
	case 0x5:
		if Nibble(opcode) != 0 {
			return unknown(opcode)
		}
		return withRegisters(KindSkipEqualRegister, opcode)
	case 0x6:
		return withImmediate(KindLoadImmediate, opcode)
	case 0x7:
		return withImmediate(KindAddImmediate, opcode)
	case 0x8:
		return decodeArithmetic(opcode)
	case 0x9:
		if Nibble(opcode) != 0 {
			return unknown(opcode)
		}
		return withRegisters(KindSkipNotEqualRegister, opcode)
	case 0xA:
		return withAddress(KindLoadIndex, opcode)
	case 0xB:
		return withAddress(KindJumpOffset, opcode)
	case 0xC:
		return withImmediate(KindRandom, opcode)
	case 0xD:
		ins := withRegisters(KindDraw, opcode)
		ins.Nibble = Nibble(opcode)
		return ins
	case 0xE:
		return decodeKeys(opcode)
	default:
		return decodeMisc(opcode)
	}
}

// decodeSystem handles the 0x0 class. Super-CHIP opcodes of this class are
// reported as unknown instead of falling through to SYS.
func decodeSystem(opcode uint16) Instruction {
	switch {
	case opcode == 0x00E0:
		return Instruction{Kind: KindClearScreen, Opcode: opcode}
	case opcode == 0x00EE:
		return Instruction{Kind: KindReturn, Opcode: opcode}
	case opcode&0xFFF0 == 0x00C0, opcode >= 0x00FB && opcode <= 0x00FF:
		return unknown(opcode)
	default:
		return withAddress(KindSys, opcode)
	}
}

var arithmeticKinds = [16]Kind{
	0x0: KindLoadRegister,
	0x1: KindOr,
	0x2: KindAnd,
	0x3: KindXor,
	0x4: KindAddRegister,
	0x5: KindSub,
	0x6: KindShiftRight,
	0x7: KindSubReverse,
	0xE: KindShiftLeft,
}

func decodeArithmetic(opcode uint16) Instruction {
	kind := arithmeticKinds[Nibble(opcode)]
	if kind == KindUnknown {
		return unknown(opcode)
	}
	return withRegisters(kind, opcode)
}

func decodeKeys(opcode uint16) Instruction {
	switch Immediate(opcode) {
	case 0x9E:
		return withRegister(KindSkipKeyPressed, opcode)
	case 0xA1:
		return withRegister(KindSkipKeyNotPressed, opcode)
	default:
		return unknown(opcode)
	}
}

var miscKinds = map[uint8]Kind{
	0x07: KindLoadDelayTimer,
	0x0A: KindWaitKey,
	0x15: KindSetDelayTimer,
	0x18: KindSetSoundTimer,
	0x1E: KindAddIndex,
	0x29: KindLoadFont,
	0x33: KindStoreBCD,
	0x55: KindStoreRegisters,
	0x65: KindLoadRegisters,
}

func decodeMisc(opcode uint16) Instruction {
	kind, ok := miscKinds[Immediate(opcode)]
	if !ok {
		return unknown(opcode)
	}
	return withRegister(kind, opcode)
}

func unknown(opcode uint16) Instruction {
	return Instruction{Kind: KindUnknown, Opcode: opcode}
}

func withAddress(kind Kind, opcode uint16) Instruction {
	return Instruction{Kind: kind, Opcode: opcode, Address: Address(opcode)}
}

func withRegister(kind Kind, opcode uint16) Instruction {
	return Instruction{Kind: kind, Opcode: opcode, X: RegisterX(opcode)}
}

func withImmediate(kind Kind, opcode uint16) Instruction {
	return Instruction{
		Kind:      kind,
		Opcode:    opcode,
		X:         RegisterX(opcode),
		Immediate: Immediate(opcode),
	}
}

func withRegisters(kind Kind, opcode uint16) Instruction {
	return Instruction{
		Kind:   kind,
		Opcode: opcode,
		X:      RegisterX(opcode),
		Y:      RegisterY(opcode),
	}
}
