package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/set"
)

// Kind identifies one variant of the closed CHIP-8 instruction set.
type Kind uint8

// Instruction variants. KindUnknown is the zero value so that an
// uninitialized Instruction never passes as a valid one.
const (
	KindUnknown Kind = iota
	KindSys
	KindClearScreen
	KindReturn
	KindJump
	KindCall
	KindSkipEqualImmediate
	KindSkipNotEqualImmediate
	KindSkipEqualRegister
	KindLoadImmediate
	KindAddImmediate
	KindLoadRegister
	KindOr
	KindAnd
	KindXor
	KindAddRegister
	KindSub
	KindShiftRight
	KindSubReverse
	KindShiftLeft
	KindSkipNotEqualRegister
	KindLoadIndex
	KindJumpOffset
	KindRandom
	KindDraw
	KindSkipKeyPressed
	KindSkipKeyNotPressed
	KindLoadDelayTimer
	KindWaitKey
	KindSetDelayTimer
	KindSetSoundTimer
	KindAddIndex
	KindLoadFont
	KindStoreBCD
	KindStoreRegisters
	KindLoadRegisters

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:               "UNKNOWN",
	KindSys:                   "SYS nnn",
	KindClearScreen:           "CLS",
	KindReturn:                "RET",
	KindJump:                  "JP nnn",
	KindCall:                  "CALL nnn",
	KindSkipEqualImmediate:    "SE Vx, kk",
	KindSkipNotEqualImmediate: "SNE Vx, kk",
	KindSkipEqualRegister:     "SE Vx, Vy",
	KindLoadImmediate:         "LD Vx, kk",
	KindAddImmediate:          "ADD Vx, kk",
	KindLoadRegister:          "LD Vx, Vy",
	KindOr:                    "OR Vx, Vy",
	KindAnd:                   "AND Vx, Vy",
	KindXor:                   "XOR Vx, Vy",
	KindAddRegister:           "ADD Vx, Vy",
	KindSub:                   "SUB Vx, Vy",
	KindShiftRight:            "SHR Vx",
	KindSubReverse:            "SUBN Vx, Vy",
	KindShiftLeft:             "SHL Vx",
	KindSkipNotEqualRegister:  "SNE Vx, Vy",
	KindLoadIndex:             "LD I, nnn",
	KindJumpOffset:            "JP V0, nnn",
	KindRandom:                "RND Vx, kk",
	KindDraw:                  "DRW Vx, Vy, n",
	KindSkipKeyPressed:        "SKP Vx",
	KindSkipKeyNotPressed:     "SKNP Vx",
	KindLoadDelayTimer:        "LD Vx, DT",
	KindWaitKey:               "LD Vx, K",
	KindSetDelayTimer:         "LD DT, Vx",
	KindSetSoundTimer:         "LD ST, Vx",
	KindAddIndex:              "ADD I, Vx",
	KindLoadFont:              "LD F, Vx",
	KindStoreBCD:              "LD B, Vx",
	KindStoreRegisters:        "LD [I], Vx",
	KindLoadRegisters:         "LD Vx, [I]",
}

// String returns the operand form of the variant, for example "ADD Vx, Vy".
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// mnemonics maps each variant to its instruction in the shared CHIP-8
// instruction table. SYS and unknown opcodes have no entry.
var mnemonics = [kindCount]*chip8.Instruction{
	KindClearScreen:           chip8.ClsInst,
	KindReturn:                chip8.RetInst,
	KindJump:                  chip8.JpInst,
	KindCall:                  chip8.CallInst,
	KindSkipEqualImmediate:    chip8.SeInst,
	KindSkipNotEqualImmediate: chip8.SneInst,
	KindSkipEqualRegister:     chip8.SeInst,
	KindLoadImmediate:         chip8.LdInst,
	KindAddImmediate:          chip8.AddInst,
	KindLoadRegister:          chip8.LdInst,
	KindOr:                    chip8.OrInst,
	KindAnd:                   chip8.AndInst,
	KindXor:                   chip8.XorInst,
	KindAddRegister:           chip8.AddInst,
	KindSub:                   chip8.SubInst,
	KindShiftRight:            chip8.ShrInst,
	KindSubReverse:            chip8.SubnInst,
	KindShiftLeft:             chip8.ShlInst,
	KindSkipNotEqualRegister:  chip8.SneInst,
	KindLoadIndex:             chip8.LdInst,
	KindJumpOffset:            chip8.JpInst,
	KindRandom:                chip8.RndInst,
	KindDraw:                  chip8.DrwInst,
	KindSkipKeyPressed:        chip8.SkpInst,
	KindSkipKeyNotPressed:     chip8.SknpInst,
	KindLoadDelayTimer:        chip8.LdInst,
	KindWaitKey:               chip8.LdInst,
	KindSetDelayTimer:         chip8.LdInst,
	KindSetSoundTimer:         chip8.LdInst,
	KindAddIndex:              chip8.AddInst,
	KindLoadFont:              chip8.LdInst,
	KindStoreBCD:              chip8.LdInst,
	KindStoreRegisters:        chip8.LdInst,
	KindLoadRegisters:         chip8.LdInst,
}

// Instruction is a decoded CHIP-8 instruction. Only the operand fields that
// the variant uses are set, the raw opcode is always kept for diagnostics.
type Instruction struct {
	Kind   Kind
	Opcode uint16

	Address   uint16 // nnn
	X         uint8  // register index
	Y         uint8  // register index
	Immediate uint8  // kk
	Nibble    uint8  // n, sprite height for DRW
}

// sysName is the mnemonic of the machine code call, the shared instruction
// table has no entry for it.
const sysName = "sys"

// Variants that address memory at I. LD shares its mnemonic with register,
// timer and index forms, the shared memory categories only narrow by name.
var (
	memoryReadKinds  = set.NewFromSlice([]Kind{KindDraw, KindLoadRegisters})
	memoryWriteKinds = set.NewFromSlice([]Kind{KindStoreBCD, KindStoreRegisters})
)

// Mnemonic returns the shared instruction table entry for the variant,
// or nil for SYS and unknown opcodes.
func (i Instruction) Mnemonic() *chip8.Instruction {
	if i.Kind >= kindCount {
		return nil
	}
	return mnemonics[i.Kind]
}

// Name returns the instruction mnemonic.
func (i Instruction) Name() string {
	if ins := i.Mnemonic(); ins != nil {
		return ins.Name
	}
	if i.Kind == KindSys {
		return sysName
	}
	return ""
}

// IsUnknown returns true if the opcode did not match any supported variant.
func (i Instruction) IsUnknown() bool {
	return i.Kind == KindUnknown || i.Kind >= kindCount
}

// IsCall returns true if the instruction is a call instruction.
func (i Instruction) IsCall() bool {
	return i.Kind == KindCall
}

// IsJump returns true if the instruction is an unconditional jump.
func (i Instruction) IsJump() bool {
	return i.Kind == KindJump || i.Kind == KindJumpOffset
}

// IsReturn returns true if the instruction is a return instruction.
func (i Instruction) IsReturn() bool {
	return i.Kind == KindReturn
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	return chip8.SkipInstructions.Contains(i.Name())
}

// ReadsMemory returns true if the instruction reads from main memory at I.
func (i Instruction) ReadsMemory() bool {
	return chip8.MemoryReadInstructions.Contains(i.Name()) && memoryReadKinds.Contains(i.Kind)
}

// WritesMemory returns true if the instruction writes to main memory at I.
func (i Instruction) WritesMemory() bool {
	return chip8.MemoryWriteInstructions.Contains(i.Name()) && memoryWriteKinds.Contains(i.Kind)
}

// String returns the variant with the raw opcode, for example "ADD Vx, Vy ($8124)".
func (i Instruction) String() string {
	return fmt.Sprintf("%s ($%04X)", i.Kind, i.Opcode)
}
