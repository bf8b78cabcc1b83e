package isa

import "fmt"

// Instruction is one encoded VM instruction: a uint32 packing the opcode and
// three 8-bit operand fields.
//
//	bits  0..7   opcode
//	bits  8..15  dst
//	bits 16..23  a
//	bits 24..31  b
//
// For the immediate-carrying opcodes (LOAD_IMM, JMP, JMPNZ) the a and b
// fields together hold a little-endian 16-bit immediate.
type Instruction uint32

// Encode packs an opcode and three raw operand fields.
func Encode(op Opcode, dst, a, b uint8) Instruction {
	return Instruction(uint32(op) | uint32(dst)<<8 | uint32(a)<<16 | uint32(b)<<24)
}

// EncodeImm packs an opcode, a destination register and a 16-bit immediate
// spread across the a and b fields.
func EncodeImm(op Opcode, dst uint8, imm uint16) Instruction {
	return Encode(op, dst, uint8(imm), uint8(imm>>8))
}

// Op returns the opcode field.
func (in Instruction) Op() Opcode {
	return Opcode(in & 0xFF)
}

// Dst returns the destination register index.
func (in Instruction) Dst() int {
	return int(in >> 8 & 0xFF)
}

// A returns the first source register index.
func (in Instruction) A() int {
	return int(in >> 16 & 0xFF)
}

// B returns the second source register index.
func (in Instruction) B() int {
	return int(in >> 24 & 0xFF)
}

// Imm returns the 16-bit immediate held in the a/b fields.
func (in Instruction) Imm() uint16 {
	return uint16(in >> 16)
}

// String formats the instruction with its operand shape applied.
func (in Instruction) String() string {
	info := GetOpcodeInfo(in.Op())
	switch info.Operands {
	case OperandsDst:
		return fmt.Sprintf("%s r%d", info.Name, in.Dst())
	case OperandsDstA:
		return fmt.Sprintf("%s r%d, r%d", info.Name, in.Dst(), in.A())
	case OperandsDstAB:
		return fmt.Sprintf("%s r%d, r%d, r%d", info.Name, in.Dst(), in.A(), in.B())
	case OperandsDstImm:
		return fmt.Sprintf("%s r%d, %d", info.Name, in.Dst(), in.Imm())
	case OperandsImm:
		return fmt.Sprintf("%s %d", info.Name, in.Imm())
	default:
		return info.Name
	}
}
