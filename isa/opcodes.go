package isa

import "fmt"

// Opcode identifies a VM instruction. The opcode space is closed and dense
// (0..Count-1) so that an opcode can index a dispatch table directly.
type Opcode byte

const (
	OpHalt    Opcode = 0  // Stop execution, return regs[dst]
	OpLoadImm Opcode = 1  // regs[dst] = imm16
	OpAdd     Opcode = 2  // regs[dst] = regs[a] + regs[b] (wrapping)
	OpSub     Opcode = 3  // regs[dst] = regs[a] - regs[b] (wrapping)
	OpMul     Opcode = 4  // regs[dst] = regs[a] * regs[b] (wrapping)
	OpInc     Opcode = 5  // regs[dst] += 1 (wrapping)
	OpDec     Opcode = 6  // regs[dst] -= 1 (wrapping)
	OpMov     Opcode = 7  // regs[dst] = regs[a]
	OpJmp     Opcode = 8  // pc = imm16
	OpJmpnz   Opcode = 9  // if regs[dst] != 0 { pc = imm16 }
	OpNop     Opcode = 10 // No operation

	// Count is the number of defined opcodes. Opcode values at or above
	// Count are malformed and hit the dispatch default arm.
	Count = 11
)

// OperandKind describes the operand shape of an opcode. Every instruction
// carries the same four fields (op, dst, a, b); the kind says which of them
// the opcode reads and whether a/b form a 16-bit immediate.
type OperandKind uint8

const (
	OperandsNone   OperandKind = iota // no operands (NOP)
	OperandsDst                       // dst only (HALT, INC, DEC)
	OperandsDstA                      // dst and a (MOV)
	OperandsDstAB                     // dst, a and b (ADD, SUB, MUL)
	OperandsDstImm                    // dst and imm16 in a/b (LOAD_IMM, JMPNZ)
	OperandsImm                       // imm16 in a/b only (JMP)
)

// OpcodeInfo provides per-opcode metadata for the assembler, disassembler
// and program validation.
type OpcodeInfo struct {
	Name     string
	Operands OperandKind
}

// opcodeInfoTable is indexed directly by opcode value; the dense opcode
// space is what makes this possible.
var opcodeInfoTable = [Count]OpcodeInfo{
	OpHalt:    {"HALT", OperandsDst},
	OpLoadImm: {"LOAD_IMM", OperandsDstImm},
	OpAdd:     {"ADD", OperandsDstAB},
	OpSub:     {"SUB", OperandsDstAB},
	OpMul:     {"MUL", OperandsDstAB},
	OpInc:     {"INC", OperandsDst},
	OpDec:     {"DEC", OperandsDst},
	OpMov:     {"MOV", OperandsDstA},
	OpJmp:     {"JMP", OperandsImm},
	OpJmpnz:   {"JMPNZ", OperandsDstImm},
	OpNop:     {"NOP", OperandsNone},
}

// GetOpcodeInfo returns metadata for an opcode. Unknown opcodes yield a
// synthetic entry so callers can still format them.
func GetOpcodeInfo(op Opcode) OpcodeInfo {
	if op < Count {
		return opcodeInfoTable[op]
	}
	return OpcodeInfo{Name: fmt.Sprintf("UNKNOWN(%d)", byte(op))}
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	return GetOpcodeInfo(op).Name
}

// Valid reports whether op is a member of the closed opcode set.
func (op Opcode) Valid() bool {
	return op < Count
}

// ByName resolves a mnemonic (case-sensitive, as produced by String) to its
// opcode. The second result is false for unknown mnemonics.
func ByName(name string) (Opcode, bool) {
	for op, info := range opcodeInfoTable {
		if info.Name == name {
			return Opcode(op), true
		}
	}
	return 0, false
}

// AllOpcodes returns the full opcode set in numeric order.
func AllOpcodes() []Opcode {
	ops := make([]Opcode, Count)
	for i := range ops {
		ops[i] = Opcode(i)
	}
	return ops
}
