package isa

import "fmt"

// NumRegisters is the fixed register-file size. Instruction register fields
// are bytes, so a malformed program can name registers 16..255; well-formed
// programs never do.
const NumRegisters = 16

// RegisterFile is the complete mutable machine state apart from the program
// counter. It is a value type so callers can hand each run its own copy.
type RegisterFile [NumRegisters]int64

// Program is an immutable ordered instruction sequence. Execution starts at
// index 0. The Code slice is shared read-only between engines; nothing may
// mutate it after construction.
type Program struct {
	Name string
	Code []Instruction
}

// NewProgram copies code into a fresh Program so later mutation of the
// caller's slice cannot reach running engines.
func NewProgram(name string, code []Instruction) *Program {
	p := &Program{Name: name, Code: make([]Instruction, len(code))}
	copy(p.Code, code)
	return p
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Code)
}

// IndexError reports an out-of-range register or program-counter access in
// checked execution mode.
type IndexError struct {
	What  string // "register" or "pc"
	Index int
	Limit int
	PC    int // index of the faulting instruction
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d) at pc %d", e.What, e.Index, e.Limit, e.PC)
}

// OpcodeError reports an opcode outside the closed set.
type OpcodeError struct {
	Opcode Opcode
	PC     int
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %d at pc %d", byte(e.Opcode), e.PC)
}

// Validate checks program well-formedness: every opcode is a member of the
// closed set, every register field the opcode reads is a valid register
// index, and every jump target lands inside the program. Engines running in
// unchecked mode rely on callers having validated; checked mode re-verifies
// each access at run time.
func (p *Program) Validate() error {
	for pc, in := range p.Code {
		op := in.Op()
		if !op.Valid() {
			return &OpcodeError{Opcode: op, PC: pc}
		}
		info := GetOpcodeInfo(op)
		switch info.Operands {
		case OperandsDst, OperandsDstImm:
			if err := validReg(in.Dst(), pc); err != nil {
				return err
			}
		case OperandsDstA:
			if err := validReg(in.Dst(), pc); err != nil {
				return err
			}
			if err := validReg(in.A(), pc); err != nil {
				return err
			}
		case OperandsDstAB:
			if err := validReg(in.Dst(), pc); err != nil {
				return err
			}
			if err := validReg(in.A(), pc); err != nil {
				return err
			}
			if err := validReg(in.B(), pc); err != nil {
				return err
			}
		}
		if op == OpJmp || op == OpJmpnz {
			if target := int(in.Imm()); target >= len(p.Code) {
				return &IndexError{What: "pc", Index: target, Limit: len(p.Code), PC: pc}
			}
		}
	}
	return nil
}

func validReg(idx, pc int) error {
	if idx >= NumRegisters {
		return &IndexError{What: "register", Index: idx, Limit: NumRegisters, PC: pc}
	}
	return nil
}
