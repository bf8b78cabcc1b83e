package engine

import "github.com/chazu/tailspin/isa"

// Bounds helpers shared by the checked engines, including the generated
// ones. They take pc as already advanced past the faulting instruction and
// report pc-1, the instruction's own index.

func checkPC(code []isa.Instruction, pc int) error {
	if pc >= len(code) {
		return &isa.IndexError{What: "pc", Index: pc, Limit: len(code), PC: pc}
	}
	return nil
}

func checkDst(in isa.Instruction, pc int) error {
	if in.Dst() >= isa.NumRegisters {
		return &isa.IndexError{What: "register", Index: in.Dst(), Limit: isa.NumRegisters, PC: pc - 1}
	}
	return nil
}

func checkDstA(in isa.Instruction, pc int) error {
	if err := checkDst(in, pc); err != nil {
		return err
	}
	if in.A() >= isa.NumRegisters {
		return &isa.IndexError{What: "register", Index: in.A(), Limit: isa.NumRegisters, PC: pc - 1}
	}
	return nil
}

func checkDstAB(in isa.Instruction, pc int) error {
	if err := checkDstA(in, pc); err != nil {
		return err
	}
	if in.B() >= isa.NumRegisters {
		return &isa.IndexError{What: "register", Index: in.B(), Limit: isa.NumRegisters, PC: pc - 1}
	}
	return nil
}
