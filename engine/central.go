package engine

import "github.com/chazu/tailspin/isa"

// RunCentral is the baseline dispatch strategy: a single decode site at the
// loop head, one switch per iteration, every arm converging back to it. The
// compiled function contains exactly one branch-selection site, which is
// what the threaded engines are measured against.
//
// Register and program-counter accesses are unchecked: a malformed program
// violates the contract and trips the Go runtime's own bounds panic.
func RunCentral(p *isa.Program, regs *isa.RegisterFile) (int64, error) {
	code := p.Code
	r := regs
	pc := 0
	for {
		in := code[pc]
		pc++
		switch in.Op() {
		case isa.OpHalt:
			return r[in.Dst()], nil
		case isa.OpLoadImm:
			r[in.Dst()] = int64(in.Imm())
		case isa.OpAdd:
			r[in.Dst()] = r[in.A()] + r[in.B()]
		case isa.OpSub:
			r[in.Dst()] = r[in.A()] - r[in.B()]
		case isa.OpMul:
			r[in.Dst()] = r[in.A()] * r[in.B()]
		case isa.OpInc:
			r[in.Dst()]++
		case isa.OpDec:
			r[in.Dst()]--
		case isa.OpMov:
			r[in.Dst()] = r[in.A()]
		case isa.OpJmp:
			pc = int(in.Imm())
		case isa.OpJmpnz:
			// Written so the compiler can lower the update to a
			// conditional move ahead of the dispatch branch.
			if r[in.Dst()] != 0 {
				pc = int(in.Imm())
			}
		case isa.OpNop:
		default:
			return 0, &isa.OpcodeError{Opcode: in.Op(), PC: pc - 1}
		}
	}
}

// RunCentralChecked is RunCentral with every register and program-counter
// access bounds-validated. Failures surface as *isa.IndexError instead of a
// runtime panic; the loop shape is otherwise identical.
func RunCentralChecked(p *isa.Program, regs *isa.RegisterFile) (int64, error) {
	code := p.Code
	r := regs
	pc := 0
	for {
		if err := checkPC(code, pc); err != nil {
			return 0, err
		}
		in := code[pc]
		pc++
		switch in.Op() {
		case isa.OpHalt:
			if err := checkDst(in, pc); err != nil {
				return 0, err
			}
			return r[in.Dst()], nil
		case isa.OpLoadImm:
			if err := checkDst(in, pc); err != nil {
				return 0, err
			}
			r[in.Dst()] = int64(in.Imm())
		case isa.OpAdd:
			if err := checkDstAB(in, pc); err != nil {
				return 0, err
			}
			r[in.Dst()] = r[in.A()] + r[in.B()]
		case isa.OpSub:
			if err := checkDstAB(in, pc); err != nil {
				return 0, err
			}
			r[in.Dst()] = r[in.A()] - r[in.B()]
		case isa.OpMul:
			if err := checkDstAB(in, pc); err != nil {
				return 0, err
			}
			r[in.Dst()] = r[in.A()] * r[in.B()]
		case isa.OpInc:
			if err := checkDst(in, pc); err != nil {
				return 0, err
			}
			r[in.Dst()]++
		case isa.OpDec:
			if err := checkDst(in, pc); err != nil {
				return 0, err
			}
			r[in.Dst()]--
		case isa.OpMov:
			if err := checkDstA(in, pc); err != nil {
				return 0, err
			}
			r[in.Dst()] = r[in.A()]
		case isa.OpJmp:
			pc = int(in.Imm())
		case isa.OpJmpnz:
			if err := checkDst(in, pc); err != nil {
				return 0, err
			}
			if r[in.Dst()] != 0 {
				pc = int(in.Imm())
			}
		case isa.OpNop:
		default:
			return 0, &isa.OpcodeError{Opcode: in.Op(), PC: pc - 1}
		}
	}
}
