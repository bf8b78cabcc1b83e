package bench

import "github.com/chazu/tailspin/isa"

// SumOfSquares builds the reference workload: sum(i*i - i + 1) for i in
// 1..n, accumulated in r1 through a JMPNZ countdown loop. It exercises every
// arithmetic opcode plus MOV and the conditional jump, which is what makes
// it a fair dispatch-predictor workload.
func SumOfSquares(n uint16) *isa.Program {
	return isa.NewProgram("sum-of-squares", []isa.Instruction{
		isa.EncodeImm(isa.OpLoadImm, 0, n), // r0 = n (loop counter)
		isa.EncodeImm(isa.OpLoadImm, 1, 0), // r1 = 0 (accumulator)
		isa.EncodeImm(isa.OpLoadImm, 2, 1), // r2 = 1
		// loop: (pc = 3)
		isa.Encode(isa.OpMov, 3, 0, 0), // r3 = r0
		isa.Encode(isa.OpMul, 4, 3, 3), // r4 = r3*r3
		isa.Encode(isa.OpSub, 5, 4, 3), // r5 = r4 - r3
		isa.Encode(isa.OpAdd, 5, 5, 2), // r5 += 1
		isa.Encode(isa.OpAdd, 1, 1, 5), // r1 += r5
		isa.Encode(isa.OpDec, 0, 0, 0), // r0--
		isa.EncodeImm(isa.OpJmpnz, 0, 3),
		isa.Encode(isa.OpHalt, 1, 0, 0), // return r1
	})
}

// Countdown builds a counted loop that increments an accumulator once per
// iteration and returns it, so the scalar result is exactly the number of
// loop iterations executed.
func Countdown(n uint16) *isa.Program {
	return isa.NewProgram("countdown", []isa.Instruction{
		isa.EncodeImm(isa.OpLoadImm, 0, n),
		isa.EncodeImm(isa.OpLoadImm, 1, 0),
		// loop: (pc = 2)
		isa.Encode(isa.OpInc, 1, 0, 0),
		isa.Encode(isa.OpDec, 0, 0, 0),
		isa.EncodeImm(isa.OpJmpnz, 0, 2),
		isa.Encode(isa.OpHalt, 1, 0, 0),
	})
}

// MillionLoop is Countdown for a million iterations. The 16-bit immediate
// cannot hold 10^6, so the counter is built as 1000*1000 before the loop.
func MillionLoop() *isa.Program {
	return isa.NewProgram("million-loop", []isa.Instruction{
		isa.EncodeImm(isa.OpLoadImm, 0, 1000),
		isa.Encode(isa.OpMov, 2, 0, 0),
		isa.Encode(isa.OpMul, 0, 0, 2), // r0 = 1000000
		// loop: (pc = 3)
		isa.Encode(isa.OpInc, 1, 0, 0),
		isa.Encode(isa.OpDec, 0, 0, 0),
		isa.EncodeImm(isa.OpJmpnz, 0, 3),
		isa.Encode(isa.OpHalt, 1, 0, 0),
	})
}

// Builtin resolves a workload name from the manifest to its constructor.
func Builtin(name string, n uint16) (*isa.Program, bool) {
	switch name {
	case "sum-of-squares":
		return SumOfSquares(n), true
	case "countdown":
		return Countdown(n), true
	case "million-loop":
		return MillionLoop(), true
	}
	return nil, false
}
