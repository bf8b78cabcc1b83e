package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/tailspin/isa"
)

// sumProgram computes sum(i*i - i + 1) for i in 1..n via a countdown loop,
// touching every opcode except JMP and NOP.
func sumProgram(n uint16) *isa.Program {
	return isa.NewProgram("sum", []isa.Instruction{
		isa.EncodeImm(isa.OpLoadImm, 0, n),
		isa.EncodeImm(isa.OpLoadImm, 1, 0),
		isa.EncodeImm(isa.OpLoadImm, 2, 1),
		// loop: (pc = 3)
		isa.Encode(isa.OpMov, 3, 0, 0),
		isa.Encode(isa.OpMul, 4, 3, 3),
		isa.Encode(isa.OpSub, 5, 4, 3),
		isa.Encode(isa.OpAdd, 5, 5, 2),
		isa.Encode(isa.OpAdd, 1, 1, 5),
		isa.Encode(isa.OpDec, 0, 0, 0),
		isa.EncodeImm(isa.OpJmpnz, 0, 3),
		isa.Encode(isa.OpHalt, 1, 0, 0),
	})
}

func countdownProgram(n uint16) *isa.Program {
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

func TestEnginesAgree(t *testing.T) {
	tests := []struct {
		name string
		prog *isa.Program
		want int64
	}{
		// sum(i*i - i + 1) for 1..100 = 338350 - 5050 + 100
		{"sum-100", sumProgram(100), 333400},
		{"sum-1", sumProgram(1), 1},
		{"countdown-50", countdownProgram(50), 50},
		{"countdown-1", countdownProgram(1), 1},
	}

	for _, tt := range tests {
		if err := tt.prog.Validate(); err != nil {
			t.Fatalf("%s: invalid test program: %v", tt.name, err)
		}
		for _, eng := range All() {
			regs := isa.RegisterFile{}
			got, err := eng.Run(tt.prog, &regs)
			if err != nil {
				t.Errorf("%s/%s: %v", tt.name, eng.Name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%s/%s = %d, want %d", tt.name, eng.Name, got, tt.want)
			}
		}
	}
}

func TestHaltReturnsDst(t *testing.T) {
	p := isa.NewProgram("halt", []isa.Instruction{
		isa.Encode(isa.OpHalt, 5, 0, 0),
	})
	for _, eng := range All() {
		regs := isa.RegisterFile{}
		regs[5] = 42
		got, err := eng.Run(p, &regs)
		if err != nil {
			t.Fatalf("%s: %v", eng.Name, err)
		}
		if got != 42 {
			t.Errorf("%s: HALT r5 = %d, want 42", eng.Name, got)
		}
	}
}

func TestWrappingArithmetic(t *testing.T) {
	tests := []struct {
		name string
		prog *isa.Program
		seed func(*isa.RegisterFile)
		want int64
	}{
		{
			"add-overflow",
			isa.NewProgram("wrap-add", []isa.Instruction{
				isa.Encode(isa.OpAdd, 1, 2, 3),
				isa.Encode(isa.OpHalt, 1, 0, 0),
			}),
			func(r *isa.RegisterFile) { r[2] = math.MaxInt64; r[3] = 1 },
			math.MinInt64,
		},
		{
			"sub-underflow",
			isa.NewProgram("wrap-sub", []isa.Instruction{
				isa.Encode(isa.OpSub, 1, 2, 3),
				isa.Encode(isa.OpHalt, 1, 0, 0),
			}),
			func(r *isa.RegisterFile) { r[2] = math.MinInt64; r[3] = 1 },
			math.MaxInt64,
		},
		{
			"inc-overflow",
			isa.NewProgram("wrap-inc", []isa.Instruction{
				isa.Encode(isa.OpInc, 0, 0, 0),
				isa.Encode(isa.OpHalt, 0, 0, 0),
			}),
			func(r *isa.RegisterFile) { r[0] = math.MaxInt64 },
			math.MinInt64,
		},
		{
			"dec-underflow",
			isa.NewProgram("wrap-dec", []isa.Instruction{
				isa.Encode(isa.OpDec, 0, 0, 0),
				isa.Encode(isa.OpHalt, 0, 0, 0),
			}),
			func(r *isa.RegisterFile) { r[0] = math.MinInt64 },
			math.MaxInt64,
		},
		{
			// (2^63-1)^2 mod 2^64 = 1
			"mul-overflow",
			isa.NewProgram("wrap-mul", []isa.Instruction{
				isa.Encode(isa.OpMul, 1, 2, 2),
				isa.Encode(isa.OpHalt, 1, 0, 0),
			}),
			func(r *isa.RegisterFile) { r[2] = math.MaxInt64 },
			1,
		},
	}

	for _, tt := range tests {
		for _, eng := range All() {
			regs := isa.RegisterFile{}
			tt.seed(&regs)
			got, err := eng.Run(tt.prog, &regs)
			if err != nil {
				t.Fatalf("%s/%s: %v", tt.name, eng.Name, err)
			}
			if got != tt.want {
				t.Errorf("%s/%s = %d, want %d", tt.name, eng.Name, got, tt.want)
			}
		}
	}
}

func TestAbsoluteJump(t *testing.T) {
	// JMP skips the INC, so the result stays 0.
	p := isa.NewProgram("skip", []isa.Instruction{
		isa.EncodeImm(isa.OpJmp, 0, 2),
		isa.Encode(isa.OpInc, 1, 0, 0),
		isa.Encode(isa.OpHalt, 1, 0, 0),
	})
	for _, eng := range All() {
		regs := isa.RegisterFile{}
		got, err := eng.Run(p, &regs)
		if err != nil {
			t.Fatalf("%s: %v", eng.Name, err)
		}
		if got != 0 {
			t.Errorf("%s: JMP did not skip, got %d", eng.Name, got)
		}
	}
}

func TestJmpnzFallsThroughOnZero(t *testing.T) {
	p := isa.NewProgram("fallthrough", []isa.Instruction{
		isa.EncodeImm(isa.OpJmpnz, 0, 0),
		isa.Encode(isa.OpInc, 1, 0, 0),
		isa.Encode(isa.OpHalt, 1, 0, 0),
	})
	for _, eng := range All() {
		regs := isa.RegisterFile{}
		got, err := eng.Run(p, &regs)
		if err != nil {
			t.Fatalf("%s: %v", eng.Name, err)
		}
		if got != 1 {
			t.Errorf("%s: JMPNZ r0 with r0=0 should fall through, got %d", eng.Name, got)
		}
	}
}

func TestUnknownOpcode(t *testing.T) {
	p := &isa.Program{Name: "unknown", Code: []isa.Instruction{
		isa.Encode(isa.Opcode(42), 0, 0, 0),
		isa.Encode(isa.OpHalt, 0, 0, 0),
	}}
	for _, eng := range All() {
		regs := isa.RegisterFile{}
		_, err := eng.Run(p, &regs)

		var opErr *isa.OpcodeError
		if !errors.As(err, &opErr) {
			t.Errorf("%s: err = %v, want OpcodeError", eng.Name, err)
			continue
		}
		if opErr.Opcode != 42 || opErr.PC != 0 {
			t.Errorf("%s: OpcodeError = %+v, want opcode 42 at pc 0", eng.Name, opErr)
		}
	}
}

func TestCheckedRejectsBadRegister(t *testing.T) {
	p := &isa.Program{Name: "bad-reg", Code: []isa.Instruction{
		isa.Encode(isa.OpAdd, 1, 200, 2),
		isa.Encode(isa.OpHalt, 1, 0, 0),
	}}
	for _, eng := range All() {
		if !eng.Checked {
			continue
		}
		regs := isa.RegisterFile{}
		_, err := eng.Run(p, &regs)

		var idxErr *isa.IndexError
		if !errors.As(err, &idxErr) {
			t.Errorf("%s: err = %v, want IndexError", eng.Name, err)
			continue
		}
		if idxErr.What != "register" || idxErr.Index != 200 || idxErr.PC != 0 {
			t.Errorf("%s: IndexError = %+v", eng.Name, idxErr)
		}
	}
}

func TestCheckedRejectsPCOverrun(t *testing.T) {
	// No HALT; execution falls off the end.
	p := &isa.Program{Name: "overrun", Code: []isa.Instruction{
		isa.Encode(isa.OpNop, 0, 0, 0),
	}}
	for _, eng := range All() {
		if !eng.Checked {
			continue
		}
		regs := isa.RegisterFile{}
		_, err := eng.Run(p, &regs)

		var idxErr *isa.IndexError
		if !errors.As(err, &idxErr) {
			t.Errorf("%s: err = %v, want IndexError", eng.Name, err)
			continue
		}
		if idxErr.What != "pc" {
			t.Errorf("%s: IndexError = %+v, want pc overrun", eng.Name, idxErr)
		}
	}
}

func TestEngineRegistry(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("All() returned %d engines, want 6", len(all))
	}
	wantNames := []string{
		"central", "threaded2", "threaded3",
		"central-checked", "threaded2-checked", "threaded3-checked",
	}
	for i, want := range wantNames {
		if all[i].Name != want {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].Name, want)
		}
	}

	for _, e := range Unchecked() {
		if e.Checked {
			t.Errorf("Unchecked() contains checked engine %s", e.Name)
		}
	}

	e, ok := ByName("threaded3")
	if !ok || e.Levels != 3 || e.Checked {
		t.Errorf("ByName(threaded3) = %+v, %v", e, ok)
	}
	if _, ok := ByName("threaded9"); ok {
		t.Error("ByName should reject unknown names")
	}
}
