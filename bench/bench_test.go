package bench

import (
	"errors"
	"strings"
	"testing"

	"github.com/chazu/tailspin/engine"
	"github.com/chazu/tailspin/isa"
)

func TestBuiltinPrograms(t *testing.T) {
	tests := []struct {
		name string
		n    uint16
		want int64
	}{
		// sum(i*i - i + 1) for 1..n
		{"sum-of-squares", 10, 340},
		{"sum-of-squares", 1000, 333334000},
		{"countdown", 7, 7},
		{"million-loop", 0, 1000000},
	}

	for _, tt := range tests {
		p, ok := Builtin(tt.name, tt.n)
		if !ok {
			t.Fatalf("Builtin(%q) not found", tt.name)
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("%s: invalid program: %v", tt.name, err)
		}

		regs := isa.RegisterFile{}
		got, err := engine.RunCentral(p, &regs)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s(n=%d) = %d, want %d", tt.name, tt.n, got, tt.want)
		}
	}
}

func TestBuiltinUnknown(t *testing.T) {
	if _, ok := Builtin("fizzbuzz", 0); ok {
		t.Error("Builtin should reject unknown workload names")
	}
}

func TestRunComparesAllEngines(t *testing.T) {
	p := SumOfSquares(100)
	results, err := Run(p, isa.RegisterFile{}, Options{
		Iterations: 10,
		Warmup:     2,
		Engines:    engine.All(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}

	for _, r := range results {
		if r.Scalar != 333400 {
			t.Errorf("%s scalar = %d, want 333400", r.Engine, r.Scalar)
		}
		if r.Iterations != 10 {
			t.Errorf("%s iterations = %d, want 10", r.Engine, r.Iterations)
		}
		if r.NsPerIter < 0 {
			t.Errorf("%s ns/iter = %f", r.Engine, r.NsPerIter)
		}
	}
}

func TestRunDefaultsToUncheckedEngines(t *testing.T) {
	results, err := Run(Countdown(5), isa.RegisterFile{}, Options{Iterations: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	want := []string{"central", "threaded2", "threaded3"}
	for i, r := range results {
		if r.Engine != want[i] {
			t.Errorf("results[%d] from %q, want %q", i, r.Engine, want[i])
		}
	}
}

func TestRunRejectsZeroIterations(t *testing.T) {
	if _, err := Run(Countdown(5), isa.RegisterFile{}, Options{}); err == nil {
		t.Error("Run with no iterations should error")
	}
}

func TestRunDetectsMismatch(t *testing.T) {
	// A deliberately wrong engine must fail the comparison, not silently
	// report its timing.
	broken := engine.Engine{
		Name: "broken",
		Run: func(p *isa.Program, regs *isa.RegisterFile) (int64, error) {
			return -1, nil
		},
	}

	_, err := Run(Countdown(5), isa.RegisterFile{}, Options{
		Iterations: 1,
		Engines:    []engine.Engine{engine.All()[0], broken},
	})

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want MismatchError", err)
	}
	if !strings.Contains(mismatch.Error(), "broken=-1") {
		t.Errorf("mismatch message %q does not name the disagreeing engine", mismatch.Error())
	}
}

func TestRunPropagatesEngineError(t *testing.T) {
	failing := engine.Engine{
		Name: "failing",
		Run: func(p *isa.Program, regs *isa.RegisterFile) (int64, error) {
			return 0, errors.New("boom")
		},
	}
	_, err := Run(Countdown(5), isa.RegisterFile{}, Options{
		Iterations: 1,
		Engines:    []engine.Engine{failing},
	})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("err = %v, want wrapped engine failure", err)
	}
}

func TestSeedRegistersReachEngines(t *testing.T) {
	// HALT r2 with a seeded r2: each run must start from the seed, not from
	// a previous run's leftovers.
	p := isa.NewProgram("seeded", []isa.Instruction{
		isa.Encode(isa.OpInc, 2, 0, 0),
		isa.Encode(isa.OpHalt, 2, 0, 0),
	})
	seed := isa.RegisterFile{}
	seed[2] = 10

	results, err := Run(p, seed, Options{Iterations: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range results {
		if r.Scalar != 11 {
			t.Errorf("%s scalar = %d, want 11", r.Engine, r.Scalar)
		}
	}
}

func TestReport(t *testing.T) {
	var sb strings.Builder
	Report(&sb, []Result{
		{Engine: "central", NsPerIter: 2031.4, Scalar: 333334000},
		{Engine: "threaded2", NsPerIter: 1999.9, Scalar: 333334000},
	})

	out := sb.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Report wrote %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "central:") ||
		!strings.Contains(lines[0], "2031.4 ns/iter") ||
		!strings.Contains(lines[0], "(result = 333334000)") {
		t.Errorf("unexpected report line %q", lines[0])
	}
}
