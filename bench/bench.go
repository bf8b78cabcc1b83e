// Package bench times the dispatch engines against a shared program and
// verifies that they all compute the same scalar result. The harness is the
// arbiter of the experiment: a performance number from an engine that
// disagrees with the others is worthless, so result mismatches are hard
// errors, never papered over.
package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chazu/tailspin/engine"
	"github.com/chazu/tailspin/isa"
)

// sink keeps the timed calls observable so the compiler cannot discard them.
var sink int64

// Options configures a benchmark comparison.
type Options struct {
	// Iterations is the number of timed runs per engine.
	Iterations int

	// Warmup runs precede timing for each engine.
	Warmup int

	// Engines to compare. Empty means the three unchecked engines.
	Engines []engine.Engine
}

// Result is the outcome of timing one engine.
type Result struct {
	Engine     string
	Iterations int
	Elapsed    time.Duration
	NsPerIter  float64
	Scalar     int64
}

// MismatchError reports engines disagreeing on the scalar result for the
// same program and inputs.
type MismatchError struct {
	Program string
	Results []Result
}

func (e *MismatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "engines disagree on %q:", e.Program)
	for _, r := range e.Results {
		fmt.Fprintf(&sb, " %s=%d", r.Engine, r.Scalar)
	}
	return sb.String()
}

// Run times every engine against the program and checks cross-engine
// equivalence. Each invocation gets its own copy of the seed register file;
// engines never share mutable state. A run error or a result mismatch fails
// the whole comparison.
func Run(p *isa.Program, seed isa.RegisterFile, opts Options) ([]Result, error) {
	engines := opts.Engines
	if len(engines) == 0 {
		engines = engine.Unchecked()
	}
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", opts.Iterations)
	}

	results := make([]Result, 0, len(engines))
	for _, eng := range engines {
		res, err := runOne(p, seed, eng, opts)
		if err != nil {
			return nil, fmt.Errorf("engine %s: %w", eng.Name, err)
		}
		results = append(results, res)
	}

	for _, r := range results[1:] {
		if r.Scalar != results[0].Scalar {
			return results, &MismatchError{Program: p.Name, Results: results}
		}
	}
	return results, nil
}

func runOne(p *isa.Program, seed isa.RegisterFile, eng engine.Engine, opts Options) (Result, error) {
	for i := 0; i < opts.Warmup; i++ {
		regs := seed
		scalar, err := eng.Run(p, &regs)
		if err != nil {
			return Result{}, err
		}
		sink = scalar
	}

	var scalar int64
	start := time.Now()
	for i := 0; i < opts.Iterations; i++ {
		regs := seed
		s, err := eng.Run(p, &regs)
		if err != nil {
			return Result{}, err
		}
		scalar = s
		sink = s
	}
	elapsed := time.Since(start)

	return Result{
		Engine:     eng.Name,
		Iterations: opts.Iterations,
		Elapsed:    elapsed,
		NsPerIter:  float64(elapsed.Nanoseconds()) / float64(opts.Iterations),
		Scalar:     scalar,
	}, nil
}

// Report writes the comparison in the one-line-per-engine form:
//
//	central:   2031.4 ns/iter  (result = 333334000)
func Report(w io.Writer, results []Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%24s: %8.1f ns/iter  (result = %d)\n", r.Engine, r.NsPerIter, r.Scalar)
	}
}
