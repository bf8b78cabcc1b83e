// Dispatch engine benchmarks
//
// Run: go test -bench=. ./engine/...
//
// Each benchmark executes the same arithmetic loop workload, so comparing
// ns/op across them is comparing dispatch strategies, nothing else.
package engine

import (
	"testing"

	"github.com/chazu/tailspin/isa"
)

var benchSink int64

func benchmarkEngine(b *testing.B, run Func) {
	p := sumProgram(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		regs := isa.RegisterFile{}
		s, err := run(p, &regs)
		if err != nil {
			b.Fatal(err)
		}
		benchSink = s
	}
}

func BenchmarkCentral(b *testing.B)          { benchmarkEngine(b, RunCentral) }
func BenchmarkThreaded2(b *testing.B)        { benchmarkEngine(b, RunThreaded2) }
func BenchmarkThreaded3(b *testing.B)        { benchmarkEngine(b, RunThreaded3) }
func BenchmarkCentralChecked(b *testing.B)   { benchmarkEngine(b, RunCentralChecked) }
func BenchmarkThreaded2Checked(b *testing.B) { benchmarkEngine(b, RunThreaded2Checked) }
func BenchmarkThreaded3Checked(b *testing.B) { benchmarkEngine(b, RunThreaded3Checked) }
