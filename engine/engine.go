package engine

import "github.com/chazu/tailspin/isa"

//go:generate go run github.com/chazu/tailspin/cmd/enginegen -levels 2 -o threaded2.go
//go:generate go run github.com/chazu/tailspin/cmd/enginegen -levels 2 -checked -o threaded2_checked.go
//go:generate go run github.com/chazu/tailspin/cmd/enginegen -levels 3 -o threaded3.go
//go:generate go run github.com/chazu/tailspin/cmd/enginegen -levels 3 -checked -o threaded3_checked.go

// Func executes a program against a register file and returns the scalar
// result produced by HALT. The register file is mutated in place; it must
// not be shared with a concurrent run.
type Func func(p *isa.Program, regs *isa.RegisterFile) (int64, error)

// Engine pairs a dispatch implementation with its descriptive metadata.
// Levels is the number of decode+branch sites chained per loop iteration:
// 1 for the central engine, 2 and 3 for the threaded variants.
type Engine struct {
	Name    string
	Levels  int
	Checked bool
	Run     Func
}

// All returns every engine, unchecked first. The order is stable; the
// benchmark report follows it.
func All() []Engine {
	return []Engine{
		{Name: "central", Levels: 1, Run: RunCentral},
		{Name: "threaded2", Levels: 2, Run: RunThreaded2},
		{Name: "threaded3", Levels: 3, Run: RunThreaded3},
		{Name: "central-checked", Levels: 1, Checked: true, Run: RunCentralChecked},
		{Name: "threaded2-checked", Levels: 2, Checked: true, Run: RunThreaded2Checked},
		{Name: "threaded3-checked", Levels: 3, Checked: true, Run: RunThreaded3Checked},
	}
}

// Unchecked returns the three unchecked engines.
func Unchecked() []Engine {
	return All()[:3]
}

// ByName looks an engine up by its report name.
func ByName(name string) (Engine, bool) {
	for _, e := range All() {
		if e.Name == name {
			return e, true
		}
	}
	return Engine{}, false
}
