package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDispatchSites(t *testing.T) {
	tests := []struct {
		levels int
		want   int
	}{
		{1, 1},
		{2, 11},
		{3, 21},
		{4, 31},
	}
	for _, tt := range tests {
		if got := DispatchSites(tt.levels); got != tt.want {
			t.Errorf("DispatchSites(%d) = %d, want %d", tt.levels, got, tt.want)
		}
	}
}

func TestFuncName(t *testing.T) {
	tests := []struct {
		levels  int
		checked bool
		want    string
	}{
		{1, false, "RunThreaded1"},
		{2, false, "RunThreaded2"},
		{3, true, "RunThreaded3Checked"},
	}
	for _, tt := range tests {
		if got := FuncName(tt.levels, tt.checked); got != tt.want {
			t.Errorf("FuncName(%d, %v) = %q, want %q", tt.levels, tt.checked, got, tt.want)
		}
	}
}

func TestEmitRejectsBadLevels(t *testing.T) {
	for _, levels := range []int{-1, 0, MaxLevels + 1} {
		if _, err := Emit(levels, false); err == nil {
			t.Errorf("Emit(%d) succeeded, want error", levels)
		}
	}
}

func TestEmitProducesValidGo(t *testing.T) {
	for levels := 1; levels <= 3; levels++ {
		for _, checked := range []bool{false, true} {
			src, err := Emit(levels, checked)
			if err != nil {
				t.Fatalf("Emit(%d, %v): %v", levels, checked, err)
			}

			file := parseSource(t, src)
			if !hasFunc(file, FuncName(levels, checked)) {
				t.Errorf("Emit(%d, %v) missing func %s", levels, checked, FuncName(levels, checked))
			}
			if got := countSwitches(file); got != DispatchSites(levels) {
				t.Errorf("Emit(%d, %v) has %d dispatch switches, want %d",
					levels, checked, got, DispatchSites(levels))
			}
		}
	}
}

func TestEmitLevel1DegeneratesToCentralShape(t *testing.T) {
	// A single level means a single switch at the loop head and no chained
	// second decode.
	src, err := Emit(1, false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src, "switch in1.Op()") {
		t.Error("level-1 engine missing its loop-head switch")
	}
	if strings.Contains(src, "in2") {
		t.Error("level-1 engine should not decode a second instruction")
	}
}

func TestEmitHeader(t *testing.T) {
	src, err := Emit(2, true)
	if err != nil {
		t.Fatal(err)
	}
	first := strings.SplitN(src, "\n", 2)[0]
	want := "// Code generated by enginegen -levels 2 -checked. DO NOT EDIT."
	if first != want {
		t.Errorf("header = %q, want %q", first, want)
	}
}

var committedEngines = []struct {
	file    string
	levels  int
	checked bool
}{
	{"threaded2.go", 2, false},
	{"threaded2_checked.go", 2, true},
	{"threaded3.go", 3, false},
	{"threaded3_checked.go", 3, true},
}

func readCommittedEngine(t *testing.T, file string) string {
	t.Helper()
	path := filepath.Join("..", "engine", file)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestCommittedEnginesMatchSiteCounts(t *testing.T) {
	// The generated files in the engine package must carry exactly the
	// dispatch-site counts the generator promises.
	for _, tt := range committedEngines {
		file := parseSource(t, readCommittedEngine(t, tt.file))
		if got := countSwitches(file); got != DispatchSites(tt.levels) {
			t.Errorf("%s has %d dispatch switches, want %d", tt.file, got, DispatchSites(tt.levels))
		}
	}
}

func TestCommittedEnginesMatchEmit(t *testing.T) {
	// The DO NOT EDIT headers promise that go generate ./engine reproduces
	// the committed files byte for byte, so any drift between Emit and the
	// checked-in sources is a defect even when the semantics agree.
	for _, tt := range committedEngines {
		want, err := Emit(tt.levels, tt.checked)
		if err != nil {
			t.Fatalf("Emit(%d, %v): %v", tt.levels, tt.checked, err)
		}
		if got := readCommittedEngine(t, tt.file); got != want {
			t.Errorf("%s drifted from Emit(%d, %v) output; re-run go generate ./engine",
				tt.file, tt.levels, tt.checked)
		}
	}
}

func parseSource(t *testing.T, src string) *ast.File {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "emitted.go", src, 0)
	if err != nil {
		t.Fatalf("emitted source does not parse: %v", err)
	}
	return file
}

func countSwitches(file *ast.File) int {
	n := 0
	ast.Inspect(file, func(node ast.Node) bool {
		if _, ok := node.(*ast.SwitchStmt); ok {
			n++
		}
		return true
	})
	return n
}

func hasFunc(file *ast.File, name string) bool {
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == name {
			return true
		}
	}
	return false
}
