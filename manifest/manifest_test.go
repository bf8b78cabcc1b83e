package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, Filename), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeManifest(t, `
[program]
builtin = "countdown"
n = 500

[bench]
iterations = 2000
warmup = 10
checked = true
engines = ["central", "threaded3"]

[results]
database = "runs.db"
`)
	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.Program.Builtin != "countdown" || m.Program.N != 500 {
		t.Errorf("Program = %+v", m.Program)
	}
	if m.Bench.Iterations != 2000 || m.Bench.Warmup != 10 || !m.Bench.Checked {
		t.Errorf("Bench = %+v", m.Bench)
	}
	if len(m.Bench.Engines) != 2 || m.Bench.Engines[1] != "threaded3" {
		t.Errorf("Engines = %v", m.Bench.Engines)
	}
	if m.Results.Database != "runs.db" {
		t.Errorf("Database = %q", m.Results.Database)
	}
	if m.Dir != dir {
		t.Errorf("Dir = %q, want %q", m.Dir, dir)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	// A manifest that only names a program inherits the default bench knobs.
	dir := writeManifest(t, `
[program]
builtin = "million-loop"
`)
	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Bench.Iterations != Default().Bench.Iterations {
		t.Errorf("Iterations = %d, want default %d", m.Bench.Iterations, Default().Bench.Iterations)
	}
	if m.Bench.Warmup != Default().Bench.Warmup {
		t.Errorf("Warmup = %d, want default %d", m.Bench.Warmup, Default().Bench.Warmup)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := writeManifest(t, "[program\n")
	if _, err := Load(dir); err == nil {
		t.Error("malformed TOML should not load")
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Manifest)
		want string
	}{
		{"builtin and path", func(m *Manifest) { m.Program.Path = "x.tsp" }, "mutually exclusive"},
		{"neither source", func(m *Manifest) { m.Program.Builtin = "" }, "required"},
		{"zero iterations", func(m *Manifest) { m.Bench.Iterations = 0 }, "iterations"},
		{"negative warmup", func(m *Manifest) { m.Bench.Warmup = -1 }, "warmup"},
	}

	for _, tt := range tests {
		m := Default()
		tt.mut(m)
		err := m.Validate()
		if err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}

func TestProgramPath(t *testing.T) {
	m := &Manifest{Dir: "/cfg", Program: Program{Path: "progs/loop.tsp"}}
	if got := m.ProgramPath(); got != filepath.Join("/cfg", "progs/loop.tsp") {
		t.Errorf("ProgramPath() = %q", got)
	}

	abs := filepath.Join(string(filepath.Separator), "abs", "loop.tsp")
	m.Program.Path = abs
	if got := m.ProgramPath(); got != abs {
		t.Errorf("absolute ProgramPath() = %q, want %q", got, abs)
	}
}
