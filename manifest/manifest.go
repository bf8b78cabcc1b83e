// Package manifest handles tailspin.toml benchmark configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a tailspin.toml benchmark configuration.
type Manifest struct {
	Program Program `toml:"program"`
	Bench   Bench   `toml:"bench"`
	Results Results `toml:"results"`

	// Dir is the directory containing the tailspin.toml file (set at load time).
	Dir string `toml:"-"`
}

// Program selects what to run: a builtin workload by name, or a program
// file (.tsp assembly or .tspb binary). Exactly one of Builtin and Path may
// be set.
type Program struct {
	Builtin string `toml:"builtin"`
	N       uint16 `toml:"n"`
	Path    string `toml:"path"`
}

// Bench configures the comparison itself.
type Bench struct {
	Iterations int      `toml:"iterations"`
	Warmup     int      `toml:"warmup"`
	Checked    bool     `toml:"checked"`
	Engines    []string `toml:"engines"`
}

// Results configures persistence of benchmark numbers.
type Results struct {
	Database string `toml:"database"`
}

// Filename is the manifest file name looked up in a directory.
const Filename = "tailspin.toml"

// Default returns the configuration used when no manifest exists: the
// original sum-of-squares workload at n=1000, 100k timed iterations.
func Default() *Manifest {
	return &Manifest{
		Program: Program{Builtin: "sum-of-squares", N: 1000},
		Bench:   Bench{Iterations: 100000, Warmup: 100},
	}
}

// Load parses a tailspin.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	m := Default()
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	m.Dir = dir

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate checks the manifest for contradictions before anything runs.
func (m *Manifest) Validate() error {
	if m.Program.Builtin != "" && m.Program.Path != "" {
		return fmt.Errorf("program.builtin and program.path are mutually exclusive")
	}
	if m.Program.Builtin == "" && m.Program.Path == "" {
		return fmt.Errorf("one of program.builtin or program.path is required")
	}
	if m.Bench.Iterations <= 0 {
		return fmt.Errorf("bench.iterations must be positive, got %d", m.Bench.Iterations)
	}
	if m.Bench.Warmup < 0 {
		return fmt.Errorf("bench.warmup must not be negative, got %d", m.Bench.Warmup)
	}
	return nil
}

// ProgramPath resolves a relative program.path against the manifest
// directory.
func (m *Manifest) ProgramPath() string {
	if m.Program.Path == "" || filepath.IsAbs(m.Program.Path) {
		return m.Program.Path
	}
	return filepath.Join(m.Dir, m.Program.Path)
}
