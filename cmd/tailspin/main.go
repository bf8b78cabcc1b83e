// Command tailspin runs the dispatch-strategy comparison: it executes the
// same program on the central and threaded engines, checks that they agree,
// and reports nanoseconds per iteration for each.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/tailspin/bench"
	"github.com/chazu/tailspin/codegen"
	"github.com/chazu/tailspin/engine"
	"github.com/chazu/tailspin/isa"
	"github.com/chazu/tailspin/manifest"
	"github.com/chazu/tailspin/progfile"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("tailspin")

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	configDir := flag.String("config", "", "Directory containing tailspin.toml (default: current directory, falling back to builtin defaults)")
	iterations := flag.Int("iterations", 0, "Override timed iterations per engine")
	warmup := flag.Int("warmup", -1, "Override warmup runs per engine")
	checked := flag.Bool("checked", false, "Compare the bounds-validated engine variants")
	engineList := flag.String("engines", "", "Comma-separated engine names to compare (e.g. central,threaded2)")
	dbPath := flag.String("db", "", "Record results to this SQLite database")
	disasmPath := flag.String("disasm", "", "Disassemble a .tsp/.tspb program file and exit")
	compilePath := flag.String("compile", "", "Assemble a .tsp file to binary program form and exit")
	outPath := flag.String("o", "", "Output path for -compile")
	emitLevels := flag.Int("emit", 0, "Print the generated threaded engine source for N dispatch levels and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tailspin [options] [program.tsp|program.tspb]\n\n")
		fmt.Fprintf(os.Stderr, "Benchmarks instruction-dispatch strategies of a small register VM.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tailspin                          # Benchmark the builtin sum-of-squares workload\n")
		fmt.Fprintf(os.Stderr, "  tailspin loop.tsp                 # Benchmark an assembled program\n")
		fmt.Fprintf(os.Stderr, "  tailspin -checked                 # Compare the bounds-validated engines\n")
		fmt.Fprintf(os.Stderr, "  tailspin -compile loop.tsp -o loop.tspb\n")
		fmt.Fprintf(os.Stderr, "  tailspin -disasm loop.tspb        # Print a listing\n")
		fmt.Fprintf(os.Stderr, "  tailspin -emit 3                  # Show generated threaded-3 engine source\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	switch {
	case *emitLevels != 0:
		src, err := codegen.Emit(*emitLevels, *checked)
		if err != nil {
			fail("%v", err)
		}
		fmt.Print(src)
		return

	case *disasmPath != "":
		p, err := loadProgram(*disasmPath)
		if err != nil {
			fail("%v", err)
		}
		fmt.Print(p.Disassemble())
		return

	case *compilePath != "":
		if err := compile(*compilePath, *outPath); err != nil {
			fail("%v", err)
		}
		return
	}

	m, err := loadManifest(*configDir)
	if err != nil {
		fail("%v", err)
	}

	// CLI flags override the manifest.
	if *iterations > 0 {
		m.Bench.Iterations = *iterations
	}
	if *warmup >= 0 {
		m.Bench.Warmup = *warmup
	}
	if *checked {
		m.Bench.Checked = true
	}
	if *engineList != "" {
		m.Bench.Engines = strings.Split(*engineList, ",")
	}
	if *dbPath != "" {
		m.Results.Database = *dbPath
	}
	if args := flag.Args(); len(args) > 0 {
		m.Program = manifest.Program{Path: args[0]}
		m.Dir = ""
	}

	p, err := resolveProgram(m)
	if err != nil {
		fail("%v", err)
	}
	engines, err := resolveEngines(m.Bench)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("VM Dispatch Benchmark")
	fmt.Printf("Program: %s (%d instructions)\n", p.Name, p.Len())
	fmt.Printf("Iterations: %d\n\n", m.Bench.Iterations)

	results, err := bench.Run(p, isa.RegisterFile{}, bench.Options{
		Iterations: m.Bench.Iterations,
		Warmup:     m.Bench.Warmup,
		Engines:    engines,
	})
	if err != nil {
		fail("%v", err)
	}
	bench.Report(os.Stdout, results)

	if m.Results.Database != "" {
		if err := record(m.Results.Database, p.Name, results); err != nil {
			fail("%v", err)
		}
		log.Infof("recorded %d results to %s", len(results), m.Results.Database)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func loadManifest(dir string) (*manifest.Manifest, error) {
	if dir != "" {
		return manifest.Load(dir)
	}
	m, err := manifest.Load(".")
	if errors.Is(err, fs.ErrNotExist) {
		// A missing manifest is fine. A present but broken one is not.
		log.Info("no tailspin.toml, using builtin defaults")
		return manifest.Default(), nil
	}
	return m, err
}

func resolveProgram(m *manifest.Manifest) (*isa.Program, error) {
	if m.Program.Builtin != "" {
		p, ok := bench.Builtin(m.Program.Builtin, m.Program.N)
		if !ok {
			return nil, fmt.Errorf("unknown builtin workload %q", m.Program.Builtin)
		}
		return p, nil
	}
	return loadProgram(m.ProgramPath())
}

func loadProgram(path string) (*isa.Program, error) {
	if filepath.Ext(path) == ".tspb" {
		return progfile.ReadFile(path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return isa.Assemble(name, string(src))
}

func resolveEngines(b manifest.Bench) ([]engine.Engine, error) {
	if len(b.Engines) > 0 {
		var out []engine.Engine
		for _, name := range b.Engines {
			name = strings.TrimSpace(name)
			if b.Checked && !strings.HasSuffix(name, "-checked") {
				name += "-checked"
			}
			e, ok := engine.ByName(name)
			if !ok {
				return nil, fmt.Errorf("unknown engine %q", name)
			}
			out = append(out, e)
		}
		return out, nil
	}
	if b.Checked {
		return engine.All()[3:], nil
	}
	return engine.Unchecked(), nil
}

func compile(inPath, outPath string) error {
	p, err := loadProgram(inPath)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".tspb"
	}
	if err := progfile.WriteFile(outPath, p); err != nil {
		return err
	}
	log.Infof("wrote %s (%d instructions)", outPath, p.Len())
	return nil
}

func record(dbPath, program string, results []bench.Result) error {
	store, err := bench.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.RecordAll(program, results)
}
