// Command enginegen emits the threaded dispatch engines for the engine
// package. It is invoked through go:generate; see engine/engine.go.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chazu/tailspin/codegen"
)

func main() {
	levels := flag.Int("levels", 2, "Number of chained dispatch sites per loop iteration")
	checked := flag.Bool("checked", false, "Emit the bounds-validated engine variant")
	out := flag.String("o", "", "Output file (stdout when empty)")
	flag.Parse()

	src, err := codegen.Emit(*levels, *checked)
	if err != nil {
		fmt.Fprintf(os.Stderr, "enginegen: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Print(src)
		return
	}
	if err := os.WriteFile(*out, []byte(src), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "enginegen: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
}
