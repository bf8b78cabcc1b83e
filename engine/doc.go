// Package engine holds the dispatch-strategy implementations under
// comparison. Every engine runs the same isa.Program against the same
// register-machine semantics; only the shape of the compiled dispatch code
// differs.
//
// RunCentral is the baseline: one decode+branch site at the loop head that
// every instruction handler returns to. The threaded engines (RunThreaded2,
// RunThreaded3) duplicate the decode-and-branch logic inline at the tail of
// every opcode handler, giving each (opcode, level) pair its own dispatch
// site; the bet is that each site then specializes to its own local opcode
// history in the CPU's indirect-branch predictor. The duplication trades
// code size and instruction-cache pressure for fewer branch mispredictions,
// and whether the sites survive to machine code depends on the compiler not
// tail-merging them; the functional contract holds either way.
//
// The threaded engines are generated (see the codegen package and
// cmd/enginegen); the unroll depth is fixed at generation time, which is
// what bounds the expansion.
//
// Each engine comes in an unchecked flavor, which trusts the program to be
// well-formed, and a checked flavor, which validates every register and
// program-counter access and returns *isa.IndexError on violation. The
// checked flavors keep the duplicated dispatch structure intact.
package engine
