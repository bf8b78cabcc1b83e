// Package isa defines the instruction set of the tailspin register machine:
// a deliberately small VM built to compare instruction-dispatch strategies
// rather than to run real workloads.
//
// The machine has 16 signed 64-bit registers and a program counter. Each
// instruction is a single uint32 packing an opcode byte and three 8-bit
// operand fields (dst, a, b); the immediate-carrying opcodes reuse a and b
// as a 16-bit immediate. The opcode space is closed and dense (0..10) so a
// decoded opcode can drive a dispatch table directly.
//
// Arithmetic wraps modulo 2^64; overflow is never an error. Malformed
// programs (register indices or jump targets out of range) are a caller
// precondition; Program.Validate checks it ahead of time and the checked
// engine variants re-verify every access at run time.
//
// The package also carries the tooling surface around the encoding: a small
// two-pass assembler with labels (Assemble), a listing disassembler
// (Program.Disassemble), and per-opcode metadata (GetOpcodeInfo) shared by
// both.
package isa
