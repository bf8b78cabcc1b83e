package isa

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable listing of the program, one
// instruction per line with its index.
func (p *Program) Disassemble() string {
	var sb strings.Builder

	if p.Name != "" {
		sb.WriteString(fmt.Sprintf("; === %s ===\n", p.Name))
	}
	sb.WriteString(fmt.Sprintf("; %d instructions, %d registers\n", len(p.Code), NumRegisters))

	for pc, in := range p.Code {
		sb.WriteString(fmt.Sprintf("%04d  %s", pc, in.String()))
		// Flag backward jumps; they are the loops worth spotting in a listing.
		if op := in.Op(); (op == OpJmp || op == OpJmpnz) && int(in.Imm()) <= pc {
			sb.WriteString("        ; loop")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
