// Package codegen emits the threaded dispatch engines as Go source. The
// duplication that gives each opcode its own dispatch site is bounded,
// explicit code generation, never recursive inlining at run time, so the
// expansion is finite by construction and the unroll depth is a compile-time
// constant baked into the emitted function.
package codegen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/chazu/tailspin/isa"
)

const isaPath = "github.com/chazu/tailspin/isa"

// MaxLevels bounds the unroll depth. Beyond three levels the emitted code
// grows without measurable benefit; the bound is what keeps generation
// terminating rather than expanding without limit.
const MaxLevels = 4

// DispatchSites returns the number of decode+branch sites the engine emitted
// for the given level count contains: one at the loop head, plus one per
// non-HALT opcode for every additional chained level. Useful as a
// non-functional regression check against generated-code inspection.
func DispatchSites(levels int) int {
	if levels <= 1 {
		return 1
	}
	return 1 + (isa.Count-1)*(levels-1)
}

// FuncName returns the name of the engine function Emit produces.
func FuncName(levels int, checked bool) string {
	name := fmt.Sprintf("RunThreaded%d", levels)
	if checked {
		name += "Checked"
	}
	return name
}

// Emit renders a complete `package engine` source file containing the
// threaded engine for the given number of chained dispatch levels. levels=1
// degenerates to the central engine's structure: a single switch at the loop
// head. checked adds bounds validation on every register and
// program-counter access without collapsing the duplicated switches.
func Emit(levels int, checked bool) (string, error) {
	if levels < 1 || levels > MaxLevels {
		return "", fmt.Errorf("levels must be in [1,%d], got %d", MaxLevels, levels)
	}

	flag := fmt.Sprintf("-levels %d", levels)
	if checked {
		flag += " -checked"
	}

	f := jen.NewFile("engine")
	f.HeaderComment(fmt.Sprintf("Code generated by enginegen %s. DO NOT EDIT.", flag))
	f.ImportName(isaPath, "isa")

	name := FuncName(levels, checked)
	f.Comment(fmt.Sprintf("%s chains %d decode+dispatch sites per loop iteration: every", name, levels))
	f.Comment("non-HALT arm of the outer switch performs its effect, then re-decodes and")
	f.Comment("dispatches the following instruction through its own duplicated switch")
	f.Comment("before control returns to the loop head.")
	if checked {
		f.Comment("Register and program-counter accesses are bounds-validated; failures")
		f.Comment("surface as *isa.IndexError without collapsing the duplicated dispatch")
		f.Comment("sites.")
	}

	body := []jen.Code{
		jen.Id("code").Op(":=").Id("p").Dot("Code"),
		jen.Id("r").Op(":=").Id("regs"),
		jen.Id("pc").Op(":=").Lit(0),
		jen.For().Block(loopBody(levels, checked)...),
	}

	f.Func().Id(name).Params(
		jen.Id("p").Op("*").Qual(isaPath, "Program"),
		jen.Id("regs").Op("*").Qual(isaPath, "RegisterFile"),
	).Params(jen.Int64(), jen.Error()).Block(body...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

func loopBody(levels int, checked bool) []jen.Code {
	out := decode(1, checked)
	if levels == 1 {
		return append(out, effectSwitch(1, checked))
	}
	return append(out, outerSwitch(levels, checked))
}

// outerSwitch builds the level-1 switch whose non-HALT arms carry the
// duplicated inline dispatches for levels 2..N.
func outerSwitch(levels int, checked bool) jen.Code {
	v := instrVar(1)
	var cases []jen.Code
	for _, op := range isa.AllOpcodes() {
		if op == isa.OpHalt {
			cases = append(cases, jen.Case(opConst(op)).Block(haltArm(v, checked)...))
			continue
		}
		arm := armEffect(op, v, checked)
		for k := 2; k <= levels; k++ {
			arm = append(arm, decode(k, checked)...)
			arm = append(arm, effectSwitch(k, checked))
		}
		cases = append(cases, jen.Case(opConst(op)).Block(arm...))
	}
	cases = append(cases, defaultArm(v))
	return jen.Switch(jen.Id(v).Dot("Op").Call()).Block(cases...)
}

// effectSwitch builds a dispatch switch whose arms perform their effect and
// fall through; HALT returns and unknown opcodes error. This is the shape
// duplicated once per (opcode, level) pair.
func effectSwitch(level int, checked bool) jen.Code {
	v := instrVar(level)
	var cases []jen.Code
	for _, op := range isa.AllOpcodes() {
		if op == isa.OpHalt {
			cases = append(cases, jen.Case(opConst(op)).Block(haltArm(v, checked)...))
			continue
		}
		cases = append(cases, jen.Case(opConst(op)).Block(armEffect(op, v, checked)...))
	}
	cases = append(cases, defaultArm(v))
	return jen.Switch(jen.Id(v).Dot("Op").Call()).Block(cases...)
}

func instrVar(level int) string {
	return fmt.Sprintf("in%d", level)
}

func opConst(op isa.Opcode) jen.Code {
	names := map[isa.Opcode]string{
		isa.OpHalt:    "OpHalt",
		isa.OpLoadImm: "OpLoadImm",
		isa.OpAdd:     "OpAdd",
		isa.OpSub:     "OpSub",
		isa.OpMul:     "OpMul",
		isa.OpInc:     "OpInc",
		isa.OpDec:     "OpDec",
		isa.OpMov:     "OpMov",
		isa.OpJmp:     "OpJmp",
		isa.OpJmpnz:   "OpJmpnz",
		isa.OpNop:     "OpNop",
	}
	return jen.Qual(isaPath, names[op])
}

func decode(level int, checked bool) []jen.Code {
	var out []jen.Code
	if checked {
		out = append(out, jen.If(
			jen.Err().Op(":=").Id("checkPC").Call(jen.Id("code"), jen.Id("pc")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Lit(0), jen.Err())))
	}
	return append(out,
		jen.Id(instrVar(level)).Op(":=").Id("code").Index(jen.Id("pc")),
		jen.Id("pc").Op("++"),
	)
}

func haltArm(v string, checked bool) []jen.Code {
	var out []jen.Code
	if checked {
		out = append(out, boundsGuard("checkDst", v))
	}
	return append(out, jen.Return(jen.Id("r").Index(jen.Id(v).Dot("Dst").Call()), jen.Nil()))
}

// Ordered Values keeps the literal on one line, the way the committed
// engines are formatted; jen.Dict would break it across lines.
func defaultArm(v string) jen.Code {
	return jen.Default().Block(jen.Return(jen.Lit(0), jen.Op("&").Qual(isaPath, "OpcodeError").Values(
		jen.Id("Opcode").Op(":").Id(v).Dot("Op").Call(),
		jen.Id("PC").Op(":").Id("pc").Op("-").Lit(1),
	)))
}

func boundsGuard(fn, v string) jen.Code {
	return jen.If(
		jen.Err().Op(":=").Id(fn).Call(jen.Id(v), jen.Id("pc")),
		jen.Err().Op("!=").Nil(),
	).Block(jen.Return(jen.Lit(0), jen.Err()))
}

// armEffect renders the semantic action of a single non-HALT opcode against
// the instruction variable v, with the bounds guard in checked mode.
func armEffect(op isa.Opcode, v string, checked bool) []jen.Code {
	dst := jen.Id("r").Index(jen.Id(v).Dot("Dst").Call())
	regA := jen.Id("r").Index(jen.Id(v).Dot("A").Call())
	regB := jen.Id("r").Index(jen.Id(v).Dot("B").Call())
	imm := jen.Id(v).Dot("Imm").Call()

	var guard string
	var eff []jen.Code
	switch op {
	case isa.OpLoadImm:
		guard = "checkDst"
		eff = []jen.Code{dst.Clone().Op("=").Int64().Parens(imm)}
	case isa.OpAdd:
		guard = "checkDstAB"
		eff = []jen.Code{dst.Clone().Op("=").Add(regA).Op("+").Add(regB)}
	case isa.OpSub:
		guard = "checkDstAB"
		eff = []jen.Code{dst.Clone().Op("=").Add(regA).Op("-").Add(regB)}
	case isa.OpMul:
		guard = "checkDstAB"
		eff = []jen.Code{dst.Clone().Op("=").Add(regA).Op("*").Add(regB)}
	case isa.OpInc:
		guard = "checkDst"
		eff = []jen.Code{dst.Clone().Op("++")}
	case isa.OpDec:
		guard = "checkDst"
		eff = []jen.Code{dst.Clone().Op("--")}
	case isa.OpMov:
		guard = "checkDstA"
		eff = []jen.Code{dst.Clone().Op("=").Add(regA)}
	case isa.OpJmp:
		eff = []jen.Code{jen.Id("pc").Op("=").Int().Parens(imm)}
	case isa.OpJmpnz:
		guard = "checkDst"
		eff = []jen.Code{jen.If(dst.Clone().Op("!=").Lit(0)).Block(
			jen.Id("pc").Op("=").Int().Parens(imm),
		)}
	case isa.OpNop:
		// no effect
	}

	var out []jen.Code
	if checked && guard != "" {
		out = append(out, boundsGuard(guard, v))
	}
	return append(out, eff...)
}
