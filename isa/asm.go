package isa

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Assemble parses the textual program form into a Program. The syntax is one
// instruction per line:
//
//	; comment
//	        LOAD_IMM r0, 1000
//	loop:   ADD r1, r1, r0
//	        DEC r0
//	        JMPNZ r0, loop
//	        HALT r1
//
// Registers are r0..r15, immediates are decimal, and jump targets may be
// labels or absolute instruction indices. Mnemonics are case-insensitive.
func Assemble(name, src string) (*Program, error) {
	type pending struct {
		line int // 1-based source line, for errors
		text string
	}

	// First pass: strip comments and labels, record label positions.
	labels := make(map[string]int)
	var insts []pending
	for i, raw := range strings.Split(src, "\n") {
		line := raw
		if idx := strings.Index(line, ";"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for {
			idx := strings.Index(line, ":")
			if idx < 0 {
				break
			}
			label := strings.TrimSpace(line[:idx])
			if label == "" || strings.ContainsAny(label, " \t,") {
				return nil, fmt.Errorf("line %d: malformed label %q", i+1, label)
			}
			if _, dup := labels[label]; dup {
				return nil, fmt.Errorf("line %d: duplicate label %q", i+1, label)
			}
			labels[label] = len(insts)
			line = strings.TrimSpace(line[idx+1:])
		}
		if line == "" {
			continue
		}
		insts = append(insts, pending{line: i + 1, text: line})
	}

	// Second pass: encode.
	code := make([]Instruction, 0, len(insts))
	for _, p := range insts {
		in, err := assembleLine(p.text, labels)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
		code = append(code, in)
	}

	prog := NewProgram(name, code)
	if err := prog.Validate(); err != nil {
		return nil, err
	}
	return prog, nil
}

func assembleLine(text string, labels map[string]int) (Instruction, error) {
	head := text
	var rest string
	// Any run of whitespace separates the mnemonic from its operands, so
	// tab-indented listings assemble the same as space-indented ones.
	if idx := strings.IndexFunc(text, unicode.IsSpace); idx >= 0 {
		head, rest = text[:idx], strings.TrimSpace(text[idx+1:])
	}
	op, ok := ByName(strings.ToUpper(head))
	if !ok {
		return 0, fmt.Errorf("unknown mnemonic %q", head)
	}

	var args []string
	if rest != "" {
		for _, a := range strings.Split(rest, ",") {
			args = append(args, strings.TrimSpace(a))
		}
	}

	info := GetOpcodeInfo(op)
	switch info.Operands {
	case OperandsNone:
		if len(args) != 0 {
			return 0, fmt.Errorf("%s takes no operands", info.Name)
		}
		return Encode(op, 0, 0, 0), nil

	case OperandsDst:
		if len(args) != 1 {
			return 0, fmt.Errorf("%s takes one register operand", info.Name)
		}
		dst, err := parseReg(args[0])
		if err != nil {
			return 0, err
		}
		return Encode(op, dst, 0, 0), nil

	case OperandsDstA:
		if len(args) != 2 {
			return 0, fmt.Errorf("%s takes two register operands", info.Name)
		}
		dst, err := parseReg(args[0])
		if err != nil {
			return 0, err
		}
		a, err := parseReg(args[1])
		if err != nil {
			return 0, err
		}
		return Encode(op, dst, a, 0), nil

	case OperandsDstAB:
		if len(args) != 3 {
			return 0, fmt.Errorf("%s takes three register operands", info.Name)
		}
		dst, err := parseReg(args[0])
		if err != nil {
			return 0, err
		}
		a, err := parseReg(args[1])
		if err != nil {
			return 0, err
		}
		b, err := parseReg(args[2])
		if err != nil {
			return 0, err
		}
		return Encode(op, dst, a, b), nil

	case OperandsDstImm:
		if len(args) != 2 {
			return 0, fmt.Errorf("%s takes a register and an immediate", info.Name)
		}
		dst, err := parseReg(args[0])
		if err != nil {
			return 0, err
		}
		imm, err := parseImm(args[1], labels)
		if err != nil {
			return 0, err
		}
		return EncodeImm(op, dst, imm), nil

	case OperandsImm:
		if len(args) != 1 {
			return 0, fmt.Errorf("%s takes one immediate operand", info.Name)
		}
		imm, err := parseImm(args[0], labels)
		if err != nil {
			return 0, err
		}
		return EncodeImm(op, 0, imm), nil
	}
	return 0, fmt.Errorf("unhandled operand kind for %s", info.Name)
}

func parseReg(s string) (uint8, error) {
	if len(s) < 2 || (s[0] != 'r' && s[0] != 'R') {
		return 0, fmt.Errorf("expected register, got %q", s)
	}
	n, err := strconv.ParseUint(s[1:], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("bad register %q: %w", s, err)
	}
	if n >= NumRegisters {
		return 0, fmt.Errorf("register %q out of range (have r0..r%d)", s, NumRegisters-1)
	}
	return uint8(n), nil
}

func parseImm(s string, labels map[string]int) (uint16, error) {
	if target, ok := labels[s]; ok {
		if target > 0xFFFF {
			return 0, fmt.Errorf("label %q target %d exceeds 16 bits", s, target)
		}
		return uint16(target), nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("bad immediate %q: %w", s, err)
	}
	return uint16(n), nil
}
