package isa

import (
	"strings"
	"testing"
)

func TestAllOpcodesHaveMetadata(t *testing.T) {
	// Ensure every defined opcode has metadata
	for _, op := range AllOpcodes() {
		info := GetOpcodeInfo(op)
		if info.Name == "" || strings.HasPrefix(info.Name, "UNKNOWN") {
			t.Errorf("Opcode %d has no metadata", op)
		}
	}
}

func TestOpcodeSpaceIsDense(t *testing.T) {
	// The dispatch tables index by opcode value, so there must be no gaps.
	if len(AllOpcodes()) != Count {
		t.Fatalf("AllOpcodes() returned %d opcodes, want %d", len(AllOpcodes()), Count)
	}
	for i, op := range AllOpcodes() {
		if op != Opcode(i) {
			t.Errorf("AllOpcodes()[%d] = %d, want %d", i, op, i)
		}
		if !op.Valid() {
			t.Errorf("Opcode %d should be valid", op)
		}
	}
	if Opcode(Count).Valid() {
		t.Errorf("Opcode(%d) should not be valid", Count)
	}
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{OpHalt, "HALT"},
		{OpLoadImm, "LOAD_IMM"},
		{OpAdd, "ADD"},
		{OpSub, "SUB"},
		{OpMul, "MUL"},
		{OpInc, "INC"},
		{OpDec, "DEC"},
		{OpMov, "MOV"},
		{OpJmp, "JMP"},
		{OpJmpnz, "JMPNZ"},
		{OpNop, "NOP"},
	}

	for _, tt := range tests {
		got := tt.op.String()
		if got != tt.want {
			t.Errorf("Opcode(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestUnknownOpcodeString(t *testing.T) {
	op := Opcode(0xEE) // Not defined
	got := op.String()
	if !strings.HasPrefix(got, "UNKNOWN") {
		t.Errorf("Unknown opcode should return UNKNOWN, got %q", got)
	}
}

func TestByName(t *testing.T) {
	for _, op := range AllOpcodes() {
		got, ok := ByName(op.String())
		if !ok {
			t.Errorf("ByName(%q) not found", op.String())
			continue
		}
		if got != op {
			t.Errorf("ByName(%q) = %d, want %d", op.String(), got, op)
		}
	}

	if _, ok := ByName("FROBNICATE"); ok {
		t.Error("ByName should reject unknown mnemonics")
	}
	if _, ok := ByName("add"); ok {
		t.Error("ByName is case-sensitive; lowercase should not resolve")
	}
}

func TestOperandKinds(t *testing.T) {
	tests := []struct {
		op   Opcode
		want OperandKind
	}{
		{OpHalt, OperandsDst},
		{OpLoadImm, OperandsDstImm},
		{OpAdd, OperandsDstAB},
		{OpSub, OperandsDstAB},
		{OpMul, OperandsDstAB},
		{OpInc, OperandsDst},
		{OpDec, OperandsDst},
		{OpMov, OperandsDstA},
		{OpJmp, OperandsImm},
		{OpJmpnz, OperandsDstImm},
		{OpNop, OperandsNone},
	}

	for _, tt := range tests {
		got := GetOpcodeInfo(tt.op).Operands
		if got != tt.want {
			t.Errorf("%s operand kind = %d, want %d", tt.op, got, tt.want)
		}
	}
}
