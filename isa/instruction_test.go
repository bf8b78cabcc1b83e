package isa

import "testing"

func TestEncodeFields(t *testing.T) {
	in := Encode(OpAdd, 1, 2, 3)
	if in.Op() != OpAdd {
		t.Errorf("Op() = %s, want ADD", in.Op())
	}
	if in.Dst() != 1 || in.A() != 2 || in.B() != 3 {
		t.Errorf("fields = (%d, %d, %d), want (1, 2, 3)", in.Dst(), in.A(), in.B())
	}
}

func TestEncodeBitLayout(t *testing.T) {
	// op in the low byte, then dst, a, b
	in := Encode(Opcode(0x0A), 0x0B, 0x0C, 0x0D)
	if uint32(in) != 0x0D0C0B0A {
		t.Errorf("Encode = 0x%08X, want 0x0D0C0B0A", uint32(in))
	}
}

func TestEncodeImm(t *testing.T) {
	tests := []struct {
		imm uint16
	}{
		{0},
		{1},
		{255},
		{256},
		{1000},
		{0xFFFF},
	}

	for _, tt := range tests {
		in := EncodeImm(OpLoadImm, 5, tt.imm)
		if in.Imm() != tt.imm {
			t.Errorf("EncodeImm(%d).Imm() = %d", tt.imm, in.Imm())
		}
		if in.Dst() != 5 {
			t.Errorf("EncodeImm(%d).Dst() = %d, want 5", tt.imm, in.Dst())
		}
	}
}

func TestImmSpansAB(t *testing.T) {
	// The immediate lives little-endian in the a/b fields.
	in := EncodeImm(OpJmp, 0, 0x1234)
	if in.A() != 0x34 || in.B() != 0x12 {
		t.Errorf("a/b = (0x%02X, 0x%02X), want (0x34, 0x12)", in.A(), in.B())
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		in   Instruction
		want string
	}{
		{Encode(OpNop, 0, 0, 0), "NOP"},
		{Encode(OpHalt, 1, 0, 0), "HALT r1"},
		{Encode(OpInc, 3, 0, 0), "INC r3"},
		{Encode(OpMov, 2, 7, 0), "MOV r2, r7"},
		{Encode(OpAdd, 1, 2, 3), "ADD r1, r2, r3"},
		{EncodeImm(OpLoadImm, 0, 1000), "LOAD_IMM r0, 1000"},
		{EncodeImm(OpJmp, 0, 3), "JMP 3"},
		{EncodeImm(OpJmpnz, 0, 3), "JMPNZ r0, 3"},
	}

	for _, tt := range tests {
		got := tt.in.String()
		if got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
