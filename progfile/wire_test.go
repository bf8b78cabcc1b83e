package progfile

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/chazu/tailspin/isa"
)

func testProgram() *isa.Program {
	return isa.NewProgram("roundtrip", []isa.Instruction{
		isa.EncodeImm(isa.OpLoadImm, 0, 5),
		isa.Encode(isa.OpInc, 1, 0, 0),
		isa.Encode(isa.OpDec, 0, 0, 0),
		isa.EncodeImm(isa.OpJmpnz, 0, 1),
		isa.Encode(isa.OpHalt, 1, 0, 0),
	})
}

func TestRoundTrip(t *testing.T) {
	p := testProgram()
	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Name != p.Name {
		t.Errorf("Name = %q, want %q", got.Name, p.Name)
	}
	if got.Len() != p.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), p.Len())
	}
	for i := range p.Code {
		if got.Code[i] != p.Code[i] {
			t.Errorf("Code[%d] = %s, want %s", i, got.Code[i], p.Code[i])
		}
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	p := testProgram()
	a, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated Marshal of the same program produced different bytes")
	}
}

func TestUnmarshalRejectsBadMagic(t *testing.T) {
	data, err := cborEncMode.Marshal(file{Magic: "NOPE", Version: Version, Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Unmarshal(data)
	if err == nil || !strings.Contains(err.Error(), "bad magic") {
		t.Errorf("err = %v, want bad magic", err)
	}
}

func TestUnmarshalRejectsBadVersion(t *testing.T) {
	data, err := cborEncMode.Marshal(file{Magic: Magic, Version: Version + 1, Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Unmarshal(data)
	if err == nil || !strings.Contains(err.Error(), "unsupported version") {
		t.Errorf("err = %v, want unsupported version", err)
	}
}

func TestUnmarshalRejectsMalformedProgram(t *testing.T) {
	// Valid container, invalid instruction stream.
	data, err := cborEncMode.Marshal(file{
		Magic:   Magic,
		Version: Version,
		Name:    "bad",
		Code:    []uint32{uint32(isa.Encode(isa.Opcode(99), 0, 0, 0))},
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Unmarshal(data)
	if err == nil || !strings.Contains(err.Error(), "malformed program") {
		t.Errorf("err = %v, want malformed program", err)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("not cbor at all")); err == nil {
		t.Error("garbage input should not unmarshal")
	}
}

func TestCBORTagsSurvive(t *testing.T) {
	// The container keys are part of the format.
	data, err := Marshal(testProgram())
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"magic", "version", "name", "code"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("encoded container missing key %q", key)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.tspb")
	p := testProgram()

	if err := WriteFile(path, p); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.Name != p.Name || got.Len() != p.Len() {
		t.Errorf("ReadFile = %q/%d, want %q/%d", got.Name, got.Len(), p.Name, p.Len())
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.tspb")); err == nil {
		t.Error("reading a missing file should error")
	}
}
