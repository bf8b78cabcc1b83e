// Package progfile serializes programs to the .tspb container: a canonical
// CBOR document with a magic tag and a format version, so encoded programs
// are deterministic byte-for-byte and stale files fail loudly.
package progfile

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/chazu/tailspin/isa"
)

// Magic identifies a tailspin program file.
const Magic = "TSPN"

// Version is the current file format version. Increment on incompatible
// changes.
const Version uint16 = 1

// cborEncMode uses canonical options for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("progfile: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

type file struct {
	Magic   string   `cbor:"magic"`
	Version uint16   `cbor:"version"`
	Name    string   `cbor:"name"`
	Code    []uint32 `cbor:"code"`
}

// Marshal serializes a program to canonical CBOR bytes.
func Marshal(p *isa.Program) ([]byte, error) {
	f := file{Magic: Magic, Version: Version, Name: p.Name, Code: make([]uint32, len(p.Code))}
	for i, in := range p.Code {
		f.Code[i] = uint32(in)
	}
	return cborEncMode.Marshal(f)
}

// Unmarshal deserializes a program, verifying magic, version, and
// well-formedness.
func Unmarshal(data []byte) (*isa.Program, error) {
	var f file
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("progfile: unmarshal: %w", err)
	}
	if f.Magic != Magic {
		return nil, fmt.Errorf("progfile: bad magic %q (want %q)", f.Magic, Magic)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("progfile: unsupported version %d (have %d)", f.Version, Version)
	}

	code := make([]isa.Instruction, len(f.Code))
	for i, w := range f.Code {
		code[i] = isa.Instruction(w)
	}
	p := isa.NewProgram(f.Name, code)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("progfile: malformed program: %w", err)
	}
	return p, nil
}

// WriteFile marshals the program to path.
func WriteFile(path string, p *isa.Program) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile loads a program from path.
func ReadFile(path string) (*isa.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}
