// This file is part of tri.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asmgen_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Virus10642/Tri-DSL/asmgen"
	"github.com/Virus10642/Tri-DSL/lower"
	"github.com/Virus10642/Tri-DSL/source"
)

// assemble runs all three remaining stages over the given DSL lines and
// returns the bytes written to out.bin, mirroring what cmd/tri does.
func assemble(t *testing.T, lines ...string) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.tri")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	src, err := source.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	lowered, err := lower.Lower(src)
	if err != nil {
		t.Fatal(err)
	}
	prog, err := asmgen.Size(src, lowered)
	if err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(t.TempDir(), "out.bin")
	if err := prog.Emit(outPath); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func assembleErr(t *testing.T, lines ...string) error {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.tri")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	src, err := source.Load(path)
	if err != nil {
		return err
	}
	lowered, err := lower.Lower(src)
	if err != nil {
		return err
	}
	prog, err := asmgen.Size(src, lowered)
	if err != nil {
		return err
	}
	return prog.Emit(filepath.Join(t.TempDir(), "out.bin"))
}

func TestEmit_dbAtOrg(t *testing.T) {
	out := assemble(t, "org(0x4)", "db(0xAA,0xBB)")
	want := append(make([]byte, 4), 0xAA, 0xBB)
	if !bytes.Equal(out, want) {
		t.Errorf("got % X, want % X", out, want)
	}
}

func TestEmit_backwardJump(t *testing.T) {
	out := assemble(t, "L:", "jmp(L)")
	want := []byte{0xE9, 0xFB, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(out, want) {
		t.Errorf("got % X, want % X", out, want)
	}
}

func TestEmit_call(t *testing.T) {
	out := assemble(t, "call(L)", "L:", "db(0x90)")
	want := []byte{0xE8, 0x00, 0x00, 0x00, 0x00, 0x90}
	if !bytes.Equal(out, want) {
		t.Errorf("got % X, want % X", out, want)
	}
}

func TestEmit_ljmp(t *testing.T) {
	out := assemble(t, "ljmp(0x1234,0x10)")
	want := []byte{0xEA, 0x34, 0x12, 0x00, 0x00, 0x10, 0x00}
	if !bytes.Equal(out, want) {
		t.Errorf("got % X, want % X", out, want)
	}
}

func TestEmit_fill(t *testing.T) {
	out := assemble(t, "fill(4,0x90)")
	want := []byte{0x90, 0x90, 0x90, 0x90}
	if !bytes.Equal(out, want) {
		t.Errorf("got % X, want % X", out, want)
	}
}

func TestEmit_intInRange(t *testing.T) {
	out := assemble(t, "int(0x80)")
	want := []byte{0xCD, 0x80}
	if !bytes.Equal(out, want) {
		t.Errorf("got % X, want % X", out, want)
	}
}

func TestEmit_intOutOfRange(t *testing.T) {
	err := assembleErr(t, "int(0x100)")
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected an out-of-range error, got %v", err)
	}
}

func TestEmit_tapeStart(t *testing.T) {
	out := assemble(t, "tape_start()")
	want := append(make([]byte, 0x500), 0xBE, 0x00, 0x05)
	if !bytes.Equal(out, want) {
		t.Errorf("got %d bytes, want %d", len(out), len(want))
	}
}

func TestEmit_undefinedLabel(t *testing.T) {
	err := assembleErr(t, "jmp(nope)")
	if err == nil || !strings.Contains(err.Error(), "undefined label") {
		t.Fatalf("expected an undefined-label error, got %v", err)
	}
}

func TestEmit_duplicateLabel(t *testing.T) {
	err := assembleErr(t, "L:", "L:")
	if err == nil || !strings.Contains(err.Error(), "duplicate label") {
		t.Fatalf("expected a duplicate-label error, got %v", err)
	}
}

func TestEmit_unknownDirective(t *testing.T) {
	err := assembleErr(t, "FROB 1,2")
	if err == nil || !strings.Contains(err.Error(), "unknown directive") {
		t.Fatalf("expected an unknown-directive error, got %v", err)
	}
}
