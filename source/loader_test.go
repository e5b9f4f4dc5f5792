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

package source_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Virus10642/Tri-DSL/source"
)

func write(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.tri")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_skipsBlankAndComment(t *testing.T) {
	path := write(t, "\n  \n; a comment\n  db(1)  \n;another\nINT 0x80\n")
	lines, err := source.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 retained lines, got %d: %#v", len(lines), lines)
	}
	if lines[0].Text != "db(1)" {
		t.Errorf("lines[0].Text = %q", lines[0].Text)
	}
	if lines[1].Lower != "int 0x80" {
		t.Errorf("lines[1].Lower = %q", lines[1].Lower)
	}
}

func TestLoad_lineTooLong(t *testing.T) {
	path := write(t, strings.Repeat("a", source.MaxLineBytes+1)+"\n")
	_, err := source.Load(path)
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("expected a line-length error, got %v", err)
	}
}

func TestLoad_tooManyLines(t *testing.T) {
	var b strings.Builder
	for i := 0; i <= source.MaxLines; i++ {
		b.WriteString("DB 1\n")
	}
	path := write(t, b.String())
	_, err := source.Load(path)
	if err == nil || !strings.Contains(err.Error(), "too many source lines") {
		t.Fatalf("expected a too-many-lines error, got %v", err)
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := source.Load(filepath.Join(t.TempDir(), "nope.tri"))
	if err == nil {
		t.Fatal("expected an error opening a missing file")
	}
}

func TestDiagnostic_formatting(t *testing.T) {
	lines := []source.Line{{Text: "jmp(foo)", Lower: "jmp(foo)"}}
	err := source.NewDiagnostic(lines, 0, "undefined label %q", "foo")
	want := "Error at source line 1: undefined label \"foo\"\n    jmp(foo)\n"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
