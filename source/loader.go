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

// Package source reads the DSL source file and holds the ordered,
// trimmed, non-comment, non-empty line sequence every downstream pass
// indexes into for diagnostics.
package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// MaxLines is the retained-line cap from the DSL's external interface.
const MaxLines = 512

// MaxLineBytes is the per-line visible-byte cap.
const MaxLineBytes = 79

// Line is one retained DSL source line, numbered from zero by its
// position in the slice returned by Load.
type Line struct {
	Text  string // trimmed, original case
	Lower string // case-folded view, kept alongside so the lowerer never
	// has to re-derive it or mutate Text in place
}

// Load reads path, trims each line, and drops blank lines and lines whose
// first non-space character is ';'. It fails fatally rather than
// truncating if a retained line exceeds MaxLineBytes or the file has
// more than MaxLines retained lines.
func Load(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open source %q", path)
	}
	defer f.Close()

	var lines []Line
	raw := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		raw++
		t := strings.TrimSpace(sc.Text())
		if t == "" || t[0] == ';' {
			continue
		}
		if len(t) > MaxLineBytes {
			return nil, &Diagnostic{LineNo: len(lines) + 1, Text: t,
				Msg: fmt.Sprintf("line (file line %d) exceeds %d bytes", raw, MaxLineBytes)}
		}
		if len(lines) >= MaxLines {
			return nil, &Diagnostic{LineNo: len(lines) + 1, Text: t,
				Msg: fmt.Sprintf("too many source lines (> %d)", MaxLines)}
		}
		lines = append(lines, Line{Text: t, Lower: strings.ToLower(t)})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return lines, nil
}

// Diagnostic is a fatal error citing a specific retained DSL line, in the
// shape spec'd for both source-stage and assembler-stage errors.
type Diagnostic struct {
	LineNo int // 1-based
	Text   string
	Msg    string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("Error at source line %d: %s\n    %s\n", d.LineNo, d.Msg, d.Text)
}

// NewDiagnostic builds a Diagnostic for the line at idx (0-based) in
// lines, formatting Msg like fmt.Sprintf.
func NewDiagnostic(lines []Line, idx int, format string, args ...interface{}) error {
	return &Diagnostic{
		LineNo: idx + 1,
		Text:   lines[idx].Text,
		Msg:    fmt.Sprintf(format, args...),
	}
}
