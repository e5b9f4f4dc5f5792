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

// Package asmgen implements the assembler's two remaining passes: Size
// (Pass A) walks the lowered line stream, computes each line's byte
// size, and builds the label table; Emit (Pass B) walks the same stream
// again with its own mirrored program counter and writes the resolved
// bytes to the output file.
//
// Supported mnemonics and their byte sizes:
//
//	ORG addr           0   (side-effect only: seeks the output)
//	DB v1,v2,...        len(operands)
//	FILL count,value    count
//	INT imm8            2   -> CD imm8
//	JMP label           5   -> E9 rel32
//	CALL label          5   -> E8 rel32
//	LJMP off:seg        6   -> EA off32 seg16
//	name:               0   (label definition, not an instruction)
package asmgen

import (
	"strings"

	"github.com/Virus10642/Tri-DSL/lower"
	"github.com/Virus10642/Tri-DSL/source"
)

// Line is the assembler-line record: a shallow clone of a lowered line
// plus a back-index into the lowered sequence, so diagnostics can walk
// assembler -> lowered -> source to name the original DSL line.
type Line struct {
	Text       string
	LoweredIdx int
}

// Program holds the full provenance chain plus the assembler-line stream
// and the label table built by Size, ready for Emit.
type Program struct {
	src     []source.Line
	lowered []lower.Line
	lines   []Line
	labels  labelTable
}

// errorAt builds a Diagnostic for assembler line i by walking the
// provenance chain back to the DSL source line that produced it.
func (p *Program) errorAt(i int, format string, args ...interface{}) error {
	srcIdx := p.lowered[p.lines[i].LoweredIdx].SourceIdx
	return source.NewDiagnostic(p.src, srcIdx, format, args...)
}

// tokenize splits an assembler line the way the sizer and emitter both
// identify a mnemonic and its operands: on any run of spaces, tabs or
// commas, discarding empty fields.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}
