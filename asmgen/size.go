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

package asmgen

import (
	"strings"

	"github.com/Virus10642/Tri-DSL/internal/imm"
	"github.com/Virus10642/Tri-DSL/lower"
	"github.com/Virus10642/Tri-DSL/source"
)

// Size runs Pass A: it clones lowered into the assembler-line stream,
// walks it with a PC starting at 0, sizes each line, and populates the
// label table. The returned Program's PC bookkeeping is byte-for-byte
// what Emit must reproduce — that agreement is the label-stability
// invariant the whole translator depends on for correct relative jumps.
func Size(src []source.Line, lowered []lower.Line) (*Program, error) {
	lines := make([]Line, len(lowered))
	for i, l := range lowered {
		lines[i] = Line{Text: l.Text, LoweredIdx: i}
	}
	p := &Program{src: src, lowered: lowered, lines: lines, labels: labelTable{}}

	var pc uint32
	for i, ln := range lines {
		toks := tokenize(ln.Text)
		if len(toks) == 0 {
			continue
		}
		mnemonic := toks[0]

		if strings.HasSuffix(mnemonic, ":") {
			name := strings.TrimSuffix(mnemonic, ":")
			if err := p.labels.define(name, pc); err != nil {
				return nil, p.errorAt(i, "%s", err)
			}
			continue
		}

		sz, err := p.lineSize(i, mnemonic, toks[1:])
		if err != nil {
			return nil, err
		}
		pc += sz
	}
	return p, nil
}

// lineSize returns the byte size mnemonic contributes, per the sizer's
// table. Unrecognized mnemonics size as zero here — they are either
// label-like forms already handled by the caller or genuinely unknown
// directives, which the emitter is responsible for rejecting.
func (p *Program) lineSize(i int, mnemonic string, ops []string) (uint32, error) {
	switch mnemonic {
	case "ORG":
		return 0, nil
	case "DB":
		return uint32(len(ops)), nil
	case "FILL":
		if len(ops) < 1 {
			return 0, p.errorAt(i, "FILL requires a count operand")
		}
		n, err := imm.Parse(ops[0])
		if err != nil {
			return 0, p.errorAt(i, "malformed FILL count: %s", err)
		}
		return n, nil
	case "INT":
		return 2, nil
	case "JMP", "CALL":
		return 5, nil
	case "LJMP":
		return 6, nil
	default:
		return 0, nil
	}
}
