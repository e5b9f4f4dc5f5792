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

// Package lower rewrites the DSL's function-call surface syntax into the
// fixed assembler dialect the asmgen package consumes, enforcing lexical
// scope and borrow discipline along the way.
//
// Pattern-matched forms key off a case-folded view of each source line
// but emit their assembler line(s) from the original-case text, so
// numeric operands and label names keep the casing the DSL author wrote.
package lower

import (
	"fmt"
	"strings"

	"github.com/Virus10642/Tri-DSL/internal/imm"
	"github.com/Virus10642/Tri-DSL/source"
	"github.com/pkg/errors"
)

// MaxLines caps the lowered-line stream, mirroring the source stage's own
// cap: at most two lowered lines per DSL line keeps this generous.
const MaxLines = source.MaxLines * 2

// Line is one lowered assembler-dialect statement, carrying the index of
// the DSL source line it was produced from.
type Line struct {
	Text      string
	SourceIdx int
}

// Lower runs Pass 1 over lines, returning the lowered assembler-line
// stream or the first fatal diagnostic encountered.
func Lower(lines []source.Line) ([]Line, error) {
	scopes := newScopeStack()
	out := make([]Line, 0, len(lines))

	emit := func(idx int, text string) error {
		if len(out) >= MaxLines {
			return source.NewDiagnostic(lines, idx, "lowered-line overflow (> %d)", MaxLines)
		}
		out = append(out, Line{Text: text, SourceIdx: idx})
		return nil
	}

	for idx, sl := range lines {
		text, lowerText := sl.Text, sl.Lower

		rewritten, matched, err := rewriteCall(text, lowerText)
		if err != nil {
			return nil, source.NewDiagnostic(lines, idx, "%s", err)
		}
		if matched {
			for _, r := range rewritten {
				if err := emit(idx, r); err != nil {
					return nil, err
				}
			}
			continue
		}

		switch text {
		case "{":
			if err := scopes.open(); err != nil {
				return nil, source.NewDiagnostic(lines, idx, "%s", err)
			}
			continue
		case "}":
			if err := scopes.close(); err != nil {
				return nil, source.NewDiagnostic(lines, idx, "%s", err)
			}
			continue
		}

		if strings.HasPrefix(text, "let &mut") {
			if err := scopes.borrowMut(); err != nil {
				return nil, source.NewDiagnostic(lines, idx, "%s", err)
			}
			continue
		}
		if strings.HasPrefix(text, "let &") {
			if err := scopes.borrowImm(); err != nil {
				return nil, source.NewDiagnostic(lines, idx, "%s", err)
			}
			continue
		}

		switch text {
		case "tape_start()":
			if err := emit(idx, "ORG 0x500"); err != nil {
				return nil, err
			}
			if err := emit(idx, "DB 0xBE,0x00,0x05"); err != nil {
				return nil, err
			}
			continue
		case "load()":
			if err := emit(idx, "DB 0x8A,0x04"); err != nil {
				return nil, err
			}
			continue
		case "store()":
			if err := emit(idx, "DB 0x88,0x04"); err != nil {
				return nil, err
			}
			continue
		}

		if strings.HasPrefix(text, "head +=") {
			n, err := parseHeadOffset(text)
			if err != nil {
				return nil, source.NewDiagnostic(lines, idx, "%s", err)
			}
			if err := emit(idx, fmt.Sprintf("DB 0x83,0xC6,%d", n)); err != nil {
				return nil, err
			}
			continue
		}

		// Fallback: copy the line verbatim. This is how labels, raw
		// mnemonics and already-assembler forms pass through.
		if err := emit(idx, text); err != nil {
			return nil, err
		}
	}

	if scopes.depth() != 0 {
		return nil, source.NewDiagnostic(lines, len(lines)-1, "unclosed scope(s)")
	}
	return out, nil
}

func parseHeadOffset(text string) (uint32, error) {
	numText := strings.TrimSpace(text[len("head +="):])
	n, err := imm.Parse(numText)
	if err != nil || n > 255 {
		return 0, errors.New("head offset out of range, expected 0..255")
	}
	return n, nil
}
