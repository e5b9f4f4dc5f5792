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
	"io"
	"os"
	"strings"

	"github.com/Virus10642/Tri-DSL/internal/errwriter"
	"github.com/Virus10642/Tri-DSL/internal/imm"
	"github.com/pkg/errors"
)

// Emit runs Pass B: it opens path for writing, walks the assembler-line
// stream with its own PC mirroring Size's bookkeeping, and writes the
// resolved bytes. ORG seeks the file directly, so gaps are left as
// whatever the filesystem does with a seek past the current write
// position (sparse or zero-filled) — this is deliberate, not a bug.
func (p *Program) Emit(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create output %q", path)
	}
	defer f.Close()

	w := errwriter.New(f)
	var pc uint32

	for i, ln := range p.lines {
		toks := tokenize(ln.Text)
		if len(toks) == 0 {
			continue
		}
		mnemonic, ops := toks[0], toks[1:]

		if strings.HasSuffix(mnemonic, ":") {
			continue
		}

		if err := p.emitLine(w, i, mnemonic, ops, &pc); err != nil {
			return err
		}
	}
	if w.Err() != nil {
		return w.Err()
	}
	return nil
}

func (p *Program) emitLine(w *errwriter.Writer, i int, mnemonic string, ops []string, pc *uint32) error {
	switch mnemonic {
	case "ORG":
		if len(ops) != 1 {
			return p.errorAt(i, "ORG requires one operand")
		}
		v, err := imm.Parse(ops[0])
		if err != nil {
			return p.errorAt(i, "malformed ORG operand: %s", err)
		}
		*pc = v
		if _, err := w.Seek(int64(v), io.SeekStart); err != nil {
			return p.errorAt(i, "%s", err)
		}
	case "DB":
		for _, op := range ops {
			b, err := imm.Parse(op)
			if err != nil {
				return p.errorAt(i, "malformed DB operand: %s", err)
			}
			if b > 0xFF {
				return p.errorAt(i, "DB byte out of range: %d", b)
			}
			if err := w.WriteByte(byte(b)); err != nil {
				return p.errorAt(i, "%s", err)
			}
			*pc++
		}
	case "FILL":
		if len(ops) != 2 {
			return p.errorAt(i, "FILL requires two operands")
		}
		n, err := imm.Parse(ops[0])
		if err != nil {
			return p.errorAt(i, "malformed FILL count: %s", err)
		}
		v, err := imm.Parse(ops[1])
		if err != nil {
			return p.errorAt(i, "malformed FILL value: %s", err)
		}
		if v > 0xFF {
			return p.errorAt(i, "FILL byte out of range: %d", v)
		}
		for j := uint32(0); j < n; j++ {
			if err := w.WriteByte(byte(v)); err != nil {
				return p.errorAt(i, "%s", err)
			}
		}
		*pc += n
	case "INT":
		if len(ops) != 1 {
			return p.errorAt(i, "INT requires one operand")
		}
		v, err := imm.Parse(ops[0])
		if err != nil {
			return p.errorAt(i, "malformed INT operand: %s", err)
		}
		if v > 0xFF {
			return p.errorAt(i, "INT imm8 out of range: %d", v)
		}
		if err := w.WriteByte(0xCD); err != nil {
			return p.errorAt(i, "%s", err)
		}
		if err := w.WriteByte(byte(v)); err != nil {
			return p.errorAt(i, "%s", err)
		}
		*pc += 2
	case "JMP", "CALL":
		if len(ops) != 1 {
			return p.errorAt(i, "%s requires a label operand", mnemonic)
		}
		dest, err := p.labels.lookup(ops[0])
		if err != nil {
			return p.errorAt(i, "%s", err)
		}
		opcode := byte(0xE9)
		if mnemonic == "CALL" {
			opcode = 0xE8
		}
		if err := w.WriteByte(opcode); err != nil {
			return p.errorAt(i, "%s", err)
		}
		rel := int32(dest) - int32(*pc+5)
		if err := w.WriteUint32(uint32(rel)); err != nil {
			return p.errorAt(i, "%s", err)
		}
		*pc += 5
	case "LJMP":
		if len(ops) != 1 {
			return p.errorAt(i, "LJMP requires one off:seg operand")
		}
		off, seg, ok := strings.Cut(ops[0], ":")
		if !ok {
			return p.errorAt(i, "LJMP operand must be OFF:SEG")
		}
		offV, err := imm.Parse(off)
		if err != nil {
			return p.errorAt(i, "malformed LJMP offset: %s", err)
		}
		segV, err := imm.Parse(seg)
		if err != nil {
			return p.errorAt(i, "malformed LJMP segment: %s", err)
		}
		if err := w.WriteByte(0xEA); err != nil {
			return p.errorAt(i, "%s", err)
		}
		if err := w.WriteUint32(offV); err != nil {
			return p.errorAt(i, "%s", err)
		}
		if err := w.WriteUint16(uint16(segV)); err != nil {
			return p.errorAt(i, "%s", err)
		}
		*pc += 6
	default:
		return p.errorAt(i, "unknown directive %q", mnemonic)
	}
	return nil
}
