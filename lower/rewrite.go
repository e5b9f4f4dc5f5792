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

package lower

import (
	"strings"

	"github.com/pkg/errors"
)

// rewriteCall recognizes the case-folded name(args) surface forms from
// spec's rewrite table and returns the assembler line(s) they lower to.
// matched is false when text isn't a recognized call form at all (no
// rewrite attempted, not even a failed one); err is non-nil only when the
// form was recognized but malformed (e.g. a missing comma).
func rewriteCall(text, lowerText string) (lines []string, matched bool, err error) {
	paren := strings.IndexByte(text, '(')
	if paren < 0 || !strings.HasSuffix(text, ")") {
		return nil, false, nil
	}
	name := lowerText[:paren]
	args := text[paren+1 : len(text)-1]

	switch name {
	case "org":
		return []string{"ORG " + args}, true, nil
	case "db":
		return []string{"DB " + args}, true, nil
	case "fill":
		return []string{"FILL " + args}, true, nil
	case "int":
		return []string{"INT " + args}, true, nil
	case "jmp":
		return []string{"JMP " + args}, true, nil
	case "call":
		return []string{"CALL " + args}, true, nil
	case "ljmp":
		off, seg, ok := splitFirstComma(args)
		if !ok {
			return nil, true, errors.New("ljmp() needs two args")
		}
		return []string{"LJMP " + off + ":" + seg}, true, nil
	case "org_set":
		return []string{"INT 0x05", "DB " + args}, true, nil
	case "fold_mode":
		return []string{"INT 0x01", "DB " + args}, true, nil
	case "power_gate":
		unit, op, ok := splitFirstComma(args)
		if !ok {
			return nil, true, errors.New("power_gate(unit,op) needs two args")
		}
		return []string{"INT 0x02", "DB " + unit + "," + op}, true, nil
	case "bist_start":
		return []string{"INT 0x10", "DB " + args}, true, nil
	case "smt_weight":
		tile, weight, ok := splitFirstComma(args)
		if !ok {
			return nil, true, errors.New("smt_weight(tile,weight) needs two args")
		}
		return []string{"INT 0x20", "DB " + tile + "," + weight}, true, nil
	case "mme":
		return []string{"INT 0x30", "DB " + args}, true, nil
	case "patch_bank":
		bank, flags, ok := splitFirstComma(args)
		if !ok {
			return nil, true, errors.New("patch_bank(bank,flags) needs two args")
		}
		return []string{"INT 0x03", "DB " + bank + "," + flags}, true, nil
	case "patch_commit":
		return []string{"INT 0x04", "DB " + args}, true, nil
	case "perf_sample":
		return []string{"INT 0x40", "DB " + args}, true, nil
	case "link_config":
		return []string{"INT 0x50", "DB " + args}, true, nil
	}
	return nil, false, nil
}

// splitFirstComma splits s at its first comma, trimming surrounding
// space from both halves. ok is false if s has no comma.
func splitFirstComma(s string) (a, b string, ok bool) {
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:]), true
}
