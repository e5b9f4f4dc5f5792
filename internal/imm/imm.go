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

// Package imm parses the two numeric-literal syntaxes shared by the
// lowerer and the assembler passes: "0x"-prefixed hexadecimal and plain
// decimal. Both require at least one digit and reject trailing garbage;
// neither accepts a leading sign, so negative immediates are rejected by
// construction.
package imm

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse converts s to a uint32, accepting "0xHEX" or "DECIMAL". It returns
// an error describing exactly which syntax was attempted and failed.
func Parse(s string) (uint32, error) {
	if hex, ok := stripHexPrefix(s); ok {
		if hex == "" {
			return 0, errors.Errorf("malformed hex immediate %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, errors.Errorf("malformed hex immediate %q", s)
		}
		return uint32(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Errorf("malformed decimal immediate %q", s)
	}
	return uint32(v), nil
}

func stripHexPrefix(s string) (digits string, ok bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return "", false
}
