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

import "github.com/pkg/errors"

// maxLabelNameBytes is the label-name cap from the data model.
const maxLabelNameBytes = 15

// maxLabels bounds the flat label table.
const maxLabels = 128

// labelTable is the write-once, globally visible label table: a name
// maps to the byte offset of its definition point. A linear map is
// adequate here (spec only requires uniqueness and that definitions be
// discovered before references are resolved, which running Size to
// completion before Emit already guarantees).
type labelTable map[string]uint32

// define records name at pc, or returns an error if name is already
// defined, too long, or the table is full.
func (t labelTable) define(name string, pc uint32) error {
	if len(name) == 0 {
		return errors.New("empty label name")
	}
	if len(name) > maxLabelNameBytes {
		return errors.Errorf("label name %q exceeds %d bytes", name, maxLabelNameBytes)
	}
	if _, exists := t[name]; exists {
		return errors.Errorf("duplicate label %q", name)
	}
	if len(t) >= maxLabels {
		return errors.Errorf("too many labels (> %d)", maxLabels)
	}
	t[name] = pc
	return nil
}

// lookup resolves name, or returns an error if it was never defined.
func (t labelTable) lookup(name string) (uint32, error) {
	pc, ok := t[name]
	if !ok {
		return 0, errors.Errorf("undefined label %q", name)
	}
	return pc, nil
}
