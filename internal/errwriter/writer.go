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

// Package errwriter wraps a seekable file with a sticky first error, so
// the many small byte- and word-sized writes the emitter makes don't
// each need their own error check.
package errwriter

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
)

// Writer wraps an *os.File, remembering the first error encountered and
// turning every call after that into a no-op that returns it.
type Writer struct {
	f   *os.File
	err error
}

// New wraps f.
func New(f *os.File) *Writer {
	return &Writer{f: f}
}

// Err returns the first error this Writer encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Seek implements ORG's absolute repositioning of the output file.
func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.f.Seek(offset, whence)
	if err != nil {
		w.err = errors.Wrap(err, "seek failed")
	}
	return n, w.err
}

// WriteByte emits a single byte.
func (w *Writer) WriteByte(b byte) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.f.Write([]byte{b}); err != nil {
		w.err = errors.Wrap(err, "write failed")
	}
	return w.err
}

// WriteUint32 emits v as four little-endian bytes.
func (w *Writer) WriteUint32(v uint32) error {
	if w.err != nil {
		return w.err
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	if _, err := w.f.Write(buf[:]); err != nil {
		w.err = errors.Wrap(err, "write failed")
	}
	return w.err
}

// WriteUint16 emits v as two little-endian bytes.
func (w *Writer) WriteUint16(v uint16) error {
	if w.err != nil {
		return w.err
	}
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	if _, err := w.f.Write(buf[:]); err != nil {
		w.err = errors.Wrap(err, "write failed")
	}
	return w.err
}
