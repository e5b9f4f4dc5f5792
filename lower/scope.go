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

import "github.com/pkg/errors"

// maxScopeDepth bounds the number of nested { } scopes, not counting the
// implicit outermost frame.
const maxScopeDepth = 16

// borrowFrame tracks the outstanding borrows of one lexical scope.
type borrowFrame struct {
	mutBorrowed bool
	immBorrowed bool
}

// scopeStack is the borrow-scope stack from the data model: one frame per
// open '{', with an always-present implicit outermost frame.
type scopeStack struct {
	frames []borrowFrame
}

func newScopeStack() *scopeStack {
	return &scopeStack{frames: []borrowFrame{{}}}
}

func (s *scopeStack) open() error {
	if len(s.frames) > maxScopeDepth {
		return errors.New("scope overflow")
	}
	s.frames = append(s.frames, borrowFrame{})
	return nil
}

func (s *scopeStack) close() error {
	if len(s.frames) <= 1 {
		return errors.New("unmatched scope close")
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

func (s *scopeStack) top() *borrowFrame {
	return &s.frames[len(s.frames)-1]
}

// depth returns the number of currently open explicit scopes.
func (s *scopeStack) depth() int {
	return len(s.frames) - 1
}

func (s *scopeStack) borrowMut() error {
	f := s.top()
	if f.mutBorrowed || f.immBorrowed {
		return errors.New("borrow error: scope already has an outstanding borrow")
	}
	f.mutBorrowed = true
	return nil
}

func (s *scopeStack) borrowImm() error {
	f := s.top()
	if f.mutBorrowed {
		return errors.New("borrow error: scope has an outstanding mutable borrow")
	}
	f.immBorrowed = true
	return nil
}
