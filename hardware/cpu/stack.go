// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"errors"
	"fmt"
	"strings"
)

// StackDepth is the maximum number of return addresses.
const StackDepth = 16

// Sentinel errors returned by the stack.
var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrStackOverflow  = errors.New("stack overflow")
)

// Stack of return addresses.
type Stack struct {
	entries []uint16
}

func newStack() Stack {
	return Stack{entries: make([]uint16, 0, StackDepth)}
}

func (s Stack) String() string {
	e := make([]string, len(s.entries))
	for i, a := range s.entries {
		e[i] = fmt.Sprintf("%#04x", a)
	}
	return fmt.Sprintf("[%s]", strings.Join(e, " "))
}

// Len returns the number of entries on the stack.
func (s Stack) Len() int {
	return len(s.entries)
}

// Peek returns the most recent entry without removing it.
func (s Stack) Peek() (uint16, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) push(address uint16) error {
	if len(s.entries) >= StackDepth {
		return ErrStackOverflow
	}
	s.entries = append(s.entries, address)
	return nil
}

func (s *Stack) pop() (uint16, error) {
	if len(s.entries) == 0 {
		return 0, ErrStackUnderflow
	}
	a := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return a, nil
}

func (s *Stack) reset() {
	s.entries = s.entries[:0]
}
