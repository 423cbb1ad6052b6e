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

package registers

import "fmt"

// AddressMask is the largest address that can be used by an instruction.
const AddressMask = 0x0fff

// ProgramCounter is the address of the next instruction.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the name of the register.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add a value to the PC. Negative values move the PC backwards.
func (pc *ProgramCounter) Add(val int) {
	pc.value = uint16(int(pc.value) + val)
}

// Index is the I register. It holds the address used by the memory
// instructions.
type Index struct {
	value uint16
}

// NewIndex is the preferred method of initialisation for the Index type.
func NewIndex(val uint16) Index {
	return Index{value: val}
}

// Label returns the name of the register.
func (i Index) Label() string {
	return "I"
}

func (i Index) String() string {
	return fmt.Sprintf("%#04x", i.value)
}

// Address returns the current value of the index.
func (i Index) Address() uint16 {
	return i.value
}

// Load a value into the index.
func (i *Index) Load(val uint16) {
	i.value = val
}

// Add value to the index. Returns true if the result reaches or passes the
// last addressable location or if the 16 bit value has wrapped around.
func (i *Index) Add(val uint8) (overflow bool) {
	v := i.value
	i.value += uint16(val)
	return i.value >= AddressMask || i.value < v
}
