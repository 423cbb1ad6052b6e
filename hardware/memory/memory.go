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

package memory

import (
	"errors"
	"fmt"
)

// Size of the address space in bytes.
const Size = 0x1000

// ProgramOrigin is the address at which programs are loaded and the initial
// value of the program counter.
const ProgramOrigin = 0x200

// MaxProgramSize is the largest program that can be loaded.
const MaxProgramSize = Size - ProgramOrigin

// ErrAddress is wrapped by all errors caused by an out of range access.
var ErrAddress = errors.New("address out of range")

// ErrProgramSize is returned by Load() for a program that is empty or does not
// fit in memory.
var ErrProgramSize = errors.New("program size invalid")

// Memory is the address space of the interpreter.
type Memory struct {
	data [Size]uint8

	// copy of the most recently loaded program. used by Reset()
	program []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font is in place when the function returns.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("memory: %d byte program at %#03x", len(mem.program), ProgramOrigin)
}

// Reset clears memory and restores the font and the most recently loaded
// program.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontOrigin:], Font[:])
	copy(mem.data[ProgramOrigin:], mem.program)
}

// Load program bytes at ProgramOrigin. The program must not be empty and must
// fit within MaxProgramSize bytes. Memory is reset before loading.
func (mem *Memory) Load(program []uint8) error {
	if len(program) == 0 {
		return fmt.Errorf("memory: %w: empty program", ErrProgramSize)
	}
	if len(program) > MaxProgramSize {
		return fmt.Errorf("memory: %w: %d bytes is larger than %d", ErrProgramSize, len(program), MaxProgramSize)
	}

	mem.program = make([]uint8, len(program))
	copy(mem.program, program)
	mem.Reset()

	return nil
}

// Read the value at address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, fmt.Errorf("memory: read %#04x: %w", address, ErrAddress)
	}
	return mem.data[address], nil
}

// Write value to address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return fmt.Errorf("memory: write %#04x: %w", address, ErrAddress)
	}
	mem.data[address] = data
	return nil
}
