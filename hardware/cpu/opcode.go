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

import "fmt"

// Opcode is a single 16 bit instruction.
type Opcode uint16

func (op Opcode) String() string {
	return fmt.Sprintf("%04x", uint16(op))
}

// Family is the top nibble of the opcode.
func (op Opcode) Family() uint8 {
	return uint8(op >> 12)
}

// X is the register index in bits 8 to 11.
func (op Opcode) X() int {
	return int(op>>8) & 0x0f
}

// Y is the register index in bits 4 to 7.
func (op Opcode) Y() int {
	return int(op>>4) & 0x0f
}

// N is the lowest nibble.
func (op Opcode) N() uint8 {
	return uint8(op) & 0x0f
}

// NN is the lowest byte.
func (op Opcode) NN() uint8 {
	return uint8(op)
}

// NNN is the address in the lowest 12 bits.
func (op Opcode) NNN() uint16 {
	return uint16(op) & 0x0fff
}
