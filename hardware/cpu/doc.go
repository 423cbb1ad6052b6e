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

// Package cpu implements the interpreter core. The CPU fetches a 16 bit
// opcode from memory, decodes it into its fields and executes it, changing
// the registers, memory and the display as required.
//
// The VF register is both a general purpose register and the flag register.
// Instructions that produce a flag always write VF after writing the result,
// so the flag wins if the destination register is also VF. The instructions
// that write a flag are:
//
//	8xy4  VF=1 if the addition overflowed
//	8xy5  VF=1 if there was no borrow
//	8xy6  VF=bit shifted out
//	8xy7  VF=1 if there was no borrow
//	8xyE  VF=bit shifted out
//	Dxyn  VF=1 if a set pixel was unset by the sprite
//	Fx1E  VF=1 if I has overflowed (only if the IndexOverflow preference is set)
//
// Execution never blocks. The key wait instruction (Fx0A) rewinds the PC and
// sets the Waiting flag when no key is pressed, so the next call to
// ExecuteInstruction() will execute the same instruction again.
//
// Unrecognised opcodes are logged and ignored. The only errors returned by
// ExecuteInstruction() are stack errors and out of range memory accesses.
// These should be treated as fatal.
package cpu
