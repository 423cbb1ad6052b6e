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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Display defines the framebuffer operations required by the CPU.
type Display interface {
	Clear()
	Draw(x int, y int, sprite []uint8) bool
	ScrollDown(n int)
	ScrollLeft()
	ScrollRight()
	SetMode(mode display.Mode)
	Width() int
	Height() int
}

// Random is the source of numbers for the Cxnn instruction.
type Random interface {
	Byte() uint8
}

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// FlagRegister is the index of the VF register.
const FlagRegister = 0x0f

// CPU implements the interpreter core.
type CPU struct {
	prefs *preferences.Preferences

	mem Memory
	fb  Display
	rnd Random

	V     [NumRegisters]registers.Register
	I     registers.Index
	PC    registers.ProgramCounter
	Stack Stack

	// the delay and sound timers are owned by the CPU but it is the
	// responsibility of the caller to step them
	Timers *timers.Timers

	// the key currently pressed. only one key can be pressed at a time
	key     uint8
	keyDown bool

	// Waiting is true if the most recent instruction was a key wait and no
	// key was pressed. The PC will point to the waiting instruction
	Waiting bool

	// the most recent instruction and the address it was fetched from
	LastOpcode  Opcode
	LastAddress uint16

	// sprite data is read from memory into this buffer before drawing
	sprite [16]uint8
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(prefs *preferences.Preferences, mem Memory, fb Display, rnd Random) *CPU {
	mc := &CPU{
		prefs:  prefs,
		mem:    mem,
		fb:     fb,
		rnd:    rnd,
		Stack:  newStack(),
		Timers: timers.NewTimers(),
	}
	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	mc.Reset()
	return mc
}

// Reset the CPU to its initial state. Memory and the display are not
// affected.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.I.Load(0)
	mc.PC.Load(memory.ProgramOrigin)
	mc.Stack.reset()
	mc.Timers.Reset()
	mc.ClearKey()
	mc.Waiting = false
	mc.LastOpcode = 0
	mc.LastAddress = 0
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s %s=%s SP=%d %s\n", mc.PC.Label(), mc.PC, mc.I.Label(), mc.I, mc.Stack.Len(), mc.Timers))
	for i := range mc.V {
		if i > 0 {
			if i%8 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(mc.V[i].String())
	}
	return s.String()
}

// SetKey changes the key that is pressed. Only the lower nibble of key is
// used.
func (mc *CPU) SetKey(key uint8) {
	mc.key = key & 0x0f
	mc.keyDown = true
}

// ClearKey indicates that no key is pressed.
func (mc *CPU) ClearKey() {
	mc.key = 0
	mc.keyDown = false
}

// Key returns the key that is pressed. The boolean is false if no key is
// pressed.
func (mc *CPU) Key() (uint8, bool) {
	return mc.key, mc.keyDown
}

// ExecuteInstruction fetches, decodes and executes a single instruction.
func (mc *CPU) ExecuteInstruction() error {
	mc.Waiting = false
	mc.LastAddress = mc.PC.Address()

	op, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.LastOpcode = op

	return mc.execute(op)
}

// fetch the two bytes at the PC as a big-endian opcode and advance the PC.
func (mc *CPU) fetch() (Opcode, error) {
	address := mc.PC.Address()

	hi, err := mc.mem.Read(address)
	if err != nil {
		return 0, fmt.Errorf("cpu: fetch: %w", err)
	}
	lo, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, fmt.Errorf("cpu: fetch: %w", err)
	}

	mc.PC.Add(2)

	return Opcode(uint16(hi)<<8 | uint16(lo)), nil
}

// setFlag writes the VF register.
func (mc *CPU) setFlag(flag bool) {
	if flag {
		mc.V[FlagRegister].Load(1)
	} else {
		mc.V[FlagRegister].Load(0)
	}
}

// skip the next instruction.
func (mc *CPU) skip() {
	mc.PC.Add(2)
}
