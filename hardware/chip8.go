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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
)

// Chip8 is the complete interpreter. The framebuffer and memory are owned by
// the Chip8 instance and are only available through its methods.
type Chip8 struct {
	Prefs *preferences.Preferences
	CPU   *cpu.CPU

	mem *memory.Memory
	fb  *display.Framebuffer
	rnd *random.Random

	// number of frames run since the last reset
	frames int
}

// NewChip8 creates a new Chip8 and all the associated hardware. If prefs is
// nil then the preferences will be loaded from the default location.
func NewChip8(prefs *preferences.Preferences) (*Chip8, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, fmt.Errorf("chip8: %w", err)
		}
	}

	c8 := &Chip8{
		Prefs: prefs,
		mem:   memory.NewMemory(),
		fb:    display.NewFramebuffer(),
		rnd:   random.NewRandom(int64(prefs.RandSeed.Int())),
	}
	c8.CPU = cpu.NewCPU(c8.Prefs, c8.mem, c8.fb, c8.rnd)

	return c8, nil
}

func (c8 *Chip8) String() string {
	return c8.CPU.String()
}

// AttachROM copies the program into memory and resets the machine.
func (c8 *Chip8) AttachROM(program []uint8) error {
	if err := c8.mem.Load(program); err != nil {
		return fmt.Errorf("chip8: %w", err)
	}
	c8.Reset()
	return nil
}

// Reset the machine. Memory is restored to the state it was in immediately
// after the most recent call to AttachROM().
func (c8 *Chip8) Reset() {
	c8.mem.Reset()
	c8.fb.Reset()
	c8.CPU.Reset()
	c8.rnd.Reseed(int64(c8.Prefs.RandSeed.Int()))
	c8.frames = 0
}

// Frames returns the number of frames run since the last reset.
func (c8 *Chip8) Frames() int {
	return c8.frames
}

// Step executes a single instruction. The timers are only stepped if the
// TimersPerInstruction preference is set.
func (c8 *Chip8) Step() error {
	if err := c8.CPU.ExecuteInstruction(); err != nil {
		return err
	}
	if c8.Prefs.Live.TimersPerInstruction.Load() {
		c8.CPU.Timers.Step()
	}
	return nil
}

// RunFrame executes the number of instructions given by the speed preference
// and then steps the timers. The frame ends early if the core is waiting for
// a key.
func (c8 *Chip8) RunFrame() error {
	speed := int(c8.Prefs.Live.Speed.Load())
	for i := 0; i < speed; i++ {
		if err := c8.Step(); err != nil {
			return err
		}
		if c8.CPU.Waiting {
			break // for loop
		}
	}

	if !c8.Prefs.Live.TimersPerInstruction.Load() {
		c8.CPU.Timers.Step()
	}

	c8.frames++

	return nil
}

// Waiting returns true if the core is waiting for a key.
func (c8 *Chip8) Waiting() bool {
	return c8.CPU.Waiting
}

// SetKey changes the key that is pressed.
func (c8 *Chip8) SetKey(key uint8) {
	c8.CPU.SetKey(key)
}

// ClearKey indicates that no key is pressed.
func (c8 *Chip8) ClearKey() {
	c8.CPU.ClearKey()
}

// SoundActive returns true if the sound timer is running. A tone should be
// heard for as long as the sound timer is running.
func (c8 *Chip8) SoundActive() bool {
	return c8.CPU.Timers.Sound.Active()
}

// Changed returns true if the framebuffer has changed since the last call to
// Render().
func (c8 *Chip8) Changed() bool {
	return c8.fb.Changed()
}

// Render the framebuffer if it has changed.
func (c8 *Chip8) Render(r display.Renderer) error {
	return c8.fb.Render(r)
}

// Pixels returns a copy of the active plane of the framebuffer.
func (c8 *Chip8) Pixels() *display.Pixels {
	return c8.fb.Pixels()
}

// Screen returns the active plane of the framebuffer as rows of 0 and 1
// characters.
func (c8 *Chip8) Screen() string {
	return c8.fb.String()
}

// Peek returns the byte at address.
func (c8 *Chip8) Peek(address uint16) (uint8, error) {
	return c8.mem.Read(address)
}
