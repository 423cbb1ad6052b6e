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

package cpu_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
)

type fixedRandom uint8

func (r fixedRandom) Byte() uint8 {
	return uint8(r)
}

type harness struct {
	mc    *cpu.CPU
	mem   *memory.Memory
	fb    *display.Framebuffer
	prefs *preferences.Preferences
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	h := &harness{
		mem:   memory.NewMemory(),
		fb:    display.NewFramebuffer(),
		prefs: prefs,
	}
	h.mc = cpu.NewCPU(h.prefs, h.mem, h.fb, fixedRandom(0xff))
	return h
}

// putInstructions writes the opcodes to memory starting at origin. returns the
// address after the last opcode.
func (h *harness) putInstructions(origin uint16, ops ...uint16) uint16 {
	for _, op := range ops {
		h.mem.Write(origin, uint8(op>>8))
		h.mem.Write(origin+1, uint8(op))
		origin += 2
	}
	return origin
}

func (h *harness) load(register int, value uint8) {
	h.mc.V[register].Load(value)
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.DemandSuccess(t, mc.ExecuteInstruction())
}

func assertRegister(t *testing.T, mc *cpu.CPU, register int, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mc.V[register].Value(), value, mc.V[register].Label())
}
