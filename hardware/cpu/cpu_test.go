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
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	h := newHarness(t)
	mc := h.mc
	test.ExpectEquality(t, mc.PC.Address(), uint16(memory.ProgramOrigin))
	test.ExpectEquality(t, mc.I.Address(), uint16(0))
	test.ExpectEquality(t, mc.Stack.Len(), 0)

	_, ok := mc.Key()
	test.ExpectEquality(t, ok, false)

	h.load(3, 0x10)
	mc.SetKey(0x1a)
	key, ok := mc.Key()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, key, uint8(0x0a))

	mc.Reset()
	assertRegister(t, mc, 3, 0x00)
	_, ok = mc.Key()
	test.ExpectEquality(t, ok, false)
}

func TestLoadAndAdd(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	// LD V0, ff; LD V1, 10; ADD V0, 01
	h.putInstructions(0x200, 0x60ff, 0x6110, 0x7001)
	step(t, mc)
	step(t, mc)
	assertRegister(t, mc, 0, 0xff)
	step(t, mc)

	// wraparound without flag and no other register affected
	assertRegister(t, mc, 0, 0x00)
	assertRegister(t, mc, 1, 0x10)
	assertRegister(t, mc, 0xf, 0x00)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x206))
}

func TestCarry(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0x8014, 0x8014)
	h.load(0, 0xff)
	h.load(1, 0x01)
	step(t, mc)
	assertRegister(t, mc, 0, 0x00)
	assertRegister(t, mc, 0xf, 0x01)

	h.load(0, 0x01)
	h.load(1, 0x01)
	step(t, mc)
	assertRegister(t, mc, 0, 0x02)
	assertRegister(t, mc, 0xf, 0x00)
}

func TestBorrow(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0x8015, 0x8015, 0x8017, 0x8017)

	h.load(0, 0x05)
	h.load(1, 0x03)
	step(t, mc)
	assertRegister(t, mc, 0, 0x02)
	assertRegister(t, mc, 0xf, 0x01)

	h.load(0, 0x03)
	h.load(1, 0x05)
	step(t, mc)
	assertRegister(t, mc, 0, 0xfe)
	assertRegister(t, mc, 0xf, 0x00)

	// reverse subtract
	h.load(0, 0x03)
	h.load(1, 0x05)
	step(t, mc)
	assertRegister(t, mc, 0, 0x02)
	assertRegister(t, mc, 1, 0x05)
	assertRegister(t, mc, 0xf, 0x01)

	h.load(0, 0x05)
	h.load(1, 0x03)
	step(t, mc)
	assertRegister(t, mc, 0, 0xfe)
	assertRegister(t, mc, 0xf, 0x00)
}

func TestFlagRegisterAsDestination(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	// ADD VF, V1: the result is lost and VF holds the carry
	h.putInstructions(0x200, 0x8f14)
	h.load(0xf, 0x10)
	h.load(1, 0x01)
	step(t, mc)
	assertRegister(t, mc, 0xf, 0x00)
}

func TestBitwise(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0x8010, 0x8021, 0x8032, 0x8043)
	h.load(1, 0x0f)
	h.load(2, 0xf0)
	h.load(3, 0x3c)
	h.load(4, 0xff)

	step(t, mc)
	assertRegister(t, mc, 0, 0x0f)
	step(t, mc)
	assertRegister(t, mc, 0, 0xff)
	step(t, mc)
	assertRegister(t, mc, 0, 0x3c)
	step(t, mc)
	assertRegister(t, mc, 0, 0xc3)
}

func TestShift(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0x8016, 0x8016, 0x801e, 0x801e)
	h.load(0, 0x03)
	h.load(1, 0xaa)

	step(t, mc)
	assertRegister(t, mc, 0, 0x01)
	assertRegister(t, mc, 0xf, 0x01)

	h.load(0, 0x02)
	step(t, mc)
	assertRegister(t, mc, 0, 0x01)
	assertRegister(t, mc, 0xf, 0x00)

	h.load(0, 0x81)
	step(t, mc)
	assertRegister(t, mc, 0, 0x02)
	assertRegister(t, mc, 0xf, 0x01)

	step(t, mc)
	assertRegister(t, mc, 0, 0x04)
	assertRegister(t, mc, 0xf, 0x00)

	// shifts operate on Vx only
	assertRegister(t, mc, 1, 0xaa)
}

func TestSkip(t *testing.T) {
	h := newHarness(t)
	mc := h.mc
	h.load(0, 0x10)
	h.load(1, 0x10)
	h.load(2, 0x20)

	// SE V0, 10
	h.putInstructions(0x200, 0x3010)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x204))

	// SE V0, 11
	h.putInstructions(0x204, 0x3011)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x206))

	// SNE V0, 11
	h.putInstructions(0x206, 0x4011)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x20a))

	// SE V0, V1
	h.putInstructions(0x20a, 0x5010)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x20e))

	// SE V0, V2
	h.putInstructions(0x20e, 0x5020)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x210))

	// SNE V0, V2
	h.putInstructions(0x210, 0x9020)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x214))

	// SNE V0, V1
	h.putInstructions(0x214, 0x9010)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x216))
}

func TestJump(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0x1300)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x300))

	// the offset register is taken from the opcode
	h.putInstructions(0x300, 0xb210)
	h.load(0, 0x01)
	h.load(2, 0x08)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x218))
}

func TestSubroutine(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0x2300)
	h.putInstructions(0x300, 0x00ee)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x300))
	test.ExpectEquality(t, mc.Stack.Len(), 1)
	top, ok := mc.Stack.Peek()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, top, uint16(0x202))

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x202))
	test.ExpectEquality(t, mc.Stack.Len(), 0)
}

func TestStackErrors(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0x00ee)
	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, cpu.ErrStackUnderflow), true)

	// subroutine that calls itself
	mc.Reset()
	h.putInstructions(0x200, 0x2200)
	for i := 0; i < cpu.StackDepth; i++ {
		step(t, mc)
	}
	err = mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, cpu.ErrStackOverflow), true)
	test.ExpectEquality(t, mc.Stack.Len(), cpu.StackDepth)
}

func TestBCD(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0xa300, 0xf033)
	h.load(0, 156)
	step(t, mc)
	step(t, mc)

	for i, v := range []uint8{1, 5, 6} {
		d, err := h.mem.Read(0x300 + uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, d, v)
	}
	test.ExpectEquality(t, mc.I.Address(), uint16(0x300))
}

func TestStoreAndLoad(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0xa300, 0xf355, 0xf365)
	for i := 0; i < cpu.NumRegisters; i++ {
		h.load(i, uint8(0x10+i))
	}
	step(t, mc)
	step(t, mc)

	// V0 to V3 inclusive
	for i := 0; i < 4; i++ {
		d, _ := h.mem.Read(0x300 + uint16(i))
		test.ExpectEquality(t, d, uint8(0x10+i))
	}
	d, _ := h.mem.Read(0x304)
	test.ExpectEquality(t, d, uint8(0x00))

	for i := 0; i < cpu.NumRegisters; i++ {
		h.load(i, 0)
	}
	step(t, mc)
	for i := 0; i < 4; i++ {
		assertRegister(t, mc, i, uint8(0x10+i))
	}
	assertRegister(t, mc, 4, 0x00)
	test.ExpectEquality(t, mc.I.Address(), uint16(0x300))
}

func TestIndexOverflow(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	// no overflow leaves VF alone
	h.putInstructions(0x200, 0xaffd, 0xf01e, 0xf01e, 0xf01e)
	h.load(0, 0x01)
	h.load(0xf, 0x55)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.I.Address(), uint16(0xffe))
	assertRegister(t, mc, 0xf, 0x55)

	// reaching the last address is an overflow
	step(t, mc)
	test.ExpectEquality(t, mc.I.Address(), uint16(0xfff))
	assertRegister(t, mc, 0xf, 0x01)

	h.load(0xf, 0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.I.Address(), uint16(0x1000))
	assertRegister(t, mc, 0xf, 0x01)

	// with the quirk disabled VF is untouched
	test.DemandSuccess(t, h.prefs.IndexOverflow.Set(false))
	mc.Reset()
	h.load(0, 0x01)
	h.load(0xf, 0x55)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.I.Address(), uint16(0x1000))
	assertRegister(t, mc, 0xf, 0x55)
}

func TestGlyph(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0xf529)
	h.load(5, 0x0a)
	step(t, mc)
	test.ExpectEquality(t, mc.I.Address(), uint16(0x82))
}

func TestTimers(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0xf015, 0xf118, 0xf207)
	h.load(0, 0x20)
	h.load(1, 0x30)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Timers.Delay.Value(), uint8(0x20))
	test.ExpectEquality(t, mc.Timers.Sound.Value(), uint8(0x30))

	mc.Timers.Step()
	step(t, mc)
	assertRegister(t, mc, 2, 0x1f)
}

func TestKeyWait(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0xf30a)
	for i := 0; i < 5; i++ {
		step(t, mc)
		test.ExpectEquality(t, mc.Waiting, true)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x200))
	}

	mc.SetKey(0x7)
	step(t, mc)
	test.ExpectEquality(t, mc.Waiting, false)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x202))
	assertRegister(t, mc, 3, 0x07)
}

func TestKeySkip(t *testing.T) {
	h := newHarness(t)
	mc := h.mc
	h.load(0, 0x05)

	// SKP V0 with no key pressed
	h.putInstructions(0x200, 0xe09e)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x202))

	// SKNP V0 with no key pressed
	h.putInstructions(0x202, 0xe0a1)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x206))

	mc.SetKey(0x05)

	// SKP V0
	h.putInstructions(0x206, 0xe09e)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x20a))

	// SKNP V0
	h.putInstructions(0x20a, 0xe0a1)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x20c))

	// a different key is pressed
	mc.SetKey(0x06)
	h.putInstructions(0x20c, 0xe09e)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x20e))
}

func TestRandom(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0xc40f)
	step(t, mc)
	assertRegister(t, mc, 4, 0x0f)
}

func TestDraw(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	// glyph for zero drawn twice at 0,0
	h.putInstructions(0x200, 0xa050, 0xd015, 0xd015)
	step(t, mc)
	h.load(0xf, 0xff)
	step(t, mc)
	assertRegister(t, mc, 0xf, 0x00)
	test.ExpectEquality(t, h.fb.Count(), 14)
	test.ExpectEquality(t, h.fb.Pixel(0, 0), true)
	test.ExpectEquality(t, h.fb.Pixel(1, 1), false)

	step(t, mc)
	assertRegister(t, mc, 0xf, 0x01)
	test.ExpectEquality(t, h.fb.Count(), 0)
}

func TestDrawOrigin(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	// origin is wrapped to the standard resolution
	h.putInstructions(0x200, 0xa050, 0xd011)
	h.load(0, 66)
	h.load(1, 33)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, h.fb.Pixel(2, 1), true)
	test.ExpectEquality(t, h.fb.Count(), 4)

	// even in hi-res mode
	mc.Reset()
	h.fb.Reset()
	h.fb.SetMode(display.HiRes)
	h.load(0, 70)
	h.load(1, 40)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, h.fb.Pixel(6, 8), true)

	// unless the WrapOrigin preference is set
	test.DemandSuccess(t, h.prefs.WrapOrigin.Set(true))
	mc.Reset()
	h.fb.Reset()
	h.fb.SetMode(display.HiRes)
	h.load(0, 70)
	h.load(1, 40)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, h.fb.Pixel(70, 40), true)
	test.ExpectEquality(t, h.fb.Pixel(6, 8), false)
}

func TestScreenControl(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	h.putInstructions(0x200, 0x00ff, 0xa050, 0xd011, 0x00c2, 0x00fb, 0x00fc, 0x00fc, 0x00e0, 0x00fe)
	step(t, mc)
	test.ExpectEquality(t, h.fb.Mode(), display.HiRes)

	step(t, mc)
	h.load(0, 8)
	step(t, mc)
	test.ExpectEquality(t, h.fb.Pixel(8, 0), true)

	step(t, mc)
	test.ExpectEquality(t, h.fb.Pixel(8, 0), false)
	test.ExpectEquality(t, h.fb.Pixel(8, 2), true)

	step(t, mc)
	test.ExpectEquality(t, h.fb.Pixel(12, 2), true)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, h.fb.Pixel(4, 2), true)
	test.ExpectEquality(t, h.fb.Count(), 4)

	step(t, mc)
	test.ExpectEquality(t, h.fb.Count(), 0)

	step(t, mc)
	test.ExpectEquality(t, h.fb.Mode(), display.LoRes)
}

func TestUnknownOpcode(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	logger.Clear()
	h.putInstructions(0x200, 0x8009, 0xe0ff, 0xf0ff, 0x0123)
	for i := 0; i < 4; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x208))

	var n int
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == "cpu" && strings.HasPrefix(e.Detail, "unknown opcode") {
				n++
			}
		}
	})
	test.ExpectEquality(t, n, 4)
}

func TestMemoryErrors(t *testing.T) {
	h := newHarness(t)
	mc := h.mc

	// fetch of second byte is out of range
	mc.PC.Load(memory.Size - 1)
	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, memory.ErrAddress), true)

	// sprite data is out of range
	mc.Reset()
	h.putInstructions(0x200, 0xaffe, 0xd005)
	step(t, mc)
	err = mc.ExecuteInstruction()
	test.ExpectEquality(t, errors.Is(err, memory.ErrAddress), true)

	// store past the end of memory
	mc.Reset()
	h.putInstructions(0x200, 0xaffe, 0xf255)
	step(t, mc)
	err = mc.ExecuteInstruction()
	test.ExpectEquality(t, errors.Is(err, memory.ErrAddress), true)
}
