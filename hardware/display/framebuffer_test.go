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

package display_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

type mockRenderer struct {
	calls int
	err   error
	px    *display.Pixels
}

func (r *mockRenderer) Render(px *display.Pixels) error {
	r.calls++
	r.px = px
	return r.err
}

func TestClear(t *testing.T) {
	fb := display.NewFramebuffer()
	test.ExpectEquality(t, fb.Count(), 0)

	fb.Draw(10, 10, []uint8{0xff, 0x81})
	test.ExpectEquality(t, fb.Count(), 10)

	fb.Clear()
	test.ExpectEquality(t, fb.Count(), 0)
	test.ExpectEquality(t, strings.Count(fb.String(), "1"), 0)
}

func TestCollision(t *testing.T) {
	fb := display.NewFramebuffer()
	sprite := []uint8{0xf0, 0x90, 0xf0}

	test.ExpectEquality(t, fb.Draw(5, 5, sprite), false)
	test.ExpectEquality(t, fb.Count(), 10)

	// drawing the same sprite in the same place restores the plane
	test.ExpectEquality(t, fb.Draw(5, 5, sprite), true)
	test.ExpectEquality(t, fb.Count(), 0)

	// overlapping by a single pixel
	fb.Draw(0, 0, []uint8{0x01})
	test.ExpectEquality(t, fb.Draw(7, 0, []uint8{0x80}), true)
	test.ExpectEquality(t, fb.Draw(7, 0, []uint8{0x80}), false)
}

func TestClipBottom(t *testing.T) {
	fb := display.NewFramebuffer()
	test.ExpectEquality(t, fb.Draw(0, 31, []uint8{0xff, 0xff, 0xff}), false)
	test.ExpectEquality(t, fb.Count(), 8)
	test.ExpectEquality(t, fb.Pixel(0, 31), true)
	test.ExpectEquality(t, fb.Pixel(0, 0), false)
}

func TestClipRight(t *testing.T) {
	fb := display.NewFramebuffer()
	test.ExpectEquality(t, fb.Draw(60, 0, []uint8{0xff}), false)
	test.ExpectEquality(t, fb.Count(), 4)
	test.ExpectEquality(t, fb.Pixel(63, 0), true)
	test.ExpectEquality(t, fb.Pixel(0, 0), false)

	// pixels that would be past the right edge never collide
	fb.Clear()
	test.ExpectEquality(t, fb.Draw(60, 0, []uint8{0x0f}), false)
	test.ExpectEquality(t, fb.Count(), 0)
	test.ExpectEquality(t, fb.Draw(60, 0, []uint8{0x0f}), false)
}

func TestHiResDraw(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.SetMode(display.HiRes)
	test.ExpectEquality(t, fb.Width(), display.HiResWidth)
	test.ExpectEquality(t, fb.Height(), display.HiResHeight)

	// sprite straddles the two words of the row
	test.ExpectEquality(t, fb.Draw(60, 40, []uint8{0xff}), false)
	test.ExpectEquality(t, fb.Count(), 8)
	test.ExpectEquality(t, fb.Pixel(59, 40), false)
	test.ExpectEquality(t, fb.Pixel(60, 40), true)
	test.ExpectEquality(t, fb.Pixel(63, 40), true)
	test.ExpectEquality(t, fb.Pixel(64, 40), true)
	test.ExpectEquality(t, fb.Pixel(67, 40), true)
	test.ExpectEquality(t, fb.Pixel(68, 40), false)

	test.ExpectEquality(t, fb.Draw(124, 63, []uint8{0xff, 0xff}), false)
	test.ExpectEquality(t, fb.Count(), 12)
	test.ExpectEquality(t, fb.Pixel(127, 63), true)
}

func TestScrollDown(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.Draw(0, 0, []uint8{0x80})
	fb.Draw(0, 30, []uint8{0x80})

	fb.ScrollDown(2)
	test.ExpectEquality(t, fb.Pixel(0, 0), false)
	test.ExpectEquality(t, fb.Pixel(0, 2), true)
	test.ExpectEquality(t, fb.Count(), 1)

	fb.ScrollDown(100)
	test.ExpectEquality(t, fb.Count(), 0)
}

func TestScrollHorizontal(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.Draw(8, 0, []uint8{0x80})

	fb.ScrollRight()
	test.ExpectEquality(t, fb.Pixel(12, 0), true)
	test.ExpectEquality(t, fb.Count(), 1)

	fb.ScrollLeft()
	fb.ScrollLeft()
	test.ExpectEquality(t, fb.Pixel(4, 0), true)
	test.ExpectEquality(t, fb.Count(), 1)

	fb.ScrollLeft()
	test.ExpectEquality(t, fb.Pixel(0, 0), true)
	fb.ScrollLeft()
	test.ExpectEquality(t, fb.Count(), 0)

	// lo-res pixels scrolled past the right edge are lost
	fb.Draw(62, 0, []uint8{0x80})
	fb.ScrollRight()
	test.ExpectEquality(t, fb.Count(), 0)
	fb.ScrollLeft()
	test.ExpectEquality(t, fb.Count(), 0)

	// but in hi-res the same pixel is still visible
	fb.SetMode(display.HiRes)
	fb.Draw(62, 0, []uint8{0x80})
	fb.ScrollRight()
	test.ExpectEquality(t, fb.Pixel(66, 0), true)
	fb.ScrollLeft()
	test.ExpectEquality(t, fb.Pixel(62, 0), true)
}

func TestSetMode(t *testing.T) {
	fb := display.NewFramebuffer()
	test.ExpectEquality(t, fb.Mode(), display.LoRes)
	fb.Draw(0, 0, []uint8{0xff})
	fb.Render(&mockRenderer{})

	fb.SetMode(display.HiRes)
	test.ExpectEquality(t, fb.Changed(), true)
	test.ExpectEquality(t, fb.Count(), 0)

	fb.SetMode(display.LoRes)
	test.ExpectEquality(t, fb.Count(), 8)

	// setting the same mode does not change anything
	fb.Render(&mockRenderer{})
	fb.SetMode(display.LoRes)
	test.ExpectEquality(t, fb.Changed(), false)
}

func TestRender(t *testing.T) {
	fb := display.NewFramebuffer()
	r := &mockRenderer{}

	test.ExpectEquality(t, fb.Changed(), true)
	test.ExpectSuccess(t, fb.Render(r))
	test.ExpectEquality(t, r.calls, 1)
	test.ExpectEquality(t, fb.Changed(), false)

	// nothing has changed so the renderer is not called
	test.ExpectSuccess(t, fb.Render(r))
	test.ExpectEquality(t, r.calls, 1)

	fb.Draw(1, 2, []uint8{0x80})
	test.ExpectEquality(t, fb.Changed(), true)

	r.err = errors.New("test")
	test.ExpectFailure(t, fb.Render(r))
	test.ExpectEquality(t, fb.Changed(), true)

	r.err = nil
	test.ExpectSuccess(t, fb.Render(r))
	test.ExpectEquality(t, fb.Changed(), false)
	test.ExpectEquality(t, r.px.Width, display.LoResWidth)
	test.ExpectEquality(t, r.px.At(1, 2), true)
	test.ExpectEquality(t, r.px.At(2, 1), false)
	test.ExpectEquality(t, r.px.At(-1, 2), false)
}

func TestString(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.Draw(0, 0, []uint8{0xc0})

	lines := strings.Split(strings.TrimSuffix(fb.String(), "\n"), "\n")
	test.ExpectEquality(t, len(lines), display.LoResHeight)
	test.ExpectEquality(t, lines[0], "11"+strings.Repeat("0", 62))
	test.ExpectEquality(t, lines[1], strings.Repeat("0", 64))
}

func TestRGBA(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.Draw(1, 0, []uint8{0x80})

	on := [3]uint8{0xff, 0xff, 0xff}
	off := [3]uint8{0x10, 0x20, 0x30}
	b := fb.Pixels().RGBA(nil, on, off)
	test.ExpectEquality(t, len(b), display.LoResWidth*display.LoResHeight*4)
	test.ExpectEquality(t, b[0], uint8(0x10))
	test.ExpectEquality(t, b[3], uint8(0xff))
	test.ExpectEquality(t, b[4], uint8(0xff))
}
