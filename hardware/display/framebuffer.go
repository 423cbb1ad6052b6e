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

package display

import (
	"fmt"
	"strings"
)

// Mode selects the resolution of the framebuffer.
type Mode int

// List of valid Mode values.
const (
	LoRes Mode = iota
	HiRes
)

func (m Mode) String() string {
	switch m {
	case LoRes:
		return "lores"
	case HiRes:
		return "hires"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Dimensions of the two resolutions.
const (
	LoResWidth  = 64
	LoResHeight = 32
	HiResWidth  = 128
	HiResHeight = 64
)

// ScrollAmount is the number of pixels moved by ScrollLeft() and
// ScrollRight().
const ScrollAmount = 4

// Renderer implementations present the pixels of the framebuffer to the
// user. The Pixels instance can be retained by the Renderer.
type Renderer interface {
	Render(px *Pixels) error
}

// Framebuffer holds the pixels for both resolutions. The framebuffer
// starts in the LoRes mode with all pixels unset.
type Framebuffer struct {
	lo loResPlane
	hi hiResPlane

	mode   Mode
	active plane

	dirty bool
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{}
	fb.Reset()
	return fb
}

// Reset clears both resolutions and returns to LoRes mode.
func (fb *Framebuffer) Reset() {
	fb.lo.clear()
	fb.hi.clear()
	fb.mode = LoRes
	fb.active = &fb.lo
	fb.dirty = true
}

// String returns the active plane as rows of 0 and 1 characters.
func (fb *Framebuffer) String() string {
	s := strings.Builder{}
	s.Grow((fb.active.width() + 1) * fb.active.height())
	for y := 0; y < fb.active.height(); y++ {
		r := fb.active.row(y)
		for x := 0; x < fb.active.width(); x++ {
			if r.bit(x) {
				s.WriteByte('1')
			} else {
				s.WriteByte('0')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}

// Mode returns the active resolution.
func (fb *Framebuffer) Mode() Mode {
	return fb.mode
}

// SetMode changes the active resolution. The pixels of neither resolution
// are changed but the framebuffer is marked dirty because a different plane
// is now visible.
func (fb *Framebuffer) SetMode(mode Mode) {
	if mode == HiRes {
		fb.active = &fb.hi
	} else {
		mode = LoRes
		fb.active = &fb.lo
	}
	if fb.mode != mode {
		fb.dirty = true
	}
	fb.mode = mode
}

// Width of the active resolution in pixels.
func (fb *Framebuffer) Width() int {
	return fb.active.width()
}

// Height of the active resolution in pixels.
func (fb *Framebuffer) Height() int {
	return fb.active.height()
}

// Draw XORs the sprite onto the active plane with the top-left corner at x,
// y. Each byte of the sprite is one row of eight pixels. Rows below the
// bottom of the plane and pixels past the right edge are clipped.
//
// Returns true if any pixel that was set has been unset.
func (fb *Framebuffer) Draw(x int, y int, sprite []uint8) bool {
	fb.dirty = true

	var collision bool
	for i, b := range sprite {
		yy := y + i
		if yy < 0 {
			continue
		}
		if yy >= fb.active.height() {
			break // for loop
		}

		sp := spriteRow(b, x)
		r := fb.active.row(yy)
		if !r.and(sp).isZero() {
			collision = true
		}
		fb.active.setRow(yy, r.xor(sp))
	}

	return collision
}

// Clear unsets every pixel of the active plane.
func (fb *Framebuffer) Clear() {
	fb.active.clear()
	fb.dirty = true
}

// ScrollDown moves every row of the active plane down by n rows. The top n
// rows are cleared.
func (fb *Framebuffer) ScrollDown(n int) {
	fb.dirty = true
	if n <= 0 {
		return
	}

	h := fb.active.height()
	for y := h - 1; y >= n; y-- {
		fb.active.setRow(y, fb.active.row(y-n))
	}
	for y := 0; y < n && y < h; y++ {
		fb.active.setRow(y, row{})
	}
}

// ScrollLeft moves every row of the active plane left by ScrollAmount pixels.
func (fb *Framebuffer) ScrollLeft() {
	fb.dirty = true
	for y := 0; y < fb.active.height(); y++ {
		fb.active.setRow(y, fb.active.row(y).shl(ScrollAmount))
	}
}

// ScrollRight moves every row of the active plane right by ScrollAmount
// pixels.
func (fb *Framebuffer) ScrollRight() {
	fb.dirty = true
	for y := 0; y < fb.active.height(); y++ {
		fb.active.setRow(y, fb.active.row(y).shr(ScrollAmount))
	}
}

// Pixel returns true if the pixel at x, y of the active plane is set. Out of
// range coordinates return false.
func (fb *Framebuffer) Pixel(x int, y int) bool {
	if x < 0 || y < 0 || x >= fb.active.width() || y >= fb.active.height() {
		return false
	}
	return fb.active.row(y).bit(x)
}

// Count returns the number of set pixels in the active plane.
func (fb *Framebuffer) Count() int {
	var n int
	for y := 0; y < fb.active.height(); y++ {
		n += fb.active.row(y).count()
	}
	return n
}

// Changed returns true if the pixels have changed since the last call to
// Render().
func (fb *Framebuffer) Changed() bool {
	return fb.dirty
}

// Render the pixels of the active plane with the Renderer. Nothing happens if
// the framebuffer has not changed. The dirty flag is cleared only if the
// renderer returns no error.
func (fb *Framebuffer) Render(r Renderer) error {
	if !fb.dirty {
		return nil
	}
	if err := r.Render(fb.Pixels()); err != nil {
		return err
	}
	fb.dirty = false
	return nil
}

// Pixels returns a copy of the active plane.
func (fb *Framebuffer) Pixels() *Pixels {
	px := &Pixels{
		Width:  fb.active.width(),
		Height: fb.active.height(),
		Mode:   fb.mode,
	}
	px.data = make([]bool, px.Width*px.Height)
	for y := 0; y < px.Height; y++ {
		r := fb.active.row(y)
		for x := 0; x < px.Width; x++ {
			px.data[y*px.Width+x] = r.bit(x)
		}
	}
	return px
}
