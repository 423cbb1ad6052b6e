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

// Pixels is a copy of the active plane of the framebuffer as a row-major
// matrix of booleans.
type Pixels struct {
	Width  int
	Height int
	Mode   Mode

	data []bool
}

// At returns true if the pixel is set. Out of range coordinates return false.
func (px *Pixels) At(x int, y int) bool {
	if x < 0 || y < 0 || x >= px.Width || y >= px.Height {
		return false
	}
	return px.data[y*px.Width+x]
}

// RGBA writes the pixels into dst as 4 bytes per pixel, using the on and off
// colours. dst is reallocated if it is too small and is returned.
func (px *Pixels) RGBA(dst []uint8, on [3]uint8, off [3]uint8) []uint8 {
	sz := px.Width * px.Height * 4
	if len(dst) < sz {
		dst = make([]uint8, sz)
	}
	for i, p := range px.data {
		c := off
		if p {
			c = on
		}
		dst[i*4] = c[0]
		dst[i*4+1] = c[1]
		dst[i*4+2] = c[2]
		dst[i*4+3] = 0xff
	}
	return dst[:sz]
}
