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


package terminal

import (
	"strings"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// characters for each combination of top and bottom pixel.
var halfBlocks = [4]string{
	" ", // neither
	"▄", // bottom
	"▀", // top
	"█", // both
}

// HalfBlocks returns the pixels as lines of text. Each character represents
// two vertically adjacent pixels. The output is cropped to the number of
// columns and rows. A value of zero for either means no cropping in that
// direction.
func HalfBlocks(px *display.Pixels, cols int, rows int) []string {
	width := px.Width
	if cols > 0 && cols < width {
		width = cols
	}

	height := (px.Height + 1) / 2
	if rows > 0 && rows < height {
		height = rows
	}

	lines := make([]string, height)

	var s strings.Builder
	for r := 0; r < height; r++ {
		s.Reset()
		for x := 0; x < width; x++ {
			i := 0
			if px.At(x, r*2) {
				i |= 0b10
			}
			if px.At(x, r*2+1) {
				i |= 0b01
			}
			s.WriteString(halfBlocks[i])
		}
		lines[r] = s.String()
	}

	return lines
}
