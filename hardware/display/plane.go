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

import "math/bits"

// row is a scanline of up to 128 pixels. pixel zero is the most significant
// bit of hi and pixel 127 is the least significant bit of lo.
type row struct {
	hi uint64
	lo uint64
}

// spriteRow places the 8 pixels of a sprite byte at column x.
func spriteRow(b uint8, x int) row {
	return row{hi: uint64(b) << 56}.shr(x)
}

// shr moves pixels to the right. pixels pushed past column 127 are lost.
func (r row) shr(n int) row {
	switch {
	case n <= 0:
		return r
	case n >= 128:
		return row{}
	case n >= 64:
		return row{lo: r.hi >> (n - 64)}
	}
	return row{hi: r.hi >> n, lo: r.lo>>n | r.hi<<(64-n)}
}

// shl moves pixels to the left. pixels pushed past column 0 are lost.
func (r row) shl(n int) row {
	switch {
	case n <= 0:
		return r
	case n >= 128:
		return row{}
	case n >= 64:
		return row{hi: r.lo << (n - 64)}
	}
	return row{hi: r.hi<<n | r.lo>>(64-n), lo: r.lo << n}
}

func (r row) and(o row) row {
	return row{hi: r.hi & o.hi, lo: r.lo & o.lo}
}

func (r row) xor(o row) row {
	return row{hi: r.hi ^ o.hi, lo: r.lo ^ o.lo}
}

func (r row) isZero() bool {
	return r.hi == 0 && r.lo == 0
}

func (r row) bit(x int) bool {
	if x < 64 {
		return r.hi&(1<<(63-x)) != 0
	}
	return r.lo&(1<<(127-x)) != 0
}

func (r row) count() int {
	return bits.OnesCount64(r.hi) + bits.OnesCount64(r.lo)
}

// plane is a bitmap at a single resolution. pixels in a row beyond the width
// of the plane are discarded by setRow().
type plane interface {
	width() int
	height() int
	row(y int) row
	setRow(y int, r row)
	clear()
}

// loResPlane stores each 64 pixel row in a single uint64.
type loResPlane [LoResHeight]uint64

func (p *loResPlane) width() int {
	return LoResWidth
}

func (p *loResPlane) height() int {
	return LoResHeight
}

func (p *loResPlane) row(y int) row {
	return row{hi: p[y]}
}

func (p *loResPlane) setRow(y int, r row) {
	p[y] = r.hi
}

func (p *loResPlane) clear() {
	clear(p[:])
}

// hiResPlane stores each 128 pixel row in a pair of uint64.
type hiResPlane [HiResHeight][2]uint64

func (p *hiResPlane) width() int {
	return HiResWidth
}

func (p *hiResPlane) height() int {
	return HiResHeight
}

func (p *hiResPlane) row(y int) row {
	return row{hi: p[y][0], lo: p[y][1]}
}

func (p *hiResPlane) setRow(y int, r row) {
	p[y] = [2]uint64{r.hi, r.lo}
}

func (p *hiResPlane) clear() {
	clear(p[:])
}
