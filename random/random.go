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

package random

import (
	"math/rand"
	"time"
)

// Random is a seedable random number generator.
type Random struct {
	seed int64
	src  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero will seed the generator with the current time.
func NewRandom(seed int64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed restarts the random sequence. A seed of zero will seed the generator
// with the current time.
func (rnd *Random) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd.seed = seed
	rnd.src = rand.New(rand.NewSource(seed))
}

// Seed returns the seed value that was used to start the sequence.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Byte returns the next random 8-bit value.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.src.Intn(256))
}
