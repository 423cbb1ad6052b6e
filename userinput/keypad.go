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

package userinput

import "strings"

// the physical key for each keypad code. the layout of the physical keys
// matches the layout of the original hex keypad:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var keypad = [16]string{
	"X", "1", "2", "3",
	"Q", "W", "E", "A",
	"S", "D", "Z", "C",
	"4", "R", "F", "V",
}

// Keypad translates the name of a physical key to a keypad code. Returns
// false if the key is not part of the keypad. The key name is not case
// sensitive.
func Keypad(key string) (uint8, bool) {
	key = strings.ToUpper(key)
	for code, k := range keypad {
		if k == key {
			return uint8(code), true
		}
	}
	return 0, false
}

// PhysicalKey returns the name of the physical key for a keypad code. Only
// the lower nibble of code is used.
func PhysicalKey(code uint8) string {
	return keypad[code&0x0f]
}
