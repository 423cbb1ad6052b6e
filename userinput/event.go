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

// Event represents all the different types of input event.
type Event interface{}

// EventQuit is sent when the user has requested that the program ends. For
// example, by closing the window.
type EventQuit struct{}

// EventKeyboard is sent for every key press and release.
type EventKeyboard struct {
	Key  string
	Down bool
}

// KeyQuit is the name of the key that ends the program.
const KeyQuit = "Escape"
