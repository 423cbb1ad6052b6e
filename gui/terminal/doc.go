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


// Package terminal is a text frontend for the emulator. The display is drawn
// with half-block characters, two CHIP-8 pixels to a character cell, and
// keyboard input is read with the terminal in raw mode.
//
// Terminals do not report key releases. A key up event is generated when the
// key has not been repeated for KeyHold.
//
// Package terminal is only available on unix systems.
package terminal
