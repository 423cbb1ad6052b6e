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

// Package userinput handles input from real hardware that the user of the
// interpreter is using to control the emulated machine.
//
// It can be thought of as a translation layer between the GUI
// implementation and the hardware package. GUI implementations send Event
// values and the keypad table translates physical keys to the sixteen keys
// of the hex keypad.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system. Key names are the SDL names for the keys,
// which for letters and numbers is the upper case character.
package userinput
