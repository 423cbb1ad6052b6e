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

// Package bridge connects the interpreter to the peripherals of the host
// machine. Input events are translated into the key slot of the interpreter
// and the state of the sound timer is translated into a tone that is
// switched on and off.
//
// Only one key can be pressed at a time and the most recent event wins. By
// default, a poll with no event means that no key is pressed. In sticky
// mode a key remains pressed until it is released.
//
// The tone is only switched when the state of the sound timer changes, so
// the audio device sees a single call for each start and end of a sound.
package bridge
