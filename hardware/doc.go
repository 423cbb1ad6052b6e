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

// Package hardware is the base package for the interpreter hardware. The
// Chip8 type collates the memory, framebuffer and interpreter core and
// schedules their execution. The sub-packages implement the individual
// components.
//
// Execution is organised into frames. A frame is a fixed number of
// instructions, given by the chip8.speed preference, followed by a single
// step of the delay and sound timers. Running frames at 60Hz therefore
// decrements the timers at the correct rate regardless of speed.
//
// A frame ends early if the core is waiting for a key. The timers are still
// stepped so that a program waiting for a key does not hold the timers.
package hardware
