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

// Package display implements the framebuffer of the interpreter. The
// framebuffer has two resolutions, the standard 64x32 resolution and the
// extended 128x64 resolution. Only one resolution is active at any one time.
//
// Both resolutions are stored as a plane of bit-rows, one bit per pixel with
// the left-most pixel in the most significant bit. Drawing, scrolling and
// clearing are written once against the plane interface.
//
// Every change to the pixels sets the dirty flag. The flag is only cleared by
// Render(), after the Renderer has accepted the pixels.
package display
