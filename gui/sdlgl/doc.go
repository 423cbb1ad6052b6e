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


// Package sdlgl presents the CHIP-8 display in an SDL window using OpenGL 3.2
// core. The display is uploaded as a texture and drawn as a single quad
// filling the window.
//
// The window must be created with the sdl.WINDOW_OPENGL flag and after a call
// to SetAttributes().
package sdlgl
