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


// Package sdlplay is a simple SDL implementation of the display.Renderer
// interface. It opens a single window, copies the framebuffer into a
// streaming texture and forwards keyboard events to the emulation as
// userinput events.
//
// All SDL functions are called from the #mainthread via the Service()
// function. Render() and SetFeature() can be called from any goroutine and
// will block until the main thread has serviced the request.
package sdlplay
