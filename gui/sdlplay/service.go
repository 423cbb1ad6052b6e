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


package sdlplay

import (
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. we never use
	// the mouse so there's no point in servicing them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. the timeout of one
	// millisecond stops the main thread from spinning when nothing is
	// happening
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.sendEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			// key repeats are not interesting. the key is held until the
			// key up event
			if ev.Repeat != 0 {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				scr.sendEvent(userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: true,
				})
			case sdl.KEYUP:
				scr.sendEvent(userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: false,
				})
			}
		}
	}

	// run any outstanding service functions
	select {
	case f := <-scr.service:
		scr.serviceErr <- f()
	default:
	}
}

// the main thread must never block on the event channel. events are dropped
// if the emulation is not keeping up.
func (scr *SdlPlay) sendEvent(ev userinput.Event) {
	if scr.events == nil {
		return
	}
	select {
	case scr.events <- ev:
	default:
	}
}
