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

package bridge

import (
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// Core defines the interpreter functions used by the bridge.
type Core interface {
	SetKey(key uint8)
	ClearKey()
	SoundActive() bool
}

// Tone is implemented by audio devices that can play the tone.
type Tone interface {
	SetTone(on bool) error
}

// Bridge connects the interpreter with the host input and audio.
type Bridge struct {
	core Core
	tone Tone

	// keys remain pressed until they are released
	sticky bool

	// the physical key holding the keypad in sticky mode
	held string

	// the tone state most recently sent to the audio device
	playing bool
}

// NewBridge is the preferred method of initialisation for the Bridge type. The
// tone argument can be nil.
func NewBridge(core Core, tone Tone) *Bridge {
	return &Bridge{
		core: core,
		tone: tone,
	}
}

// SetSticky changes how keys are released. In sticky mode a key is pressed
// until its release event is seen.
func (br *Bridge) SetSticky(sticky bool) {
	br.sticky = sticky
	br.held = ""
}

// Input forwards a single event to the key slot of the interpreter. A nil
// event means that no event occurred. Returns true if the event is a request
// to quit.
func (br *Bridge) Input(ev userinput.Event) (quit bool) {
	switch ev := ev.(type) {
	case userinput.EventQuit:
		return true

	case userinput.EventKeyboard:
		if ev.Down && ev.Key == userinput.KeyQuit {
			return true
		}

		code, ok := userinput.Keypad(ev.Key)

		if br.sticky {
			if ok {
				if ev.Down {
					br.held = ev.Key
					br.core.SetKey(code)
				} else if ev.Key == br.held {
					br.held = ""
					br.core.ClearKey()
				}
			}
			return false
		}

		if ok && ev.Down {
			br.core.SetKey(code)
		} else {
			br.core.ClearKey()
		}

	default:
		if !br.sticky {
			br.core.ClearKey()
		}
	}

	return false
}

// Poll reads no more than one event from the channel and forwards it with
// Input(). The function does not block. Returns true if the event is a
// request to quit or if the channel has been closed.
func (br *Bridge) Poll(events <-chan userinput.Event) (quit bool) {
	select {
	case ev, ok := <-events:
		if !ok {
			return true
		}
		return br.Input(ev)
	default:
		return br.Input(nil)
	}
}

// Audio switches the tone on or off if the state of the sound timer has
// changed since the previous call.
func (br *Bridge) Audio() error {
	active := br.core.SoundActive()
	if active == br.playing {
		return nil
	}

	// playing is not changed on error so the next call tries again
	if br.tone != nil {
		if err := br.tone.SetTone(active); err != nil {
			logger.Logf(logger.Allow, "bridge", "tone: %v", err)
			return err
		}
	}

	br.playing = active

	return nil
}

// Playing returns true if the tone is on.
func (br *Bridge) Playing() bool {
	return br.playing
}
