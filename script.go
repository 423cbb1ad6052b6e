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


package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/peripherals/bridge"
	"github.com/jetsetilly/gopher8/userinput"
)

// keyScript is a list of keypad events indexed by the frame before which they
// happen. the first frame is frame zero.
type keyScript map[int]userinput.EventKeyboard

// parseKeyScript parses a comma separated list of frame:key pairs. The key is
// a hexadecimal keypad digit. A key prefixed with a minus sign is released
// rather than pressed, which is only useful with sticky keys.
//
// For example, "10:5,20:A,30:-A"
func parseKeyScript(s string) (keyScript, error) {
	script := make(keyScript)

	s = strings.TrimSpace(s)
	if s == "" {
		return script, nil
	}

	for _, p := range strings.Split(s, ",") {
		frame, key, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			return nil, fmt.Errorf("key script: missing colon in %q", p)
		}

		f, err := strconv.Atoi(frame)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("key script: bad frame number in %q", p)
		}

		down := true
		if strings.HasPrefix(key, "-") {
			down = false
			key = key[1:]
		}

		code, err := strconv.ParseUint(key, 16, 8)
		if err != nil || code > 0x0f {
			return nil, fmt.Errorf("key script: bad keypad digit in %q", p)
		}

		if _, ok := script[f]; ok {
			return nil, fmt.Errorf("key script: more than one key for frame %d", f)
		}

		script[f] = userinput.EventKeyboard{
			Key:  userinput.PhysicalKey(uint8(code)),
			Down: down,
		}
	}

	return script, nil
}

// event returns the event for the frame or nil if there is no event.
func (ks keyScript) event(frame int) userinput.Event {
	if ev, ok := ks[frame]; ok {
		return ev
	}
	return nil
}

// runHeadless runs the emulation for the number of frames as fast as possible.
// The scripted key events are forwarded to the interpreter in exactly the same
// way as events from a GUI.
func runHeadless(c8 *hardware.Chip8, numFrames int, script keyScript, sticky bool, mixer gui.AudioMixer) (rerr error) {
	if mixer == nil {
		mixer = gui.AudioMixers{}
	}

	defer func() {
		err := mixer.EndMixing()
		if err != nil && rerr == nil {
			rerr = err
		}
	}()

	br := bridge.NewBridge(c8, mixer)
	br.SetSticky(sticky)

	// quit events from a script are not possible. the return value of Input()
	// can be ignored
	_ = br.Input(script.event(c8.Frames()))

	return c8.RunForFrameCount(numFrames, func(frame int) (govern.State, error) {
		_ = br.Audio()
		if err := mixer.EndFrame(); err != nil {
			return govern.Ending, err
		}
		_ = br.Input(script.event(frame))
		return govern.Running, nil
	})
}
