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


package playmode_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

type fakeFrontend struct {
	events  chan userinput.Event
	visible bool
	renders int
}

func (fe *fakeFrontend) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetEventChan:
		fe.events = args[0].(chan userinput.Event)
	case gui.ReqSetVisibility:
		fe.visible = args[0].(bool)
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}
	return nil
}

func (fe *fakeFrontend) Render(_ *display.Pixels) error {
	fe.renders++
	return nil
}

// quitMixer records the tone and asks the frontend to quit after a number of
// frames.
type quitMixer struct {
	fe        *fakeFrontend
	quitAt    int
	quitEvent userinput.Event

	tones  []bool
	frames int
	ended  bool
}

func (mx *quitMixer) SetTone(on bool) error {
	mx.tones = append(mx.tones, on)
	return nil
}

func (mx *quitMixer) EndFrame() error {
	mx.frames++
	if mx.frames == mx.quitAt {
		if mx.quitEvent == nil {
			mx.quitEvent = userinput.EventQuit{}
		}
		mx.fe.events <- mx.quitEvent
	}
	return nil
}

func (mx *quitMixer) EndMixing() error {
	mx.ended = true
	return nil
}

func newChip8(t *testing.T, rom ...uint8) *hardware.Chip8 {
	t.Helper()

	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	c8, err := hardware.NewChip8(prefs)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c8.AttachROM(rom))

	return c8
}

func TestPlay(t *testing.T) {
	c8 := newChip8(t,
		0x60, 0x05, // V0 = 5
		0xf0, 0x18, // ST = V0
		0x00, 0xe0, // clear screen
		0x12, 0x06, // jump to self
	)

	fe := &fakeFrontend{}
	mx := &quitMixer{fe: fe, quitAt: 10}

	// a high frame rate keeps the test short
	err := playmode.Play(c8, fe, mx, playmode.Options{FPS: 1000})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, fe.visible, true)
	test.ExpectEquality(t, fe.renders >= 1, true)
	test.ExpectEquality(t, mx.frames, 10)
	test.ExpectEquality(t, mx.ended, true)
	test.ExpectEquality(t, c8.Frames(), 10)

	// the sound timer was running for five frames. the tone is switched on
	// and off exactly once
	test.DemandEquality(t, len(mx.tones), 2)
	test.ExpectEquality(t, mx.tones[0], true)
	test.ExpectEquality(t, mx.tones[1], false)
}

func TestPlayQuitKey(t *testing.T) {
	c8 := newChip8(t, 0x12, 0x00)

	fe := &fakeFrontend{}
	mx := &quitMixer{
		fe:        fe,
		quitAt:    3,
		quitEvent: userinput.EventKeyboard{Key: userinput.KeyQuit, Down: true},
	}

	err := playmode.Play(c8, fe, mx, playmode.Options{FPS: 1000})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mx.frames, 3)
	test.ExpectEquality(t, mx.ended, true)
}

func TestPlayError(t *testing.T) {
	// return with an empty stack is fatal
	c8 := newChip8(t, 0x00, 0xee)

	fe := &fakeFrontend{}
	mx := &quitMixer{fe: fe, quitAt: 100}

	err := playmode.Play(c8, fe, mx, playmode.Options{FPS: 1000})
	test.ExpectFailure(t, err)

	// mixing is ended even though the emulation failed
	test.ExpectEquality(t, mx.ended, true)
}
