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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func newChip8(t testing.TB, rom ...uint8) *hardware.Chip8 {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	if err != nil {
		t.Fatal(err)
	}

	c8, err := hardware.NewChip8(p)
	if err != nil {
		t.Fatal(err)
	}

	if err := c8.AttachROM(rom); err != nil {
		t.Fatal(err)
	}

	return c8
}

func TestParseKeyScript(t *testing.T) {
	script, err := parseKeyScript("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(script), 0)

	script, err = parseKeyScript("10:5, 20:a,30:-A")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(script), 3)
	test.ExpectEquality(t, script.event(10), userinput.Event(userinput.EventKeyboard{Key: "W", Down: true}))
	test.ExpectEquality(t, script.event(20), userinput.Event(userinput.EventKeyboard{Key: "Z", Down: true}))
	test.ExpectEquality(t, script.event(30), userinput.Event(userinput.EventKeyboard{Key: "Z", Down: false}))
	test.ExpectEquality(t, script.event(11), nil)

	for _, bad := range []string{"10", "x:5", "-1:5", "10:G", "10:10", "10:1,10:2"} {
		_, err = parseKeyScript(bad)
		test.ExpectFailure(t, err, bad)
	}
}

func TestRunHeadless(t *testing.T) {
	c8 := newChip8(t,
		0xf0, 0x0a, // V0 = wait for key
		0xf0, 0x29, // I = glyph for V0
		0xd0, 0x05, // draw glyph at V0,V0
		0x12, 0x06, // jump to self
	)

	// key 1 is pressed before the third frame
	script, err := parseKeyScript("2:1")
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, runHeadless(c8, 5, script, false, nil))
	test.ExpectEquality(t, c8.Frames(), 5)
	test.ExpectEquality(t, c8.CPU.V[0].Value(), uint8(1))
	test.ExpectEquality(t, c8.Waiting(), false)

	// glyph for 1 drawn at 1,1. the top row of the glyph is 0x20
	px := c8.Pixels()
	test.ExpectEquality(t, px.At(3, 1), true)
	test.ExpectEquality(t, px.At(2, 1), false)
}

func TestRunHeadlessNoKey(t *testing.T) {
	c8 := newChip8(t, 0xf0, 0x0a)

	test.DemandSuccess(t, runHeadless(c8, 3, nil, false, nil))
	test.ExpectEquality(t, c8.Waiting(), true)
}

func BenchmarkRunFrame(b *testing.B) {
	// a loop that draws and clears the screen
	c8 := newChip8(b,
		0x60, 0x00, // V0 = 0
		0xf0, 0x29, // I = glyph for V0
		0xd0, 0x05, // draw
		0x00, 0xe0, // clear
		0x70, 0x01, // V0 += 1
		0x12, 0x02, // jump to 0x202
	)
	c8.Prefs.Live.Speed.Store(preferences.MaxSpeed)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c8.RunFrame(); err != nil {
			b.Fatal(err)
		}
	}
}
