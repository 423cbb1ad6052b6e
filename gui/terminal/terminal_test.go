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


//go:build linux

package terminal_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/terminal"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/pkg/term/termios"
)

func expectEvent(t *testing.T, events chan userinput.Event) userinput.Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(time.Second):
		t.Fatalf("no event received")
	}
	return nil
}

func TestTerminalInput(t *testing.T) {
	ptm, pts, err := termios.Pty()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	defer ptm.Close()
	defer pts.Close()

	trm, err := terminal.NewTerminal(pts, pts)
	test.DemandSuccess(t, err)
	defer trm.Destroy(nil)

	events := make(chan userinput.Event, 10)
	test.DemandSuccess(t, trm.SetFeature(gui.ReqSetEventChan, events))
	test.ExpectFailure(t, trm.SetFeature(gui.ReqSetScale, 2))

	// key press and the synthesised key release
	_, err = ptm.Write([]byte("q"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, expectEvent(t, events), userinput.Event(userinput.EventKeyboard{Key: "Q", Down: true}))
	test.ExpectEquality(t, expectEvent(t, events), userinput.Event(userinput.EventKeyboard{Key: "Q", Down: false}))

	// escape is sent as the quit key
	_, err = ptm.Write([]byte{0x1b})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, expectEvent(t, events), userinput.Event(userinput.EventKeyboard{Key: userinput.KeyQuit, Down: true}))
	test.ExpectEquality(t, expectEvent(t, events), userinput.Event(userinput.EventKeyboard{Key: userinput.KeyQuit, Down: false}))

	// ctrl-c
	_, err = ptm.Write([]byte{0x03})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, expectEvent(t, events), userinput.Event(userinput.EventQuit{}))
}

func TestTerminalDestroyStopsInput(t *testing.T) {
	ptm, pts, err := termios.Pty()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	defer ptm.Close()
	defer pts.Close()

	trm, err := terminal.NewTerminal(pts, pts)
	test.DemandSuccess(t, err)

	events := make(chan userinput.Event, 10)
	test.DemandSuccess(t, trm.SetFeature(gui.ReqSetEventChan, events))

	// Destroy() returns only after the input goroutine has ended
	trm.Destroy(nil)

	// a complete line is readable in canonical mode so a running input
	// goroutine would see it
	_, err = ptm.Write([]byte("q\n"))
	test.DemandSuccess(t, err)

	select {
	case ev := <-events:
		t.Errorf("unexpected event after Destroy(): %v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestTerminalRender(t *testing.T) {
	ptm, pts, err := termios.Pty()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	defer ptm.Close()
	defer pts.Close()

	trm, err := terminal.NewTerminal(pts, pts)
	test.DemandSuccess(t, err)
	defer trm.Destroy(nil)

	fb := display.NewFramebuffer()
	fb.Draw(0, 0, []uint8{0xc0, 0xc0})
	test.ExpectSuccess(t, trm.Render(fb.Pixels()))

	// drain what has been written so far and look for the drawn pixels
	buf := make([]byte, 4096)
	n, err := ptm.Read(buf)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, n, 0)
}
