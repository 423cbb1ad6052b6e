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


//go:build unix

package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// KeyHold is how long a key is considered to be held after it was last
// pressed or repeated.
const KeyHold = 150 * time.Millisecond

// how often the input goroutine checks for termination, in milliseconds.
const inputPoll = 50

// ansi sequences
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	resetStyle  = "\x1b[0m"
)

// byte values with special meaning in raw mode
const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
)

// Terminal implements the gui.GUI and display.Renderer interfaces.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// geometry of the output terminal. updated on SIGWINCH
	mu   sync.Mutex
	cols int
	rows int

	// the event channel is set with a ReqSetEventChan request
	events   chan userinput.Event
	eventsMu sync.Mutex

	// synthesises key up events
	release *time.Timer
	held    string

	terminateSig chan bool
	terminateAck chan bool

	// closed by Destroy() to stop the input goroutine
	inputDone chan bool
	inputAck  chan bool
}

// NewTerminal is the preferred method of initialisation for the Terminal type.
// The input file is put into raw mode until Destroy() is called.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf("terminal: %v", "input and output files are required")
	}

	trm := &Terminal{
		input:        input,
		output:       output,
		terminateSig: make(chan bool),
		terminateAck: make(chan bool),
		inputDone:    make(chan bool),
		inputAck:     make(chan bool),
	}

	err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	// raw mode is a modification of the canonical attributes
	trm.rawAttr = trm.canAttr
	termios.Cfmakeraw(&trm.rawAttr)

	err = termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.rawAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	err = trm.updateGeometry()
	if err != nil {
		logger.Logf(logger.Allow, "terminal", "%v", err)
	}

	// keep geometry up to date
	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			trm.terminateAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = trm.updateGeometry()
				trm.print(clearScreen)
			case <-trm.terminateSig:
				return
			}
		}
	}()

	go trm.readInput()

	trm.print(clearScreen + hideCursor)

	return trm, nil
}

// Destroy implements the GuiCreator interface. The terminal is returned to
// canonical mode.
func (trm *Terminal) Destroy(output io.Writer) {
	trm.terminateSig <- true
	<-trm.terminateAck

	close(trm.inputDone)
	<-trm.inputAck

	trm.print(resetStyle + showCursor + "\r\n")

	if err := termios.Tcflush(trm.input.Fd(), termios.TCIFLUSH); err != nil && output != nil {
		fmt.Fprintf(output, "terminal: %v\n", err)
	}
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr); err != nil && output != nil {
		fmt.Fprintf(output, "terminal: %v\n", err)
	}
}

// Service implements the GuiCreator interface. The terminal does not need to
// be serviced from the main thread.
func (trm *Terminal) Service() {
	// without this the main thread would spin
	time.Sleep(time.Millisecond)
}

// SetFeature implements the gui.GUI interface.
func (trm *Terminal) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf("terminal: %v", fmt.Sprintf("%v: %v", request, r))
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		trm.eventsMu.Lock()
		trm.events = args[0].(chan userinput.Event)
		trm.eventsMu.Unlock()

	case gui.ReqSetTitle:
		// xterm compatible window title
		trm.print(fmt.Sprintf("\x1b]0;%s\x07", args[0].(string)))

	case gui.ReqSetVisibility:
		// terminal is always visible

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// Render implements the display.Renderer interface.
func (trm *Terminal) Render(px *display.Pixels) error {
	trm.mu.Lock()
	cols, rows := trm.cols, trm.rows
	trm.mu.Unlock()

	lines := HalfBlocks(px, cols, rows)

	var s strings.Builder
	s.WriteString(cursorHome)
	s.WriteString(strings.Join(lines, "\r\n"))

	_, err := trm.output.WriteString(s.String())
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

func (trm *Terminal) print(s string) {
	_, _ = trm.output.WriteString(s)
}

func (trm *Terminal) updateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(trm.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf("terminal: geometry: %v", err)
	}

	trm.mu.Lock()
	defer trm.mu.Unlock()
	trm.cols = int(ws.Col)
	trm.rows = int(ws.Row)

	return nil
}

// readInput runs in its own goroutine until Destroy() is called or the input
// file is closed. the file is only read when poll reports that it is ready so
// that the goroutine never blocks for longer than the poll timeout.
func (trm *Terminal) readInput() {
	defer close(trm.inputAck)

	buf := make([]byte, 16)
	fds := []unix.PollFd{{Fd: int32(trm.input.Fd()), Events: unix.POLLIN}}

	for {
		select {
		case <-trm.inputDone:
			return
		default:
		}

		n, err := unix.Poll(fds, inputPoll)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			logger.Logf(logger.Allow, "terminal", "input: %v", err)
			return
		}
		if n == 0 {
			continue
		}
		if fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0 && fds[0].Revents&unix.POLLIN == 0 {
			return
		}

		n, err = trm.input.Read(buf)
		if err != nil {
			return
		}
		trm.handleInput(buf[:n])
	}
}

func (trm *Terminal) handleInput(b []byte) {
	if len(b) == 0 {
		return
	}

	switch b[0] {
	case keyCtrlC:
		trm.sendEvent(userinput.EventQuit{})
		return
	case keyEsc:
		// a lone escape byte is the escape key. anything longer is an escape
		// sequence for a key that has no meaning to the emulation
		if len(b) == 1 {
			trm.press(userinput.KeyQuit)
		}
		return
	}

	// the last byte is the most recent key press
	trm.press(strings.ToUpper(string(b[len(b)-1:])))
}

// press sends a key down event and schedules the matching key up event.
func (trm *Terminal) press(key string) {
	trm.eventsMu.Lock()
	defer trm.eventsMu.Unlock()

	if trm.release != nil {
		trm.release.Stop()

		// a different key releases the previous key immediately
		if trm.held != key {
			trm.sendEventLocked(userinput.EventKeyboard{Key: trm.held, Down: false})
		}
	}

	trm.held = key
	trm.sendEventLocked(userinput.EventKeyboard{Key: key, Down: true})

	// the lock is held so the timer cannot call expire() before release has
	// been assigned
	var tmr *time.Timer
	tmr = time.AfterFunc(KeyHold, func() {
		trm.expire(tmr)
	})
	trm.release = tmr
}

// expire sends the key up event for the held key. a timer that has been
// replaced by a more recent press is ignored, even if it fired before it
// could be stopped.
func (trm *Terminal) expire(tmr *time.Timer) {
	trm.eventsMu.Lock()
	defer trm.eventsMu.Unlock()

	if trm.release != tmr {
		return
	}

	trm.sendEventLocked(userinput.EventKeyboard{Key: trm.held, Down: false})
	trm.held = ""
	trm.release = nil
}

func (trm *Terminal) sendEvent(ev userinput.Event) {
	trm.eventsMu.Lock()
	defer trm.eventsMu.Unlock()
	trm.sendEventLocked(ev)
}

// events are dropped if the channel is full.
func (trm *Terminal) sendEventLocked(ev userinput.Event) {
	if trm.events == nil {
		return
	}
	select {
	case trm.events <- ev:
	default:
	}
}

// sanity check that Terminal implements the required interfaces.
var _ gui.GUI = (*Terminal)(nil)
var _ display.Renderer = (*Terminal)(nil)
