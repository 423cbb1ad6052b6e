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


package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/limiter"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/peripherals/bridge"
	"github.com/jetsetilly/gopher8/userinput"
)

// the number of input events that can be waiting before the frontend starts
// dropping them
const eventQueueLen = 64

// Frontend is a GUI that can also present the display.
type Frontend interface {
	gui.GUI
	display.Renderer
}

// Options for the Play() function.
type Options struct {
	// keys are held until released rather than for a single frame
	Sticky bool

	// frames per second. the default is the frequency of the timers
	FPS int
}

// Play runs the emulation until the user quits, an interrupt signal is
// received, or the emulation fails. The mixer can be nil.
func Play(c8 *hardware.Chip8, scr Frontend, mixer gui.AudioMixer, opts Options) (rerr error) {
	if mixer == nil {
		mixer = gui.AudioMixers{}
	}

	// mixing must always end, even if the emulation has failed
	defer func() {
		err := mixer.EndMixing()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("playmode: %v", err)
		}
	}()

	events := make(chan userinput.Event, eventQueueLen)
	err := scr.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	br := bridge.NewBridge(c8, mixer)
	br.SetSticky(opts.Sticky)

	if opts.FPS <= 0 {
		opts.FPS = timers.Frequency
	}
	lmtr, err := limiter.NewFPSLimiter(opts.FPS)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer lmtr.Stop()
	logger.Logf(logger.Allow, "playmode", "frame limit: %d fps", lmtr.Limit())

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		logger.Logf(logger.Allow, "playmode", "%v", err)
	}

	// the display is rendered before the first frame
	err = c8.Render(scr)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	continueCheck := func() (govern.State, error) {
		select {
		case <-intChan:
			logger.Log(logger.Allow, "playmode", "interrupted")
			return govern.Ending, nil
		default:
		}

		// audio errors are not fatal. the bridge logs tone errors
		_ = br.Audio()
		err := mixer.EndFrame()
		if err != nil {
			logger.Logf(logger.Allow, "playmode", "%v", err)
		}

		err = c8.Render(scr)
		if err != nil {
			return govern.Ending, err
		}

		lmtr.Wait()

		if br.Poll(events) {
			return govern.Ending, nil
		}

		return govern.Running, nil
	}

	// the first frame uses any input that arrived while the frontend was
	// being prepared
	if br.Poll(events) {
		return nil
	}

	err = c8.Run(continueCheck)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
