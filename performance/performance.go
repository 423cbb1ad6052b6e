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


package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/limiter"
)

// sentinel error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Leadtime is the period of time the interpreter runs for before measurement
// begins. This allows the frame rate to settle.
var Leadtime = 2 * time.Second

// Check the performance of the interpreter.
//
// The interpreter will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument. If uncapped is false then frames are limited to the
// timer frequency.
func Check(output io.Writer, profile Profile, c8 *hardware.Chip8, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be positive: %s", duration)
	}

	var lmtr *limiter.FpsLimiter
	if !uncapped {
		lmtr, err = limiter.NewFPSLimiter(timers.Frequency)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer lmtr.Stop()
	}

	startFrame := c8.Frames()

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)

		time.AfterFunc(Leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		performanceBrake := 0

		err := c8.Run(func() (govern.State, error) {
			if lmtr != nil {
				lmtr.Wait()
			}

			performanceBrake++
			if lmtr == nil && performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = c8.Frames()
			default:
			}

			return govern.Running, nil
		})
		if errors.Is(err, timedOut) {
			return nil
		}
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := c8.Frames() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
