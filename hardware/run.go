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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8/govern"
)

// PerformanceBrake is a standard value that can be used by a continue check
// function to filter out expensive checks. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run frames until the continue check returns the Ending state. The continue
// check is called after every frame. Frames are not run while the state is
// Paused. Pacing of frames, if required, is the responsibility of the
// continue check function.
func (c8 *Chip8) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			if err := c8.RunFrame(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return fmt.Errorf("chip8: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the specified number of frames. The continue check
// is called after every frame and can end the run early.
func (c8 *Chip8) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := c8.frames + numFrames

	state := govern.Running
	for c8.frames < targetFrame && state != govern.Ending {
		if err := c8.RunFrame(); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(c8.frames)
		if err != nil {
			return err
		}
	}

	return nil
}
