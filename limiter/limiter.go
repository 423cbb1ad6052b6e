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


// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, fmt.Errorf("limiter: frames per second must be positive: %d", framesPerSecond)
	}

	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(time.Second / time.Duration(framesPerSecond)),
	}

	return lim, nil
}

// Limit returns the current frames per second.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
