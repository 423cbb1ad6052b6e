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

package beep

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gopher8/hardware/timers"
)

// SampleRate of the generated audio.
const SampleRate = 44100

// SamplesPerFrame is the number of samples generated for every frame.
const SamplesPerFrame = SampleRate / timers.Frequency

// Limits for the frequency of the square wave.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
)

// DefaultFrequency of the square wave.
const DefaultFrequency = 440.0

// DefaultVolume is the volume of the generated tone as a fraction of the
// maximum amplitude.
const DefaultVolume = 0.25

// Generator produces the samples of the tone.
type Generator struct {
	// one period of a square wave or the entirety of a loaded sample
	wave []int16
	pos  int

	on bool
}

// NewSquareWave is the preferred method of initialisation for a Generator
// that produces a square wave at the specified frequency.
func NewSquareWave(frequency float64, volume float64) (*Generator, error) {
	if frequency < MinFrequency || frequency > MaxFrequency {
		return nil, fmt.Errorf("beep: frequency must be between %.0fHz and %.0fHz", MinFrequency, MaxFrequency)
	}
	volume = math.Max(0, math.Min(volume, 1))

	period := int(math.Round(SampleRate / frequency))
	if period < 2 {
		period = 2
	}

	amp := int16(volume * math.MaxInt16)

	g := &Generator{
		wave: make([]int16, period),
	}
	for i := range g.wave {
		if i < period/2 {
			g.wave[i] = amp
		} else {
			g.wave[i] = -amp
		}
	}

	return g, nil
}

// SetTone switches the tone on or off. The tone restarts from the beginning
// every time it is switched on.
func (g *Generator) SetTone(on bool) error {
	if on && !g.on {
		g.pos = 0
	}
	g.on = on
	return nil
}

// Playing returns true if the tone is on.
func (g *Generator) Playing() bool {
	return g.on
}

// Fill buf with the next samples of the tone. The buffer is filled with
// silence if the tone is off.
func (g *Generator) Fill(buf []int16) {
	if !g.on || len(g.wave) == 0 {
		clear(buf)
		return
	}

	for i := range buf {
		buf[i] = g.wave[g.pos]
		g.pos++
		if g.pos >= len(g.wave) {
			g.pos = 0
		}
	}
}

// Len returns the number of samples in one loop of the tone.
func (g *Generator) Len() int {
	return len(g.wave)
}

// Clone returns a new Generator sharing the same tone. The clone starts with
// the tone off.
func (g *Generator) Clone() *Generator {
	return &Generator{wave: g.wave}
}
