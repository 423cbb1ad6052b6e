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

package preferences

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Default values for preferences that are not false or zero.
const (
	DefaultIndexOverflow = true
	DefaultSpeed         = 11
)

// MaxSpeed is the maximum number of instructions executed per frame.
const MaxSpeed = 1000

// Live copies of the preference values.
type Live struct {
	IndexOverflow        atomic.Bool
	TimersPerInstruction atomic.Bool
	WrapOrigin           atomic.Bool
	Speed                atomic.Int64
}

// Preferences defines and collates the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// prefer live values in performance critical code
	Live Live

	// Fx1E sets VF if the result of the addition is outside of the
	// addressable memory
	IndexOverflow prefs.Bool

	// the delay and sound timers are decremented after every instruction
	// rather than once per frame
	TimersPerInstruction prefs.Bool

	// the origin of a sprite is wrapped to the dimensions of the active
	// resolution rather than to the standard 64x32 resolution
	WrapOrigin prefs.Bool

	// number of instructions executed per frame
	Speed prefs.Int

	// seed for the random number generator. a value of zero means that the
	// seed will be taken from the current time
	RandSeed prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences file will be created at path if it does
// not exist. If path is empty then the default preferences file in the
// resource directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.IndexOverflow.SetHookPost(func(v prefs.Value) error {
		p.Live.IndexOverflow.Store(v.(bool))
		return nil
	})
	p.TimersPerInstruction.SetHookPost(func(v prefs.Value) error {
		p.Live.TimersPerInstruction.Store(v.(bool))
		return nil
	})
	p.WrapOrigin.SetHookPost(func(v prefs.Value) error {
		p.Live.WrapOrigin.Store(v.(bool))
		return nil
	})
	p.Speed.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < 1 || s > MaxSpeed {
			return fmt.Errorf("speed must be between 1 and %d", MaxSpeed)
		}
		return nil
	})
	p.Speed.SetHookPost(func(v prefs.Value) error {
		p.Live.Speed.Store(int64(v.(int)))
		return nil
	})

	// defaults must be set before the values are added to the disk instance
	err := p.IndexOverflow.Set(DefaultIndexOverflow)
	if err != nil {
		return nil, err
	}
	err = p.TimersPerInstruction.Set(false)
	if err != nil {
		return nil, err
	}
	err = p.WrapOrigin.Set(false)
	if err != nil {
		return nil, err
	}
	err = p.Speed.Set(DefaultSpeed)
	if err != nil {
		return nil, err
	}
	err = p.RandSeed.Set(0)
	if err != nil {
		return nil, err
	}

	if path == "" {
		path, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.quirks.indexoverflow", &p.IndexOverflow)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.quirks.timersperinstruction", &p.TimersPerInstruction)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.quirks.wraporigin", &p.WrapOrigin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.speed", &p.Speed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.randseed", &p.RandSeed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
