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

package timers

import "fmt"

// Frequency is the rate at which the timers should be stepped.
const Frequency = 60

// Timer is a single 8 bit count down timer. The zero value is a stopped
// timer.
type Timer struct {
	label string
	value uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(label string) *Timer {
	return &Timer{label: label}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("%s=%d", tmr.label, tmr.value)
}

// Label returns the name given to the timer.
func (tmr *Timer) Label() string {
	return tmr.label
}

// Set the timer value.
func (tmr *Timer) Set(v uint8) {
	tmr.value = v
}

// Value returns the current timer value.
func (tmr *Timer) Value() uint8 {
	return tmr.value
}

// Active returns true if the timer value is not zero.
func (tmr *Timer) Active() bool {
	return tmr.value > 0
}

// Step decrements the timer. The timer stops at zero.
func (tmr *Timer) Step() {
	if tmr.value > 0 {
		tmr.value--
	}
}

// Timers collates the delay and sound timers.
type Timers struct {
	Delay *Timer
	Sound *Timer
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{
		Delay: NewTimer("DT"),
		Sound: NewTimer("ST"),
	}
}

func (tmrs *Timers) String() string {
	return fmt.Sprintf("%s %s", tmrs.Delay, tmrs.Sound)
}

// Reset both timers to zero.
func (tmrs *Timers) Reset() {
	tmrs.Delay.Set(0)
	tmrs.Sound.Set(0)
}

// Step both timers.
func (tmrs *Timers) Step() {
	tmrs.Delay.Step()
	tmrs.Sound.Step()
}
