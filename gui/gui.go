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


package gui

import "errors"

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinal error returned if GUI does no support requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)

// AudioMixer receives the state of the tone once per frame. Implementations
// include the SDL audio device and the WAV writer.
type AudioMixer interface {
	// SetTone is called whenever the tone changes between on and off.
	SetTone(on bool) error

	// EndFrame is called once per emulated frame, after any call to SetTone().
	EndFrame() error

	// EndMixing is called when no more audio will be sent to the mixer.
	EndMixing() error
}

// AudioMixers sends the tone to every mixer in the list. The zero value is an
// empty list and is safe to use.
type AudioMixers []AudioMixer

// SetTone implements the AudioMixer interface.
func (mx AudioMixers) SetTone(on bool) error {
	var errs []error
	for _, m := range mx {
		errs = append(errs, m.SetTone(on))
	}
	return errors.Join(errs...)
}

// EndFrame implements the AudioMixer interface.
func (mx AudioMixers) EndFrame() error {
	var errs []error
	for _, m := range mx {
		errs = append(errs, m.EndFrame())
	}
	return errors.Join(errs...)
}

// EndMixing implements the AudioMixer interface. Every mixer is ended even if
// an earlier one fails.
func (mx AudioMixers) EndMixing() error {
	var errs []error
	for _, m := range mx {
		errs = append(errs, m.EndMixing())
	}
	return errors.Join(errs...)
}
