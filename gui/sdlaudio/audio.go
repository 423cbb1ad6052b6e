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


// Package sdlaudio plays the tone through an SDL audio device. Samples are
// generated once per emulated frame and queued on the device.
package sdlaudio

import (
	"encoding/binary"

	"github.com/jetsetilly/gopher8/beep"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of frames of audio that can be queued on the device before new
// frames are dropped. a longer queue introduces lag between the audio and
// video
const maxQueuedFrames = 4

// size in bytes of one frame of audio
const frameBytes = beep.SamplesPerFrame * 2

// Audio outputs sound using SDL.
type Audio struct {
	id  sdl.AudioDeviceID
	gen *beep.Generator

	samples []int16
	buffer  []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// Generator provides the samples.
func NewAudio(gen *beep.Generator) (*Audio, error) {
	aud := &Audio{
		gen:     gen,
		samples: make([]int16, beep.SamplesPerFrame),
		buffer:  make([]uint8, frameBytes),
	}

	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     beep.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(beep.SamplesPerFrame),
	}

	// SDL converts to the format of the device if the obtained spec differs
	// from the one we asked for
	var actualSpec sdl.AudioSpec
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", actualSpec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", actualSpec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetTone implements the gui.AudioMixer interface.
func (aud *Audio) SetTone(on bool) error {
	return aud.gen.SetTone(on)
}

// EndFrame implements the gui.AudioMixer interface.
func (aud *Audio) EndFrame() error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueuedFrames*frameBytes {
		return nil
	}

	aud.gen.Fill(aud.samples)
	for i, s := range aud.samples {
		binary.LittleEndian.PutUint16(aud.buffer[i*2:], uint16(s))
	}

	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}
	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
