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


// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when mixing ends. It is therefore probably only suitable for short sessions
// and for testing.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/gopher8/beep"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// WavWriter implements the gui.AudioMixer interface.
type WavWriter struct {
	filename string
	gen      *beep.Generator

	samples []int16
	buffer  []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// Generator provides the samples.
func New(filename string, gen *beep.Generator) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		gen:      gen,
		samples:  make([]int16, beep.SamplesPerFrame),
		buffer:   make([]int, 0, beep.SampleRate),
	}

	return aw, nil
}

// SetTone implements the gui.AudioMixer interface.
func (aw *WavWriter) SetTone(on bool) error {
	return aw.gen.SetTone(on)
}

// EndFrame implements the gui.AudioMixer interface.
func (aw *WavWriter) EndFrame() error {
	aw.gen.Fill(aw.samples)
	for _, s := range aw.samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, beep.SampleRate, bitDepth, 1, 1)

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  beep.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	// the encoder must be closed for the header to be updated with the
	// correct sizes
	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Frames returns the number of frames of audio that have been buffered.
func (aw *WavWriter) Frames() int {
	return len(aw.buffer) / beep.SamplesPerFrame
}
