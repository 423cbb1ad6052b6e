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
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// LoadSample is the preferred method of initialisation for a Generator that
// plays a sample from a file. The type of file is decided by the file
// extension. Supported types are WAV and MP3.
//
// Only the first channel of the sample is used. The sample is resampled to
// SampleRate and normalised to the volume.
func LoadSample(filename string, volume float64) (*Generator, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("beep: %v", err)
	}

	var pcm []float64
	var rate int

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		pcm, rate, err = decodeWAV(bytes.NewReader(data))
	case ".mp3":
		pcm, rate, err = decodeMP3(bytes.NewReader(data))
	default:
		return nil, curated.Errorf("beep: %v", fmt.Sprintf("unsupported sample type (%s)", filepath.Ext(filename)))
	}
	if err != nil {
		return nil, curated.Errorf("beep: %v", err)
	}

	if len(pcm) == 0 || rate <= 0 {
		return nil, curated.Errorf("beep: %v", "sample is empty")
	}

	logger.Logf(logger.Allow, "beep", "loaded %s: %d samples at %dHz", filepath.Base(filename), len(pcm), rate)

	return &Generator{
		wave: normalise(resample(pcm, rate), volume),
	}, nil
}

func decodeWAV(r io.ReadSeeker) ([]float64, int, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, 0, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	// copy first channel only of data stream
	pcm := make([]float64, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		pcm = append(pcm, float64(buf.Data[i]))
	}

	return pcm, int(dec.SampleRate), nil
}

func decodeMP3(r io.Reader) ([]float64, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}

	// the stream is always 16 bit little endian with two channels even if
	// the source is a single channel mp3
	var pcm []float64
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			s := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			pcm = append(pcm, float64(s))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break // for loop
		}
		if err != nil {
			return nil, 0, fmt.Errorf("mp3: %w", err)
		}
	}

	return pcm, dec.SampleRate(), nil
}

// resample pcm data to SampleRate using the nearest sample.
func resample(pcm []float64, rate int) []float64 {
	if rate == SampleRate {
		return pcm
	}

	n := int(float64(len(pcm)) * SampleRate / float64(rate))
	if n < 1 {
		n = 1
	}

	out := make([]float64, n)
	for i := range out {
		j := i * rate / SampleRate
		if j >= len(pcm) {
			j = len(pcm) - 1
		}
		out[i] = pcm[j]
	}
	return out
}

// normalise removes any DC offset from the pcm data and scales it so that
// the peak is at the specified volume.
func normalise(pcm []float64, volume float64) []int16 {
	volume = math.Max(0, math.Min(volume, 1))

	var mean float64
	for _, v := range pcm {
		mean += v
	}
	mean /= float64(len(pcm))

	var peak float64
	for _, v := range pcm {
		peak = math.Max(peak, math.Abs(v-mean))
	}

	out := make([]int16, len(pcm))
	if peak == 0 {
		return out
	}

	scale := volume * math.MaxInt16 / peak
	for i, v := range pcm {
		out[i] = int16((v - mean) * scale)
	}
	return out
}
