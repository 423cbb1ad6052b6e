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

package beep_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/beep"
	"github.com/jetsetilly/gopher8/test"
)

func TestSquareWave(t *testing.T) {
	_, err := beep.NewSquareWave(1, beep.DefaultVolume)
	test.ExpectFailure(t, err)
	_, err = beep.NewSquareWave(30000, beep.DefaultVolume)
	test.ExpectFailure(t, err)

	g, err := beep.NewSquareWave(441, 1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Len(), 100)

	buf := make([]int16, 150)
	for i := range buf {
		buf[i] = 1
	}

	// silence when the tone is off
	g.Fill(buf)
	for _, s := range buf {
		test.DemandEquality(t, s, int16(0))
	}

	test.ExpectSuccess(t, g.SetTone(true))
	test.ExpectEquality(t, g.Playing(), true)
	g.Fill(buf)
	test.ExpectEquality(t, buf[0], int16(math.MaxInt16))
	test.ExpectEquality(t, buf[49], int16(math.MaxInt16))
	test.ExpectEquality(t, buf[50], int16(-math.MaxInt16))
	test.ExpectEquality(t, buf[99], int16(-math.MaxInt16))
	test.ExpectEquality(t, buf[100], int16(math.MaxInt16))

	// the tone does not restart if it is already on
	g.SetTone(true)
	g.Fill(buf[:1])
	test.ExpectEquality(t, buf[0], int16(-math.MaxInt16))

	// but does restart after being switched off
	g.SetTone(false)
	g.SetTone(true)
	g.Fill(buf[:1])
	test.ExpectEquality(t, buf[0], int16(math.MaxInt16))
}

func writeWAV(t *testing.T, rate int, data []int) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "beep.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	return fn
}

func TestLoadSample(t *testing.T) {
	data := make([]int, 100)
	for i := range data {
		if i%10 < 5 {
			data[i] = 1000
		} else {
			data[i] = -1000
		}
	}

	// half the output sample rate so the loaded sample will be twice as long
	fn := writeWAV(t, beep.SampleRate/2, data)

	g, err := beep.LoadSample(fn, 0.5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Len(), 200)

	buf := make([]int16, 20)
	g.SetTone(true)
	g.Fill(buf)

	// each input sample appears twice and has been scaled to the volume
	volume := 0.5
	peak := int(volume * math.MaxInt16)
	test.ExpectApproximate(t, int(buf[0]), peak, 0.01)
	test.ExpectEquality(t, buf[0], buf[1])
	test.ExpectApproximate(t, int(buf[10]), -peak, 0.01)
}

func TestLoadSampleErrors(t *testing.T) {
	_, err := beep.LoadSample(filepath.Join(t.TempDir(), "missing.wav"), beep.DefaultVolume)
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "beep.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00}, 0o600))
	_, err = beep.LoadSample(fn, beep.DefaultVolume)
	test.ExpectFailure(t, err)

	fn = filepath.Join(t.TempDir(), "beep.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a wav file"), 0o600))
	_, err = beep.LoadSample(fn, beep.DefaultVolume)
	test.ExpectFailure(t, err)
}

func TestClone(t *testing.T) {
	g, err := beep.NewSquareWave(441, 1.0)
	test.DemandSuccess(t, err)
	g.SetTone(true)

	c := g.Clone()
	test.ExpectEquality(t, c.Len(), g.Len())
	test.ExpectEquality(t, c.Playing(), false)

	// the clone plays independently of the original
	buf := make([]int16, 60)
	g.Fill(buf)
	c.SetTone(true)
	c.Fill(buf[:1])
	test.ExpectEquality(t, buf[0], int16(math.MaxInt16))
}
