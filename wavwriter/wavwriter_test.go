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


package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/beep"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/wavwriter"
)

func TestWavWriter(t *testing.T) {
	_, err := wavwriter.New("", nil)
	test.ExpectFailure(t, err)

	gen, err := beep.NewSquareWave(beep.DefaultFrequency, beep.DefaultVolume)
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "out.wav")
	aw, err := wavwriter.New(fn, gen)
	test.DemandSuccess(t, err)

	// one silent frame and two frames with the tone on
	test.ExpectSuccess(t, aw.EndFrame())
	test.ExpectSuccess(t, aw.SetTone(true))
	test.ExpectSuccess(t, aw.EndFrame())
	test.ExpectSuccess(t, aw.EndFrame())
	test.ExpectEquality(t, aw.Frames(), 3)

	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)
	test.ExpectEquality(t, int(dec.SampleRate), beep.SampleRate)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), beep.SamplesPerFrame*3)

	// the first frame is silent and the second frame starts the tone
	test.ExpectEquality(t, buf.Data[0], 0)
	test.ExpectInequality(t, buf.Data[beep.SamplesPerFrame], 0)
}

func TestWavWriterBadPath(t *testing.T) {
	gen, err := beep.NewSquareWave(beep.DefaultFrequency, beep.DefaultVolume)
	test.DemandSuccess(t, err)

	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "missing", "out.wav"), gen)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, aw.EndMixing())
}
