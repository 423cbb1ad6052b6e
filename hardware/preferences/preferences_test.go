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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.IndexOverflow.Bool(), true)
	test.ExpectEquality(t, p.TimersPerInstruction.Bool(), false)
	test.ExpectEquality(t, p.WrapOrigin.Bool(), false)
	test.ExpectEquality(t, p.Speed.Int(), preferences.DefaultSpeed)
	test.ExpectEquality(t, p.RandSeed.Int(), 0)

	test.ExpectEquality(t, p.Live.IndexOverflow.Load(), true)
	test.ExpectEquality(t, p.Live.Speed.Load(), int64(preferences.DefaultSpeed))

	// the preferences file is created if it does not exist
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestLiveValues(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.WrapOrigin.Set(true))
	test.ExpectEquality(t, p.Live.WrapOrigin.Load(), true)

	test.ExpectSuccess(t, p.Speed.Set(20))
	test.ExpectEquality(t, p.Live.Speed.Load(), int64(20))

	// out of range speed values are rejected and the existing value is kept
	test.ExpectFailure(t, p.Speed.Set(0))
	test.ExpectFailure(t, p.Speed.Set(preferences.MaxSpeed+1))
	test.ExpectEquality(t, p.Speed.Int(), 20)
	test.ExpectEquality(t, p.Live.Speed.Load(), int64(20))

	test.ExpectSuccess(t, p.Reset())
	test.ExpectEquality(t, p.Live.WrapOrigin.Load(), false)
	test.ExpectEquality(t, p.Speed.Int(), preferences.DefaultSpeed)
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.IndexOverflow.Set(false))
	test.ExpectSuccess(t, p.Speed.Set(30))
	test.DemandSuccess(t, p.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(data), "chip8.speed :: 30\n"), true)
	test.ExpectEquality(t, strings.Contains(string(data), "chip8.quirks.indexoverflow :: false\n"), true)

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.IndexOverflow.Bool(), false)
	test.ExpectEquality(t, q.Live.IndexOverflow.Load(), false)
	test.ExpectEquality(t, q.Speed.Int(), 30)
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("chip8.quirks.wraporigin::true; chip8.speed::50")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.WrapOrigin.Bool(), true)
	test.ExpectEquality(t, p.Speed.Int(), 50)
}
