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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("chip8.speed::20")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "chip8.speed::20")

	// surrounding space is removed
	prefs.PushCommandLineStack("   chip8.speed:: 20 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "chip8.speed::20")

	// unused values are returned sorted by key
	prefs.PushCommandLineStack("chip8.speed::20; chip8.quirks.indexoverflow::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "chip8.quirks.indexoverflow::false; chip8.speed::20")

	// malformed entries are ignored
	prefs.PushCommandLineStack("chip8.speed")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("chip8.speed;chip8.randseed::7")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "chip8.randseed::7")

	// values are consumed when they are retrieved
	prefs.PushCommandLineStack("chip8.speed::20;chip8.randseed::7")
	ok, v := prefs.GetCommandLinePref("chip8.speed")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "20")
	ok, _ = prefs.GetCommandLinePref("chip8.speed")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "chip8.randseed::7")
}

func TestCommandLineStackGroups(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("a::1")
	prefs.PushCommandLineStack("b::2")

	// only the most recent group is consulted
	ok, _ := prefs.GetCommandLinePref("a")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "b::2")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "a::1")
}
