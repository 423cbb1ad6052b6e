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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Arguments are given to the Modes type with NewArgs(), and parsed with
// Parse(). Non-flag arguments are then available with RemainingArgs() or
// GetArg().
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "TERM", "RUN")
//	p, err := md.Parse()
//
// If the first non-flag argument names a sub-mode then that mode is selected
// and can be retrieved with Mode(). Otherwise the first sub-mode in the list
// is the default. Sub-mode comparisons are case insensitive.
//
// After a mode has been selected, NewMode() begins a new layer of flags for
// that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 600, "number of frames to run")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be layered as deeply as required. Path() returns the modes that
// have been selected so far, separated by a slash.
package modalflag
