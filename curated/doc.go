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

// Package curated wraps errors with a pattern string that can later be used
// to identify the error. Curated errors are created with Errorf(), which has
// the same signature as fmt.Errorf() except that the first argument is called
// the pattern.
//
//	e := curated.Errorf("romloader: %v", err)
//
//	if curated.Is(e, "romloader: %v") {
//		...
//	}
//
// Has() searches the values of the error for a curated error with the pattern
// and IsAny() reports whether an error is curated at all.
//
// Messages are normalised when printed. Adjacent duplicate parts of the
// message chain are removed so that wrapping a "sdl: " error with another
// "sdl: " prefix prints once:
//
//	sdl: sdl: could not open audio device
//
// becomes
//
//	sdl: could not open audio device
//
// Parts are the sub-strings separated by ": ".
//
// Curated errors implement Unwrap() so that sentinel errors wrapped by a
// curated error can still be found with errors.Is() from the standard
// library.
package curated
