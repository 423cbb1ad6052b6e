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

// Package preferences holds the preferences that change how the interpreter
// executes a program. The interpretation of some instructions varies between
// implementations of the original machine and these are presented as
// quirks that can be switched on and off.
//
// Preferences are saved with the prefs package. Performance critical code
// should read the Live values, which are kept up to date by hooks on the
// prefs values.
package preferences
