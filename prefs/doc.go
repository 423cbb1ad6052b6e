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

// Package prefs facilitates the storage of preferential values in the
// application. Preferences are values of type Bool, Int, Float or String,
// each safe to read and write from different goroutines.
//
// Preferences can be associated with a Disk instance, which loads and saves
// the values to a file. The file contains one preference per line in the
// form:
//
//	key :: value
//
// Saving a Disk instance only replaces the keys it knows about. Other keys in
// the file are left untouched so that different parts of the application
// can share the same preferences file.
//
// Values from the command line can be pushed with PushCommandLineStack().
// When a preference is added to a Disk instance, a matching command line
// value takes priority over the value on disk. The command line value is
// consumed when it is used.
package prefs
