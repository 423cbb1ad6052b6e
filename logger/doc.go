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

// Package logger is the central log for the application. Entries are
// grouped by a tag and adjacent identical entries are folded into one entry
// with a repeat count.
//
// Whether a log entry is created is decided by the Permission argument. The
// Allow value can be used when an entry should always be made.
//
//	logger.Logf(logger.Allow, "romloader", "loaded %d bytes", n)
//
// The central log is limited to a maximum number of entries. Older entries
// are forgotten as new entries are added.
package logger
