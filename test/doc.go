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

// Package test contains helper functions to remove common boilerplate from
// the test files of other packages.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and should be used when
// the value is needed by the rest of the test.
//
// Success and failure are decided by the type of the value being tested:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The nil case is not obvious but is needed because of how a nil error is
// passed through an interface{} argument.
//
// CompareWriter implements io.Writer and captures output so that it can be
// compared with an expected string.
package test
