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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// groups of command line preferences. the most recent group is at the end of
// the slice.
var commandLineStack []map[string]Value

// PushCommandLineStack parses a preferences string and adds it as a new
// group. The string is of the form:
//
//	key::value; key::value
//
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		group[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack forgets the most recent group. Returns the unused
// preferences of the group as a prefs string.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%v", k, popped[k]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for key from the current group. The
// value is deleted when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}
