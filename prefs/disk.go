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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while gopher8 is running ***"

// separator between key and value on each line of the preferences file.
const separator = " :: "

// Sentinel error patterns.
const (
	NoPrefsFile = "prefs: no preferences file (%s)"
	DiskError   = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// value of each entry when it was added. used by Reset()
	defaults map[string]string

	// values taken from the command line stack when an entry is added. these
	// take priority over values loaded from disk
	cmdline map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "empty path")
	}
	return &Disk{
		path:     path,
		entries:  make(map[string]pref),
		defaults: make(map[string]string),
		cmdline:  make(map[string]Value),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to Disk instance. The current value of the preference
// is taken to be the default value. If the key is present in the current
// command line group then that value is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, separator) {
		return curated.Errorf(DiskError, fmt.Sprintf("invalid key (%s)", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DiskError, fmt.Sprintf("key already added (%s)", key))
	}

	dsk.entries[key] = p
	dsk.defaults[key] = p.String()

	if ok, v := GetCommandLinePref(key); ok {
		dsk.cmdline[key] = v
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	return nil
}

// read the preferences file into a map of key/value strings.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if line == WarningBoilerPlate {
				continue
			}
		}

		k, v, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data, nil
}

// Load preference values from disk. If saveOnFail is true and the
// preferences file does not exist then the current values are saved to
// create it. The NoPrefsFile error is returned in either case.
func (dsk *Disk) Load(saveOnFail bool) error {
	data, err := dsk.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if saveOnFail {
				if err := dsk.Save(); err != nil {
					return err
				}
			}
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf(DiskError, err)
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	// command line values win over values on disk
	for k, v := range dsk.cmdline {
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	return nil
}

// Save current preference values to disk. Keys in the file that have not been
// added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(DiskError, err)
		}
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, data[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Reset all preferences to the value they had when they were added.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Set(dsk.defaults[k]); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}
