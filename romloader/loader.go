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

package romloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinel errors returned by Load().
var (
	ErrEmptyROM    = errors.New("empty ROM")
	ErrROMTooLarge = errors.New("ROM too large")
)

// FileExtensions is the list of file extensions that are commonly used for
// ROM files. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".SC8", ".XO8", ".ROM", ".BIN"}

// Loader is used to specify the ROM to attach to the interpreter.
type Loader struct {
	// filename of ROM to load. can be a http or https URL
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the filename of the ROM without the path or extension.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []uint8

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", fmt.Sprintf("http status (%s)", resp.Status))
		}

		// read one byte more than can fit in memory so that an oversized
		// ROM can be detected
		data, err = io.ReadAll(io.LimitReader(resp.Body, memory.MaxProgramSize+1))
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf("romloader: %v: %s", ErrEmptyROM, cl.Filename)
	}
	if len(data) > memory.MaxProgramSize {
		return curated.Errorf("romloader: %v: %s", ErrROMTooLarge, cl.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}

	cl.Hash = hash
	cl.Data = data

	logger.Logf(logger.Allow, "romloader", "%s (%d bytes) sha1 %s", cl.ShortName(), len(cl.Data), cl.Hash)

	return nil
}
