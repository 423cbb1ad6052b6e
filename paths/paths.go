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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// the base path for all resources. should only be used by getBasePath().
const baseResourcePath = ".gopher8"

// ResourcePath returns the path to a resource file, prepended with the base
// resource path. The directory containing the file is created if necessary.
//
// Both arguments can be empty.
func ResourcePath(path string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	dir := filepath.Join(base, path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(dir, file), nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, baseResourcePath[1:]), nil
}
