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


//go:build !unix

package terminal

import (
	"io"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// Terminal is not available on this platform.
type Terminal struct{}

// NewTerminal always returns an error on this platform.
func NewTerminal(_ *os.File, _ *os.File) (*Terminal, error) {
	return nil, curated.Errorf("terminal: %v", "not supported on this platform")
}

// Destroy implements the GuiCreator interface.
func (trm *Terminal) Destroy(_ io.Writer) {
}

// Service implements the GuiCreator interface.
func (trm *Terminal) Service() {
}

// SetFeature implements the gui.GUI interface.
func (trm *Terminal) SetFeature(request gui.FeatureReq, _ ...gui.FeatureReqData) error {
	return curated.Errorf(gui.UnsupportedGuiFeature, request)
}

// Render implements the display.Renderer interface.
func (trm *Terminal) Render(_ *display.Pixels) error {
	return nil
}
