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


package sdlplay

import (
	"fmt"
	"io"
	"runtime"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlgl"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = version.ApplicationName

// DefaultScale is the size in screen pixels of a lo-res CHIP-8 pixel.
const DefaultScale = 10

// colours of lit and unlit pixels.
var (
	colorOn  = [3]uint8{0xff, 0xcc, 0x00}
	colorOff = [3]uint8{0x99, 0x66, 0x00}
)

// Presenter copies RGBA pixel data to the window. The width and height of the
// pixel data may change between calls.
type Presenter interface {
	Present(pixels []uint8, width int, height int) error
	Destroy()
}

// SdlPlay is a simple SDL implementation of the display.Renderer interface.
type SdlPlay struct {
	window *sdl.Window
	pres   Presenter

	// connects SDL with the emulation
	events chan userinput.Event

	// functions to be run on the main thread
	service    chan func() error
	serviceErr chan error

	scale int32

	// pixels are converted to RGBA in the calling goroutine. the buffer is
	// then handed over to the main thread
	rgba []uint8
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. If useGL
// is true the window contents are drawn with OpenGL instead of the SDL
// renderer.
//
// MUST ONLY be called from the #mainthread.
func NewSdlPlay(useGL bool) (*SdlPlay, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	scr := &SdlPlay{
		service:    make(chan func() error),
		serviceErr: make(chan error),
		scale:      DefaultScale,
	}

	err := sdl.InitSubSystem(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	flags := uint32(sdl.WINDOW_HIDDEN)
	if useGL {
		err = sdlgl.SetAttributes()
		if err != nil {
			sdl.QuitSubSystem(sdl.INIT_VIDEO)
			return nil, curated.Errorf("sdlplay: %v", err)
		}
		flags |= uint32(sdl.WINDOW_OPENGL)
	}

	// window is hidden until a ReqSetVisibility request
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.LoResWidth*scr.scale, display.LoResHeight*scr.scale,
		flags)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	if useGL {
		scr.pres, err = sdlgl.NewPresenter(scr.window, colorOff)
	} else {
		scr.pres, err = newTexturePresenter(scr.window)
	}
	if err != nil {
		scr.window.Destroy()
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.pres.Destroy()
	err := scr.window.Destroy()
	if err != nil && output != nil {
		output.Write([]byte(fmt.Sprintf("sdlplay: %v\n", err)))
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}

// Render implements the display.Renderer interface.
func (scr *SdlPlay) Render(px *display.Pixels) error {
	scr.rgba = px.RGBA(scr.rgba, colorOn, colorOff)
	pixels := scr.rgba
	width := px.Width
	height := px.Height

	scr.service <- func() error {
		return scr.pres.Present(pixels, width, height)
	}
	err := <-scr.serviceErr
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	return nil
}

func (scr *SdlPlay) setScale(scale int) error {
	if scale < 1 {
		return curated.Errorf("sdlplay: %v", fmt.Sprintf("scale must be at least 1: %d", scale))
	}
	scr.scale = int32(scale)
	scr.window.SetSize(display.LoResWidth*scr.scale, display.LoResHeight*scr.scale)
	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// sanity check that SdlPlay implements the required interfaces.
var _ gui.GUI = (*SdlPlay)(nil)
var _ display.Renderer = (*SdlPlay)(nil)
