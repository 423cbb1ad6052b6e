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
	"github.com/veandco/go-sdl2/sdl"
)

// texturePresenter draws the pixels using the SDL renderer. the texture is the
// same size as the pixel data and is stretched to fit the window.
type texturePresenter struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int
	height int
}

func newTexturePresenter(window *sdl.Window) (*texturePresenter, error) {
	pres := &texturePresenter{}

	var err error
	pres.renderer, err = sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, err
	}

	return pres, nil
}

// Present implements the Presenter interface.
func (pres *texturePresenter) Present(pixels []uint8, width int, height int) error {
	if pres.texture == nil || pres.width != width || pres.height != height {
		if pres.texture != nil {
			_ = pres.texture.Destroy()
		}

		var err error
		pres.texture, err = pres.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
			int(sdl.TEXTUREACCESS_STREAMING),
			int32(width), int32(height))
		if err != nil {
			pres.texture = nil
			return err
		}
		pres.width = width
		pres.height = height
	}

	data, pitch, err := pres.texture.Lock(nil)
	if err != nil {
		return err
	}

	// pitch of the texture may be wider than the row of pixels
	rowLen := width * 4
	for y := 0; y < height; y++ {
		copy(data[y*pitch:y*pitch+rowLen], pixels[y*rowLen:(y+1)*rowLen])
	}
	pres.texture.Unlock()

	err = pres.renderer.Copy(pres.texture, nil, nil)
	if err != nil {
		return err
	}
	pres.renderer.Present()

	return nil
}

// Destroy implements the Presenter interface.
func (pres *texturePresenter) Destroy() {
	if pres.texture != nil {
		_ = pres.texture.Destroy()
	}
	_ = pres.renderer.Destroy()
}
