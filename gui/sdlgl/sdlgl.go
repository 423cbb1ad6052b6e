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


package sdlgl

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// SetAttributes requests an OpenGL 3.2 core context. It must be called before
// the window is created.
func SetAttributes() error {
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attrs {
		err := sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			return curated.Errorf("sdlgl: %v", err)
		}
	}
	return nil
}

// Presenter draws RGBA pixel data into an OpenGL window.
type Presenter struct {
	window  *sdl.Window
	context sdl.GLContext

	shader  shader
	vao     uint32
	vbo     uint32
	texture uint32

	// size of the texture. the texture is recreated when the size of the
	// pixel data changes
	width  int
	height int

	clearColor [3]float32
}

// vertices of the quad covering the whole viewport. x, y, u, v. the texture
// is flipped because the first row of pixel data is the top of the screen
var quad = []float32{
	-1.0, -1.0, 0.0, 1.0,
	1.0, -1.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0,
	1.0, 1.0, 1.0, 0.0,
}

// NewPresenter is the preferred method of initialisation for the Presenter
// type. The clear colour is used for any area of the window not covered by
// the display.
//
// MUST ONLY be called from the #mainthread.
func NewPresenter(window *sdl.Window, clear [3]uint8) (*Presenter, error) {
	pres := &Presenter{
		window: window,
		clearColor: [3]float32{
			float32(clear[0]) / 255.0,
			float32(clear[1]) / 255.0,
			float32(clear[2]) / 255.0,
		},
	}

	var err error

	pres.context, err = window.GLCreateContext()
	if err != nil {
		return nil, curated.Errorf("sdlgl: %v", err)
	}
	err = window.GLMakeCurrent(pres.context)
	if err != nil {
		sdl.GLDeleteContext(pres.context)
		return nil, curated.Errorf("sdlgl: %v", err)
	}

	err = gl.Init()
	if err != nil {
		sdl.GLDeleteContext(pres.context)
		return nil, curated.Errorf("sdlgl: %v", err)
	}
	logger.Logf(logger.Allow, "sdlgl", "using GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	err = pres.shader.create(vertexShader, fragmentShader)
	if err != nil {
		sdl.GLDeleteContext(pres.context)
		return nil, err
	}

	gl.GenVertexArrays(1, &pres.vao)
	gl.BindVertexArray(pres.vao)

	gl.GenBuffers(1, &pres.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, pres.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	stride := int32(4 * 4)
	gl.EnableVertexAttribArray(uint32(pres.shader.position))
	gl.VertexAttribPointerWithOffset(uint32(pres.shader.position), 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(uint32(pres.shader.uv))
	gl.VertexAttribPointerWithOffset(uint32(pres.shader.uv), 2, gl.FLOAT, false, stride, 2*4)

	gl.GenTextures(1, &pres.texture)
	gl.BindTexture(gl.TEXTURE_2D, pres.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return pres, nil
}

// Present copies the pixels to the texture and draws the quad.
//
// MUST ONLY be called from the #mainthread.
func (pres *Presenter) Present(pixels []uint8, width int, height int) error {
	if len(pixels) < width*height*4 {
		return curated.Errorf("sdlgl: %v", "not enough pixel data for texture")
	}

	gl.BindTexture(gl.TEXTURE_2D, pres.texture)
	if pres.width != width || pres.height != height {
		pres.width = width
		pres.height = height
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(pixels))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(width), int32(height),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(pixels))
	}

	// the drawable size can differ from the window size on high DPI displays
	w, h := pres.window.GLGetDrawableSize()
	gl.Viewport(0, 0, w, h)
	gl.ClearColor(pres.clearColor[0], pres.clearColor[1], pres.clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	pres.shader.use(pres.texture)
	gl.BindVertexArray(pres.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	pres.window.GLSwap()

	return nil
}

// Destroy releases all GL resources and the GL context.
//
// MUST ONLY be called from the #mainthread.
func (pres *Presenter) Destroy() {
	gl.DeleteTextures(1, &pres.texture)
	gl.DeleteBuffers(1, &pres.vbo)
	gl.DeleteVertexArrays(1, &pres.vao)
	pres.shader.destroy()
	sdl.GLDeleteContext(pres.context)
}
