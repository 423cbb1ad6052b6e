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
	"strings"

	"github.com/jetsetilly/gopher8/curated"

	"github.com/go-gl/gl/v3.2-core/gl"
)

const vertexShader = `#version 150 core

in vec2 Position;
in vec2 UV;
out vec2 Frag_UV;

void main()
{
	Frag_UV = UV;
	gl_Position = vec4(Position, 0.0, 1.0);
}
`

const fragmentShader = `#version 150 core

uniform sampler2D Texture;
in vec2 Frag_UV;
out vec4 Out_Color;

void main()
{
	Out_Color = texture(Texture, Frag_UV);
}
`

type shader struct {
	handle uint32

	// vertex
	position int32
	uv       int32

	// fragment
	texture int32 // uniform
}

func (sh *shader) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

func (sh *shader) use(texture uint32) {
	gl.UseProgram(sh.handle)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.Uniform1i(sh.texture, 0)
}

// compile and link shader program.
func (sh *shader) create(vertProgram string, fragProgram string) error {
	sh.destroy()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	// the individual shaders are not needed once the program has linked
	defer gl.DeleteShader(fragHandle)
	defer gl.DeleteShader(vertHandle)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := getShaderCompileError(vertHandle); log != "" {
		return curated.Errorf("sdlgl: vertex shader: %v", log)
	}

	gl.CompileShader(fragHandle)
	if log := getShaderCompileError(fragHandle); log != "" {
		return curated.Errorf("sdlgl: fragment shader: %v", log)
	}

	sh.handle = gl.CreateProgram()
	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)

	var linked int32
	gl.GetProgramiv(sh.handle, gl.LINK_STATUS, &linked)
	if linked == 0 {
		sh.destroy()
		return curated.Errorf("sdlgl: %v", "shader program did not link")
	}

	// get references to shader attributes and uniforms variables
	sh.position = gl.GetAttribLocation(sh.handle, gl.Str("Position"+"\x00"))
	sh.uv = gl.GetAttribLocation(sh.handle, gl.Str("UV"+"\x00"))
	sh.texture = gl.GetUniformLocation(sh.handle, gl.Str("Texture"+"\x00"))

	return nil
}

// getShaderCompileError returns the most recent error generated
// by the shader compiler.
func getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the length includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown error"
	}
	return ""
}
