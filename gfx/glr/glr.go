// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glr implements the graphics context on top of OpenGL 4.1 core.
package glr

import (
	"fmt"
	"strings"

	"github.com/devblok/prism/gfx"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// floatSize is the size of a float32 in bytes.
const floatSize = 4

// Init loads the OpenGL function pointers. It must be called
// once a context is current on the calling thread.
func Init() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init(): %s", err.Error())
	}
	return &Context{}, nil
}

// Context issues commands to the OpenGL context current on the calling thread.
type Context struct{}

var _ gfx.Context = (*Context)(nil)

// Info implements gfx.Context.
func (c *Context) Info() gfx.Info {
	return gfx.Info{
		Vendor:                 gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:               gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:                gl.GoStr(gl.GetString(gl.VERSION)),
		ShadingLanguageVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// CreateShader implements gfx.Context.
func (c *Context) CreateShader(stage gfx.ShaderStage) (gfx.Handle, error) {
	var shaderType uint32
	switch stage {
	case gfx.VertexStage:
		shaderType = gl.VERTEX_SHADER
	case gfx.FragmentStage:
		shaderType = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("unsupported shader stage %d", stage)
	}
	shader := gl.CreateShader(shaderType)
	if shader == 0 {
		return 0, &gfx.ResourceCreationError{Resource: stage.String() + " shader"}
	}
	return gfx.Handle(shader), nil
}

// ShaderSource implements gfx.Context.
func (c *Context) ShaderSource(shader gfx.Handle, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(shader), 1, csources, nil)
	free()
}

// CompileShader implements gfx.Context.
func (c *Context) CompileShader(shader gfx.Handle) {
	gl.CompileShader(uint32(shader))
}

// ShaderCompileStatus implements gfx.Context.
func (c *Context) ShaderCompileStatus(shader gfx.Handle) bool {
	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

// ShaderInfoLog implements gfx.Context.
func (c *Context) ShaderInfoLog(shader gfx.Handle) string {
	var logLength int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(shader), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// DeleteShader implements gfx.Context.
func (c *Context) DeleteShader(shader gfx.Handle) {
	gl.DeleteShader(uint32(shader))
}

// CreateProgram implements gfx.Context.
func (c *Context) CreateProgram() (gfx.Handle, error) {
	program := gl.CreateProgram()
	if program == 0 {
		return 0, &gfx.ResourceCreationError{Resource: "program"}
	}
	return gfx.Handle(program), nil
}

// AttachShader implements gfx.Context.
func (c *Context) AttachShader(program, shader gfx.Handle) {
	gl.AttachShader(uint32(program), uint32(shader))
}

// LinkProgram implements gfx.Context.
func (c *Context) LinkProgram(program gfx.Handle) {
	gl.LinkProgram(uint32(program))
}

// ProgramLinkStatus implements gfx.Context.
func (c *Context) ProgramLinkStatus(program gfx.Handle) bool {
	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

// ProgramInfoLog implements gfx.Context.
func (c *Context) ProgramInfoLog(program gfx.Handle) string {
	var logLength int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(program), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// DeleteProgram implements gfx.Context.
func (c *Context) DeleteProgram(program gfx.Handle) {
	gl.DeleteProgram(uint32(program))
}

// UniformLocation implements gfx.Context.
func (c *Context) UniformLocation(program gfx.Handle, name string) (int32, bool) {
	location := gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
	return location, location >= 0
}

// UseProgram implements gfx.Context.
func (c *Context) UseProgram(program gfx.Handle) {
	gl.UseProgram(uint32(program))
}

// CreateBuffer implements gfx.Context.
func (c *Context) CreateBuffer() (gfx.Handle, error) {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	if buffer == 0 {
		return 0, &gfx.ResourceCreationError{Resource: "buffer"}
	}
	return gfx.Handle(buffer), nil
}

// BindArrayBuffer implements gfx.Context.
func (c *Context) BindArrayBuffer(buffer gfx.Handle) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
}

// BufferData implements gfx.Context.
// glBufferData copies synchronously, so data may be reused once it returns.
func (c *Context) BufferData(data []float32, usage gfx.BufferUsage) {
	hint := uint32(gl.STATIC_DRAW)
	if usage == gfx.DynamicDraw {
		hint = gl.DYNAMIC_DRAW
	}
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, hint)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), hint)
}

// DeleteBuffer implements gfx.Context.
func (c *Context) DeleteBuffer(buffer gfx.Handle) {
	b := uint32(buffer)
	gl.DeleteBuffers(1, &b)
}

// VertexAttribPointer implements gfx.Context.
func (c *Context) VertexAttribPointer(slot uint32, size int32) {
	gl.VertexAttribPointer(slot, size, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

// EnableVertexAttribArray implements gfx.Context.
func (c *Context) EnableVertexAttribArray(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

// CreateVertexArray implements gfx.Context.
func (c *Context) CreateVertexArray() (gfx.Handle, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, &gfx.ResourceCreationError{Resource: "vertex array"}
	}
	return gfx.Handle(vao), nil
}

// BindVertexArray implements gfx.Context.
func (c *Context) BindVertexArray(vao gfx.Handle) {
	gl.BindVertexArray(uint32(vao))
}

// DeleteVertexArray implements gfx.Context.
func (c *Context) DeleteVertexArray(vao gfx.Handle) {
	v := uint32(vao)
	gl.DeleteVertexArrays(1, &v)
}

// ClearColor implements gfx.Context.
func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements gfx.Context.
func (c *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawTriangles implements gfx.Context.
func (c *Context) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}
