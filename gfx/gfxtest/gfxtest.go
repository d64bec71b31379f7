// Package gfxtest provides an in-memory gfx.Context that records the
// commands issued to it, for testing code that renders without a GPU.
package gfxtest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devblok/prism/gfx"
)

// Resource kinds accepted by Context.Exhaust.
const (
	ShaderResource      = "shader"
	ProgramResource     = "program"
	BufferResource      = "buffer"
	VertexArrayResource = "vertex array"
)

// Shader is a recorded shader object.
type Shader struct {
	Stage    gfx.ShaderStage
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
}

// Program is a recorded program object.
type Program struct {
	Attached []gfx.Handle
	Linked   bool
	Log      string
	Uniforms map[string]int32
	Deleted  bool
}

// Attrib is the layout recorded for one vertex attribute slot.
type Attrib struct {
	Buffer  gfx.Handle
	Size    int32
	Enabled bool
}

// VertexArray is a recorded vertex array object.
type VertexArray struct {
	Attribs map[uint32]Attrib
	Deleted bool
}

// Buffer is a recorded buffer object.
type Buffer struct {
	Data    []float32
	Usage   gfx.BufferUsage
	Uploads int
	Deleted bool
}

// Draw is a recorded draw call.
type Draw struct {
	Program     gfx.Handle
	VertexArray gfx.Handle
	First       int32
	Count       int32
}

// Context is a fake gfx.Context. Compilation fails for sources containing
// an #error directive, linking fails when LinkLog is set, and uniforms are
// discovered from "uniform <type> <name>;" declarations in attached sources.
type Context struct {
	// LinkLog, when not empty, makes every link fail with this log
	LinkLog string

	Shaders      map[gfx.Handle]*Shader
	Programs     map[gfx.Handle]*Program
	Buffers      map[gfx.Handle]*Buffer
	VertexArrays map[gfx.Handle]*VertexArray

	ActiveProgram    gfx.Handle
	BoundVertexArray gfx.Handle
	BoundArrayBuffer gfx.Handle
	ClearRGBA        [4]float32
	Clears           int
	Draws            []Draw
	Calls            []string
	exhausted        map[string]bool
	next             gfx.Handle
	defaultAttribs   map[uint32]Attrib
}

var _ gfx.Context = (*Context)(nil)

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*(\[[^\]]*\])?\s*;`)

// New returns an empty fake context.
func New() *Context {
	return &Context{
		Shaders:        make(map[gfx.Handle]*Shader),
		Programs:       make(map[gfx.Handle]*Program),
		Buffers:        make(map[gfx.Handle]*Buffer),
		VertexArrays:   make(map[gfx.Handle]*VertexArray),
		exhausted:      make(map[string]bool),
		defaultAttribs: make(map[uint32]Attrib),
	}
}

// Exhaust makes every further allocation of the given resource kind fail.
func (c *Context) Exhaust(kind string) {
	c.exhausted[kind] = true
}

// Live counts the objects that were created and not yet deleted.
func (c *Context) Live() int {
	n := 0
	for _, s := range c.Shaders {
		if !s.Deleted {
			n++
		}
	}
	for _, p := range c.Programs {
		if !p.Deleted {
			n++
		}
	}
	for _, b := range c.Buffers {
		if !b.Deleted {
			n++
		}
	}
	for _, v := range c.VertexArrays {
		if !v.Deleted {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls, clears and draws, keeping objects.
func (c *Context) Reset() {
	c.Calls = nil
	c.Draws = nil
	c.Clears = 0
}

func (c *Context) record(format string, args ...interface{}) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

func (c *Context) alloc(kind string) (gfx.Handle, error) {
	if c.exhausted[kind] {
		return 0, &gfx.ResourceCreationError{Resource: kind}
	}
	c.next++
	return c.next, nil
}

// Info implements gfx.Context.
func (c *Context) Info() gfx.Info {
	return gfx.Info{
		Vendor:                 "gfxtest",
		Renderer:               "recording context",
		Version:                "4.1",
		ShadingLanguageVersion: "4.10",
	}
}

// CreateShader implements gfx.Context.
func (c *Context) CreateShader(stage gfx.ShaderStage) (gfx.Handle, error) {
	h, err := c.alloc(ShaderResource)
	if err != nil {
		return 0, err
	}
	c.Shaders[h] = &Shader{Stage: stage}
	c.record("CreateShader(%s) = %d", stage, h)
	return h, nil
}

// ShaderSource implements gfx.Context.
func (c *Context) ShaderSource(shader gfx.Handle, source string) {
	c.record("ShaderSource(%d)", shader)
	if s, ok := c.Shaders[shader]; ok {
		s.Source = source
	}
}

// CompileShader implements gfx.Context.
func (c *Context) CompileShader(shader gfx.Handle) {
	c.record("CompileShader(%d)", shader)
	s, ok := c.Shaders[shader]
	if !ok {
		return
	}
	if idx := strings.Index(s.Source, "#error"); idx >= 0 {
		s.Compiled = false
		s.Log = "ERROR: 0:1: '#error' : " + strings.TrimSpace(strings.SplitN(s.Source[idx+len("#error"):], "\n", 2)[0])
		return
	}
	s.Compiled = true
	s.Log = ""
}

// ShaderCompileStatus implements gfx.Context.
func (c *Context) ShaderCompileStatus(shader gfx.Handle) bool {
	s, ok := c.Shaders[shader]
	return ok && s.Compiled
}

// ShaderInfoLog implements gfx.Context.
func (c *Context) ShaderInfoLog(shader gfx.Handle) string {
	if s, ok := c.Shaders[shader]; ok {
		return s.Log
	}
	return ""
}

// DeleteShader implements gfx.Context.
func (c *Context) DeleteShader(shader gfx.Handle) {
	c.record("DeleteShader(%d)", shader)
	if s, ok := c.Shaders[shader]; ok {
		s.Deleted = true
	}
}

// CreateProgram implements gfx.Context.
func (c *Context) CreateProgram() (gfx.Handle, error) {
	h, err := c.alloc(ProgramResource)
	if err != nil {
		return 0, err
	}
	c.Programs[h] = &Program{}
	c.record("CreateProgram() = %d", h)
	return h, nil
}

// AttachShader implements gfx.Context.
func (c *Context) AttachShader(program, shader gfx.Handle) {
	c.record("AttachShader(%d, %d)", program, shader)
	if p, ok := c.Programs[program]; ok {
		p.Attached = append(p.Attached, shader)
	}
}

// LinkProgram implements gfx.Context.
func (c *Context) LinkProgram(program gfx.Handle) {
	c.record("LinkProgram(%d)", program)
	p, ok := c.Programs[program]
	if !ok {
		return
	}
	if c.LinkLog != "" {
		p.Linked = false
		p.Log = c.LinkLog
		return
	}
	p.Uniforms = make(map[string]int32)
	for _, h := range p.Attached {
		s, ok := c.Shaders[h]
		if !ok || !s.Compiled {
			p.Linked = false
			p.Log = fmt.Sprintf("shader %d is not compiled", h)
			return
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(s.Source, -1) {
			if _, seen := p.Uniforms[m[1]]; !seen {
				p.Uniforms[m[1]] = int32(len(p.Uniforms))
			}
		}
	}
	p.Linked = true
	p.Log = ""
}

// ProgramLinkStatus implements gfx.Context.
func (c *Context) ProgramLinkStatus(program gfx.Handle) bool {
	p, ok := c.Programs[program]
	return ok && p.Linked
}

// ProgramInfoLog implements gfx.Context.
func (c *Context) ProgramInfoLog(program gfx.Handle) string {
	if p, ok := c.Programs[program]; ok {
		return p.Log
	}
	return ""
}

// DeleteProgram implements gfx.Context.
func (c *Context) DeleteProgram(program gfx.Handle) {
	c.record("DeleteProgram(%d)", program)
	if p, ok := c.Programs[program]; ok {
		p.Deleted = true
	}
}

// UniformLocation implements gfx.Context.
func (c *Context) UniformLocation(program gfx.Handle, name string) (int32, bool) {
	p, ok := c.Programs[program]
	if !ok || !p.Linked {
		return -1, false
	}
	loc, ok := p.Uniforms[name]
	if !ok {
		return -1, false
	}
	return loc, true
}

// UseProgram implements gfx.Context.
func (c *Context) UseProgram(program gfx.Handle) {
	c.record("UseProgram(%d)", program)
	c.ActiveProgram = program
}

// CreateBuffer implements gfx.Context.
func (c *Context) CreateBuffer() (gfx.Handle, error) {
	h, err := c.alloc(BufferResource)
	if err != nil {
		return 0, err
	}
	c.Buffers[h] = &Buffer{}
	c.record("CreateBuffer() = %d", h)
	return h, nil
}

// BindArrayBuffer implements gfx.Context.
func (c *Context) BindArrayBuffer(buffer gfx.Handle) {
	c.record("BindArrayBuffer(%d)", buffer)
	c.BoundArrayBuffer = buffer
}

// BufferData implements gfx.Context.
func (c *Context) BufferData(data []float32, usage gfx.BufferUsage) {
	c.record("BufferData(%d, %d floats)", c.BoundArrayBuffer, len(data))
	b, ok := c.Buffers[c.BoundArrayBuffer]
	if !ok {
		return
	}
	b.Data = append([]float32(nil), data...)
	b.Usage = usage
	b.Uploads++
}

// DeleteBuffer implements gfx.Context.
func (c *Context) DeleteBuffer(buffer gfx.Handle) {
	c.record("DeleteBuffer(%d)", buffer)
	if b, ok := c.Buffers[buffer]; ok {
		b.Deleted = true
	}
}

func (c *Context) attribs() map[uint32]Attrib {
	if v, ok := c.VertexArrays[c.BoundVertexArray]; ok {
		return v.Attribs
	}
	return c.defaultAttribs
}

// VertexAttribPointer implements gfx.Context.
func (c *Context) VertexAttribPointer(slot uint32, size int32) {
	c.record("VertexAttribPointer(%d, %d)", slot, size)
	attribs := c.attribs()
	a := attribs[slot]
	a.Buffer = c.BoundArrayBuffer
	a.Size = size
	attribs[slot] = a
}

// EnableVertexAttribArray implements gfx.Context.
func (c *Context) EnableVertexAttribArray(slot uint32) {
	c.record("EnableVertexAttribArray(%d)", slot)
	attribs := c.attribs()
	a := attribs[slot]
	a.Enabled = true
	attribs[slot] = a
}

// CreateVertexArray implements gfx.Context.
func (c *Context) CreateVertexArray() (gfx.Handle, error) {
	h, err := c.alloc(VertexArrayResource)
	if err != nil {
		return 0, err
	}
	c.VertexArrays[h] = &VertexArray{Attribs: make(map[uint32]Attrib)}
	c.record("CreateVertexArray() = %d", h)
	return h, nil
}

// BindVertexArray implements gfx.Context.
func (c *Context) BindVertexArray(vao gfx.Handle) {
	c.record("BindVertexArray(%d)", vao)
	c.BoundVertexArray = vao
}

// DeleteVertexArray implements gfx.Context.
func (c *Context) DeleteVertexArray(vao gfx.Handle) {
	c.record("DeleteVertexArray(%d)", vao)
	if v, ok := c.VertexArrays[vao]; ok {
		v.Deleted = true
	}
}

// ClearColor implements gfx.Context.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
	c.ClearRGBA = [4]float32{r, g, b, a}
}

// Clear implements gfx.Context.
func (c *Context) Clear() {
	c.record("Clear()")
	c.Clears++
}

// DrawTriangles implements gfx.Context.
func (c *Context) DrawTriangles(first, count int32) {
	c.record("DrawTriangles(%d, %d)", first, count)
	c.Draws = append(c.Draws, Draw{
		Program:     c.ActiveProgram,
		VertexArray: c.BoundVertexArray,
		First:       first,
		Count:       count,
	})
}
