// Package gfx defines the graphics context boundary that renderers issue
// their commands through, along with the error kinds they report.
package gfx

// Handle names a GPU object. The zero Handle refers to no object,
// binding it clears the corresponding binding point.
type Handle uint32

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

// Supported shader stages
const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferUsage hints how often uploaded buffer data is expected to change.
type BufferUsage int

// Buffer usage hints
const (
	StaticDraw BufferUsage = iota
	DynamicDraw
)

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	Release()
}

// Info describes the driver behind a Context.
type Info struct {
	Vendor                 string
	Renderer               string
	Version                string
	ShadingLanguageVersion string
}

// Context is the set of GPU commands the renderer relies on.
// Implementations are not safe for concurrent use, every call
// must come from the thread that owns the underlying context.
type Context interface {
	// Info reports the driver identification strings
	Info() Info

	// CreateShader allocates a shader object for the given stage
	CreateShader(ShaderStage) (Handle, error)

	// ShaderSource replaces the source text of a shader object
	ShaderSource(shader Handle, source string)

	CompileShader(shader Handle)

	// ShaderCompileStatus reports whether the last compilation succeeded
	ShaderCompileStatus(shader Handle) bool

	// ShaderInfoLog returns the diagnostic log of the last compilation
	ShaderInfoLog(shader Handle) string

	DeleteShader(shader Handle)

	// CreateProgram allocates an empty program object
	CreateProgram() (Handle, error)

	AttachShader(program, shader Handle)

	LinkProgram(program Handle)

	// ProgramLinkStatus reports whether the last link succeeded
	ProgramLinkStatus(program Handle) bool

	// ProgramInfoLog returns the diagnostic log of the last link
	ProgramInfoLog(program Handle) string

	DeleteProgram(program Handle)

	// UniformLocation looks up a uniform in a linked program,
	// ok is false when the program has no active uniform of that name
	UniformLocation(program Handle, name string) (location int32, ok bool)

	// UseProgram installs the program for subsequent draw calls
	UseProgram(program Handle)

	CreateBuffer() (Handle, error)

	// BindArrayBuffer binds a buffer to the vertex attribute binding point
	BindArrayBuffer(buffer Handle)

	// BufferData copies data into the buffer bound to the vertex
	// attribute binding point. The copy is complete when it returns.
	BufferData(data []float32, usage BufferUsage)

	DeleteBuffer(buffer Handle)

	// VertexAttribPointer records that the attribute slot reads size
	// tightly packed floats per vertex from the bound array buffer
	VertexAttribPointer(slot uint32, size int32)

	EnableVertexAttribArray(slot uint32)

	CreateVertexArray() (Handle, error)

	BindVertexArray(vao Handle)

	DeleteVertexArray(vao Handle)

	// ClearColor sets the color used by Clear
	ClearColor(r, g, b, a float32)

	// Clear clears the color buffer
	Clear()

	// DrawTriangles draws count vertices from the bound vertex array
	// as a triangle list, starting at first
	DrawTriangles(first, count int32)
}
