package renderer

import (
	"github.com/devblok/prism/gfx"
)

// Attribute slots read by the vertex stage
const (
	PositionSlot uint32 = 0
	ColorSlot    uint32 = 1
)

// Components per vertex of the static attribute buffers
const (
	PositionSize int32 = 3
	ColorSize    int32 = 4
)

// Model is a vertex array bundling the attribute buffers of one shape.
type Model struct {
	ctx gfx.Context

	// VertexArray records the attribute layout
	VertexArray gfx.Handle

	// VertexCount is the number of vertices drawn
	VertexCount int32

	positions gfx.Handle
	colors    gfx.Handle

	// stream is the dynamic color buffer, zero until StreamColors is called
	stream gfx.Handle
}

// NewModel uploads positions (3 floats per vertex) and colors (4 floats per
// vertex) into static buffers and records them into a new vertex array.
// The vertex count is taken from positions alone.
func NewModel(ctx gfx.Context, positions, colors []float32) (*Model, error) {
	if len(positions)%int(PositionSize) != 0 {
		return nil, &gfx.LayoutError{Attribute: "position", Length: len(positions), Size: int(PositionSize)}
	}

	vao, err := ctx.CreateVertexArray()
	if err != nil {
		return nil, err
	}
	m := &Model{
		ctx:         ctx,
		VertexArray: vao,
		VertexCount: int32(len(positions)) / PositionSize,
	}

	ctx.BindVertexArray(vao)
	defer ctx.BindVertexArray(0)

	if m.positions, err = bindAttribBuffer(ctx, PositionSlot, positions, PositionSize, gfx.StaticDraw); err != nil {
		m.Release()
		return nil, err
	}
	if m.colors, err = bindAttribBuffer(ctx, ColorSlot, colors, ColorSize, gfx.StaticDraw); err != nil {
		m.Release()
		return nil, err
	}

	return m, nil
}

// StreamColors uploads colors with size components per vertex into the
// model's dynamic color buffer and points the color slot at it. The static
// color buffer is left as it was uploaded.
func (m *Model) StreamColors(colors []float32, size int32) error {
	if m.stream == 0 {
		buf, err := m.ctx.CreateBuffer()
		if err != nil {
			return err
		}
		m.stream = buf
	}

	m.ctx.BindVertexArray(m.VertexArray)
	m.ctx.BindArrayBuffer(m.stream)
	m.ctx.BufferData(colors, gfx.DynamicDraw)
	m.ctx.VertexAttribPointer(ColorSlot, size)
	m.ctx.EnableVertexAttribArray(ColorSlot)
	m.ctx.BindArrayBuffer(0)
	m.ctx.BindVertexArray(0)
	return nil
}

// Release deletes the vertex array and every buffer the model owns.
func (m *Model) Release() {
	for _, buf := range []gfx.Handle{m.positions, m.colors, m.stream} {
		if buf != 0 {
			m.ctx.DeleteBuffer(buf)
		}
	}
	m.positions, m.colors, m.stream = 0, 0, 0
	if m.VertexArray != 0 {
		m.ctx.DeleteVertexArray(m.VertexArray)
		m.VertexArray = 0
	}
}

// bindAttribBuffer creates a buffer holding data and binds it to slot of
// the currently bound vertex array.
func bindAttribBuffer(ctx gfx.Context, slot uint32, data []float32, size int32, usage gfx.BufferUsage) (gfx.Handle, error) {
	buf, err := ctx.CreateBuffer()
	if err != nil {
		return 0, err
	}
	ctx.BindArrayBuffer(buf)
	ctx.BufferData(data, usage)
	ctx.VertexAttribPointer(slot, size)
	ctx.EnableVertexAttribArray(slot)
	ctx.BindArrayBuffer(0)
	return buf, nil
}
