// Package demo wires the color cycling triangle: it loads the shader and
// model into a renderer and produces one frame per call to Frame.
package demo

import (
	"fmt"

	"github.com/devblok/prism/core"
	"github.com/devblok/prism/core/renderer"
	"github.com/devblok/prism/gfx"
	"github.com/devblok/prism/model"
	"github.com/devblok/prism/shaders"
)

// colorComponents is the width of each streamed color, RGB without alpha
const colorComponents = 3

// Demo draws a triangle whose corner colors cycle a little every frame.
type Demo struct {
	Renderer *renderer.Renderer

	shader string
	shape  model.Shape
	cycle  core.ColorCycle
}

// New creates the renderer on ctx and loads the shader and triangle.
func New(ctx gfx.Context, cfg renderer.Configuration, src shaders.Source) (*Demo, error) {
	r := renderer.New(ctx, cfg)
	r.Init()

	d := &Demo{
		Renderer: r,
		shader:   src.Name,
		shape:    model.Triangle(),
		cycle:    core.NewColorCycle(),
	}

	if err := r.LoadShader(src.Name, src.Vertex, src.Fragment, nil); err != nil {
		return nil, err
	}
	if err := r.UseShader(src.Name); err != nil {
		r.Release()
		return nil, err
	}
	if err := r.LoadModel(d.shape.Name, d.shape.Positions(), d.shape.Colors()); err != nil {
		r.Release()
		return nil, err
	}
	return d, nil
}

// Colors returns the current color state.
func (d *Demo) Colors() core.ColorCycle {
	return d.cycle
}

// Frame advances the color cycle, uploads the colors and draws the triangle.
func (d *Demo) Frame() error {
	d.cycle = d.cycle.Step()

	if err := d.Renderer.UpdateColors(d.shape.Name, d.cycle.Slice(), colorComponents); err != nil {
		return fmt.Errorf("uploading colors: %w", err)
	}
	if err := d.Renderer.UseShader(d.shader); err != nil {
		return err
	}
	return d.Renderer.Render([]string{d.shape.Name})
}

// Release frees every GPU resource the demo created.
func (d *Demo) Release() {
	d.Renderer.Release()
}
