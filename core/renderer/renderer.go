// Package renderer keeps named shaders and models and draws them
// through a gfx.Context.
package renderer

import (
	"fmt"

	"github.com/devblok/prism/gfx"
	log "github.com/sirupsen/logrus"
)

// Renderer owns named registries of shaders and models.
// Registering under a taken name releases the resource it replaces.
type Renderer struct {
	ctx gfx.Context
	cfg Configuration

	shaders map[string]*Shader
	models  map[string]*Model

	current    string
	hasCurrent bool
}

// New creates a renderer issuing commands to ctx. It needs to be
// initialised with Init() before the first Render.
func New(ctx gfx.Context, cfg Configuration) *Renderer {
	return &Renderer{
		ctx:     ctx,
		cfg:     cfg,
		shaders: make(map[string]*Shader),
		models:  make(map[string]*Model),
	}
}

// Init sets the configured clear color.
func (r *Renderer) Init() {
	c := r.cfg.ClearColor
	r.ctx.ClearColor(c.X(), c.Y(), c.Z(), c.W())
}

// LoadShader builds a shader and registers it under name.
func (r *Renderer) LoadShader(name, vertexSrc, fragmentSrc string, uniforms []string) error {
	shader, err := NewShader(r.ctx, vertexSrc, fragmentSrc, uniforms)
	if err != nil {
		return fmt.Errorf("loading shader %s: %w", name, err)
	}

	if old, ok := r.shaders[name]; ok {
		log.WithField("shader", name).Debug("Replacing shader")
		old.Release()
	}
	r.shaders[name] = shader

	log.WithFields(log.Fields{
		"shader":   name,
		"program":  shader.Program,
		"uniforms": len(shader.Uniforms),
	}).Debug("Shader loaded")
	return nil
}

// LoadModel builds a model and registers it under name.
func (r *Renderer) LoadModel(name string, positions, colors []float32) error {
	model, err := NewModel(r.ctx, positions, colors)
	if err != nil {
		return fmt.Errorf("loading model %s: %w", name, err)
	}

	if old, ok := r.models[name]; ok {
		log.WithField("model", name).Debug("Replacing model")
		old.Release()
	}
	r.models[name] = model

	log.WithFields(log.Fields{
		"model":    name,
		"vertices": model.VertexCount,
	}).Debug("Model loaded")
	return nil
}

// Shader returns the shader registered under name.
func (r *Renderer) Shader(name string) (*Shader, error) {
	shader, ok := r.shaders[name]
	if !ok {
		return nil, &gfx.NotFoundError{Kind: "shader", Name: name}
	}
	return shader, nil
}

// Model returns the model registered under name.
func (r *Renderer) Model(name string) (*Model, error) {
	model, ok := r.models[name]
	if !ok {
		return nil, &gfx.NotFoundError{Kind: "model", Name: name}
	}
	return model, nil
}

// UseShader makes the named shader's program the active one.
func (r *Renderer) UseShader(name string) error {
	shader, err := r.Shader(name)
	if err != nil {
		return err
	}
	r.ctx.UseProgram(shader.Program)
	r.current = name
	r.hasCurrent = true
	return nil
}

// CurrentShader returns the name passed to the last successful UseShader.
func (r *Renderer) CurrentShader() (string, bool) {
	return r.current, r.hasCurrent
}

// UpdateColors streams per-vertex colors with size components
// each into the named model.
func (r *Renderer) UpdateColors(name string, colors []float32, size int32) error {
	model, err := r.Model(name)
	if err != nil {
		return err
	}
	return model.StreamColors(colors, size)
}

// Render clears the color buffer and draws the named models in order
// with whatever program is active. All names are looked up before
// anything is issued, so an unknown name draws nothing at all.
func (r *Renderer) Render(models []string) error {
	batch := make([]*Model, 0, len(models))
	for _, name := range models {
		model, err := r.Model(name)
		if err != nil {
			return err
		}
		batch = append(batch, model)
	}

	r.ctx.Clear()
	for _, model := range batch {
		r.ctx.BindVertexArray(model.VertexArray)
		r.ctx.DrawTriangles(0, model.VertexCount)
	}
	return nil
}

// Release releases every registered resource and empties the registries.
func (r *Renderer) Release() {
	for name, shader := range r.shaders {
		shader.Release()
		delete(r.shaders, name)
	}
	for name, model := range r.models {
		model.Release()
		delete(r.models, name)
	}
	r.current, r.hasCurrent = "", false
}
