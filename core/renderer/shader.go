package renderer

import (
	"github.com/devblok/prism/gfx"
)

// Shader is a linked program along with the locations of
// the uniforms requested when it was built.
type Shader struct {
	ctx gfx.Context

	// Program is the linked program handle
	Program gfx.Handle

	// Uniforms maps uniform names to their locations in Program
	Uniforms map[string]int32
}

// NewShader compiles both stages, links them and resolves the requested
// uniforms. Nothing is left allocated when it fails.
func NewShader(ctx gfx.Context, vertexSrc, fragmentSrc string, uniforms []string) (*Shader, error) {
	vs, err := compileStage(ctx, gfx.VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := compileStage(ctx, gfx.FragmentStage, fragmentSrc)
	if err != nil {
		ctx.DeleteShader(vs)
		return nil, err
	}

	program, err := linkProgram(ctx, vs, fs)
	if err != nil {
		return nil, err
	}

	locations, err := resolveUniforms(ctx, program, uniforms)
	if err != nil {
		ctx.DeleteProgram(program)
		return nil, err
	}

	return &Shader{
		ctx:      ctx,
		Program:  program,
		Uniforms: locations,
	}, nil
}

// Release deletes the program.
func (s *Shader) Release() {
	s.ctx.DeleteProgram(s.Program)
}

func compileStage(ctx gfx.Context, stage gfx.ShaderStage, source string) (gfx.Handle, error) {
	shader, err := ctx.CreateShader(stage)
	if err != nil {
		return 0, err
	}
	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if !ctx.ShaderCompileStatus(shader) {
		log := ctx.ShaderInfoLog(shader)
		if log == "" {
			log = "unknown error creating shader"
		}
		ctx.DeleteShader(shader)
		return 0, &gfx.CompileError{Stage: stage, Log: log}
	}
	return shader, nil
}

// linkProgram links the two stages into a program. The stage objects
// are deleted in every case, a linked program keeps what it needs.
func linkProgram(ctx gfx.Context, vs, fs gfx.Handle) (gfx.Handle, error) {
	defer ctx.DeleteShader(vs)
	defer ctx.DeleteShader(fs)

	program, err := ctx.CreateProgram()
	if err != nil {
		return 0, err
	}
	ctx.AttachShader(program, vs)
	ctx.AttachShader(program, fs)
	ctx.LinkProgram(program)

	if !ctx.ProgramLinkStatus(program) {
		log := ctx.ProgramInfoLog(program)
		if log == "" {
			log = "unknown error creating program object"
		}
		ctx.DeleteProgram(program)
		return 0, &gfx.LinkError{Log: log}
	}
	return program, nil
}

func resolveUniforms(ctx gfx.Context, program gfx.Handle, names []string) (map[string]int32, error) {
	locations := make(map[string]int32, len(names))
	for _, name := range names {
		loc, ok := ctx.UniformLocation(program, name)
		if !ok {
			return nil, &gfx.UnknownUniformError{Name: name}
		}
		locations[name] = loc
	}
	return locations, nil
}
