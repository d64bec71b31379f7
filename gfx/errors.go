package gfx

import (
	"fmt"
	"strings"
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", strings.TrimSpace(e.Log))
}

// UnknownUniformError is returned when a requested uniform
// is not active in a linked program.
type UnknownUniformError struct {
	Name string
}

func (e *UnknownUniformError) Error() string {
	return fmt.Sprintf("unknown uniform %s", e.Name)
}

// ResourceCreationError is returned when the context cannot allocate an object.
type ResourceCreationError struct {
	Resource string
}

func (e *ResourceCreationError) Error() string {
	return fmt.Sprintf("could not create %s", e.Resource)
}

// NotFoundError is returned when a named resource is not registered.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// LayoutError is returned when vertex data does not divide
// into whole vertices.
type LayoutError struct {
	Attribute string
	Length    int
	Size      int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s data of length %d is not a multiple of %d", e.Attribute, e.Length, e.Size)
}
