// Package model describes shapes as vertex lists and flattens them
// into the per-attribute arrays the renderer uploads.
package model

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a model vertex
type Vertex struct {
	Pos   glm.Vec3
	Color glm.Vec4
}

// Shape is a named triangle list.
type Shape struct {
	Name     string
	Vertices []Vertex
}

// Positions flattens vertex positions, 3 floats per vertex
func (s Shape) Positions() []float32 {
	out := make([]float32, 0, len(s.Vertices)*3)
	for _, v := range s.Vertices {
		out = append(out, v.Pos[:]...)
	}
	return out
}

// Colors flattens vertex colors, 4 floats per vertex
func (s Shape) Colors() []float32 {
	out := make([]float32, 0, len(s.Vertices)*4)
	for _, v := range s.Vertices {
		out = append(out, v.Color[:]...)
	}
	return out
}

// Triangle is the demo shape: red, green and blue corners.
func Triangle() Shape {
	return Shape{
		Name: "triangle",
		Vertices: []Vertex{
			{Pos: glm.Vec3{-0.7, -0.7, 0}, Color: glm.Vec4{1, 0, 0, 1}},
			{Pos: glm.Vec3{0.7, -0.7, 0}, Color: glm.Vec4{0, 1, 0, 1}},
			{Pos: glm.Vec3{0, 0.7, 0}, Color: glm.Vec4{0, 0, 1, 1}},
		},
	}
}
