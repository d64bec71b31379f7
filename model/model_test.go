package model_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/prism/model"
)

func TestTriangleFlatten(t *testing.T) {
	c := qt.New(t)

	tri := model.Triangle()
	c.Assert(tri.Name, qt.Equals, "triangle")
	c.Assert(tri.Positions(), qt.DeepEquals, []float32{
		-0.7, -0.7, 0,
		0.7, -0.7, 0,
		0, 0.7, 0,
	})
	c.Assert(tri.Colors(), qt.DeepEquals, []float32{
		1, 0, 0, 1,
		0, 1, 0, 1,
		0, 0, 1, 1,
	})
}

func TestEmptyShape(t *testing.T) {
	c := qt.New(t)

	var s model.Shape
	c.Assert(s.Positions(), qt.HasLen, 0)
	c.Assert(s.Colors(), qt.HasLen, 0)
}
