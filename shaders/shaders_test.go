package shaders_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/prism/shaders"
)

func TestLoadStandard(t *testing.T) {
	c := qt.New(t)

	src, err := shaders.Load(shaders.Standard)
	c.Assert(err, qt.IsNil)
	c.Assert(src.Name, qt.Equals, shaders.Standard)
	c.Assert(src.Vertex, qt.Contains, "in vec3 position;")
	c.Assert(src.Vertex, qt.Contains, "outcolor = color;")
	c.Assert(src.Fragment, qt.Contains, "fcolor = vec4(outcolor, 1.0);")
}

func TestLoadMissing(t *testing.T) {
	c := qt.New(t)

	_, err := shaders.Load("phong")
	c.Assert(err, qt.ErrorMatches, "vertex source for phong: .*")
}
