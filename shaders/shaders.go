// Package shaders bundles the GLSL sources used by the demo.
package shaders

import (
	"fmt"

	"github.com/gobuffalo/packr"
)

// Standard is the name the passthrough color shader is registered under
const Standard = "std"

// Box holds the shader sources
var Box = packr.NewBox("./glsl")

// Source holds the stage sources of one shader.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// Load reads <name>.vert and <name>.frag from the box.
func Load(name string) (Source, error) {
	vs, err := Box.FindString(name + ".vert")
	if err != nil {
		return Source{}, fmt.Errorf("vertex source for %s: %w", name, err)
	}
	fs, err := Box.FindString(name + ".frag")
	if err != nil {
		return Source{}, fmt.Errorf("fragment source for %s: %w", name, err)
	}
	return Source{
		Name:     name,
		Vertex:   vs,
		Fragment: fs,
	}, nil
}
