package renderer

import glm "github.com/go-gl/mathgl/mgl32"

// Configuration describes the renderer configuration
type Configuration struct {
	// ClearColor is the RGBA color the color buffer is cleared to
	// at the start of every Render
	ClearColor glm.Vec4
}

// DefaultConfiguration clears to opaque black
var DefaultConfiguration = Configuration{
	ClearColor: glm.Vec4{0, 0, 0, 1},
}
