// Package device acquires the drawing surface and its graphics context from the host.
package device

import (
	"fmt"

	"github.com/devblok/prism/gfx"
)

// Surface describes a window owning a current graphics context
type Surface interface {
	// Context returns the graphics context bound to the surface
	Context() gfx.Context

	// SetVSync ties buffer swaps to the display refresh
	SetVSync(bool) error

	// Pump drains pending host events and reports whether
	// the surface is still open
	Pump() bool

	// Present shows the frame drawn since the last Present
	Present()

	// Destroy destroys internal members
	Destroy()
}

// SurfaceNotFoundError is returned when the host cannot provide
// the drawing surface.
type SurfaceNotFoundError struct {
	Name string
	Err  error
}

func (e *SurfaceNotFoundError) Error() string {
	return fmt.Sprintf("surface %q not available: %s", e.Name, e.Err)
}

func (e *SurfaceNotFoundError) Unwrap() error {
	return e.Err
}

// ContextUnavailableError is returned when the surface cannot provide
// the required graphics context.
type ContextUnavailableError struct {
	API string
	Err error
}

func (e *ContextUnavailableError) Error() string {
	return fmt.Sprintf("%s context unavailable: %s", e.API, e.Err)
}

func (e *ContextUnavailableError) Unwrap() error {
	return e.Err
}
