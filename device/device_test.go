package device_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/prism/device"
)

func TestErrorsUnwrap(t *testing.T) {
	c := qt.New(t)
	cause := errors.New("No available video device")

	var err error = &device.SurfaceNotFoundError{Name: "prism", Err: cause}
	c.Assert(err, qt.ErrorMatches, `surface "prism" not available: No available video device`)
	c.Assert(errors.Is(err, cause), qt.IsTrue)

	err = &device.ContextUnavailableError{API: "OpenGL 4.1 core", Err: cause}
	c.Assert(err, qt.ErrorMatches, "OpenGL 4.1 core context unavailable: No available video device")
	c.Assert(errors.Is(err, cause), qt.IsTrue)
}
