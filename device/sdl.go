package device

import (
	"github.com/devblok/prism/gfx"
	"github.com/devblok/prism/gfx/glr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

const glAPI = "OpenGL 4.1 core"

// Options configures the SDL window
type Options struct {
	Title  string
	Width  int32
	Height int32
	Hidden bool
}

// OpenSurface initialises SDL video, opens a window and makes an OpenGL 4.1
// core context current on the calling thread, which has to stay locked to
// its OS thread for as long as the surface is used.
func OpenSurface(opts Options) (*SDLSurface, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, &SurfaceNotFoundError{Name: opts.Title, Err: err}
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	var flags uint32 = sdl.WINDOW_OPENGL
	if opts.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}

	window, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		opts.Width,
		opts.Height,
		flags)
	if err != nil {
		sdl.Quit()
		return nil, &SurfaceNotFoundError{Name: opts.Title, Err: err}
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, &ContextUnavailableError{API: glAPI, Err: err}
	}

	ctx, err := glr.Init()
	if err != nil {
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		return nil, &ContextUnavailableError{API: glAPI, Err: err}
	}

	info := ctx.Info()
	log.WithFields(log.Fields{
		"vendor":   info.Vendor,
		"renderer": info.Renderer,
		"version":  info.Version,
	}).Info("Graphics context created")

	return &SDLSurface{
		window:    window,
		glContext: glContext,
		ctx:       ctx,
	}, nil
}

// SDLSurface is an SDL window with an OpenGL context
type SDLSurface struct {
	window    *sdl.Window
	glContext sdl.GLContext
	ctx       *glr.Context
}

var _ Surface = (*SDLSurface)(nil)

// Context implements Surface.
func (s *SDLSurface) Context() gfx.Context {
	return s.ctx
}

// SetVSync implements Surface.
func (s *SDLSurface) SetVSync(on bool) error {
	interval := 0
	if on {
		interval = 1
	}
	return sdl.GLSetSwapInterval(interval)
}

// Pump implements Surface. Only quit events are acted upon.
func (s *SDLSurface) Pump() bool {
	open := true
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			open = false
		}
	}
	return open
}

// Present implements Surface.
func (s *SDLSurface) Present() {
	s.window.GLSwap()
}

// Destroy implements Surface.
func (s *SDLSurface) Destroy() {
	sdl.GLDeleteContext(s.glContext)
	s.window.Destroy()
	sdl.Quit()
}
