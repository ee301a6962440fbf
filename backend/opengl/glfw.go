package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns a GLFW window and its OpenGL 4.1 core context, and serves as
// the shaderquad.ContextProvider for programs drawing into it.
type Window struct {
	win *glfw.Window
}

// NewWindow initializes GLFW, creates a window with a 4.1 core context,
// makes the context current and loads the GL function pointers. Call from
// the main thread with runtime.LockOSThread in effect.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Window{win: win}, nil
}

// MakeCurrent makes the window's context current on the calling thread.
func (w *Window) MakeCurrent() bool {
	if w.win == nil {
		return false
	}
	w.win.MakeContextCurrent()
	return glfw.GetCurrentContext() == w.win
}

// ShouldClose reports whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Swap presents the rendered frame and polls window events.
func (w *Window) Swap() {
	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	return w.win.GetFramebufferSize()
}

// Terminate destroys the window and shuts down GLFW.
func (w *Window) Terminate() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
