// Package window hosts the GLFW window and OpenGL context used by the
// interactive renderer and translates GLFW input events into renderer
// input events.
package window

import (
	"errors"
	"fmt"

	"github.com/achilleasa/glray/log"
	"github.com/achilleasa/glray/renderer"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window configuration.
type Config struct {
	Width  int
	Height int
	Title  string

	// The requested context version. A core, forward compatible profile
	// is always requested.
	ContextMajor int
	ContextMinor int

	// Hidden windows are used for querying context capabilities.
	Hidden bool
}

// EventHandler receives input events translated from GLFW callbacks.
type EventHandler interface {
	OnKey(key renderer.Key, action renderer.Action)
	OnCursorPos(x, y float64)
	OnMouseButton(action renderer.Action)
	OnFramebufferResize(width, height int)
}

// Window wraps a GLFW window whose context is current on the thread that
// opened it. It implements renderer.Window.
type Window struct {
	*glfw.Window

	logger log.Logger
}

// Open a window and make its GL context current. The window is created
// hidden, centred on the primary monitor and then shown unless cfg.Hidden
// is set. Open must be called from the main thread.
func Open(cfg Config) (*Window, error) {
	logger := log.New("window")

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: failed to initialize glfw: %s", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		var glfwErr *glfw.Error
		if errors.As(err, &glfwErr) && glfwErr.Code == glfw.VersionUnavailable {
			logger.Errorf("this program requires OpenGL %d.%d or newer", cfg.ContextMajor, cfg.ContextMinor)
		}
		glfw.Terminate()
		return nil, fmt.Errorf("window: could not create opengl window: %s", err)
	}

	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		if mode := monitor.GetVideoMode(); mode != nil {
			win.SetPos((mode.Width-cfg.Width)/2, (mode.Height-cfg.Height)/2)
		}
	}

	win.MakeContextCurrent()
	glfw.SwapInterval(0)
	win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	if !cfg.Hidden {
		win.Show()
	}

	w := &Window{Window: win, logger: logger}
	fbW, fbH := w.FramebufferSize()
	logger.Debugf("opened %dx%d window (framebuffer %dx%d)", cfg.Width, cfg.Height, fbW, fbH)
	return w, nil
}

// Get the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.GetFramebufferSize()
}

// Process pending window events. Callbacks run synchronously on the
// calling thread.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Route window input events to h.
func (w *Window) Bind(h EventHandler) {
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if k := translateKey(key); k != renderer.KeyUnknown {
			h.OnKey(k, translateAction(action))
		}
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.OnCursorPos(x, y)
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, _ glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		h.OnMouseButton(translateAction(action))
	})
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.OnFramebufferResize(width, height)
	})
}

// Destroy the window and terminate glfw.
func (w *Window) Close() {
	if w == nil || w.Window == nil {
		return
	}
	w.Destroy()
	w.Window = nil
	glfw.Terminate()
}

func translateKey(key glfw.Key) renderer.Key {
	switch key {
	case glfw.KeyEscape:
		return renderer.KeyEscape
	case glfw.KeyKPAdd, glfw.KeyPageUp:
		return renderer.KeyIncreaseBounces
	case glfw.KeyKPSubtract, glfw.KeyPageDown:
		return renderer.KeyDecreaseBounces
	}
	return renderer.KeyUnknown
}

func translateAction(action glfw.Action) renderer.Action {
	switch action {
	case glfw.Press:
		return renderer.Press
	case glfw.Repeat:
		return renderer.Repeat
	}
	return renderer.Release
}
