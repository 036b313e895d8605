package renderer

import (
	"github.com/achilleasa/glray/log"
	"github.com/achilleasa/glray/scene"
)

// Keys that the renderer reacts to. Window adapters map physical keys to
// these.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyIncreaseBounces
	KeyDecreaseBounces
)

// Key and pointer button actions.
type Action uint8

const (
	Release Action = iota
	Press
	Repeat
)

// Something that can be asked to close.
type Closer interface {
	SetShouldClose(bool)
}

// InputHandler applies window events to the camera and accumulation state.
type InputHandler struct {
	logger log.Logger

	orbit  *scene.Orbit
	acc    *Accumulation
	closer Closer
}

// Create a new input handler.
func NewInputHandler(orbit *scene.Orbit, acc *Accumulation, closer Closer) *InputHandler {
	return &InputHandler{
		logger: log.New("input"),
		orbit:  orbit,
		acc:    acc,
		closer: closer,
	}
}

// Handle a key event. Keys act on release so holding a key down does not
// repeat the action.
func (h *InputHandler) OnKey(key Key, action Action) {
	if action != Release {
		return
	}

	switch key {
	case KeyEscape:
		h.closer.SetShouldClose(true)
	case KeyIncreaseBounces:
		h.setBounceCount(h.acc.BounceCount() + 1)
	case KeyDecreaseBounces:
		h.setBounceCount(h.acc.BounceCount() - 1)
	}
}

func (h *InputHandler) setBounceCount(count int) {
	if h.acc.NoteBounceCountChanged(count) {
		h.logger.Noticef("ray bounce count is now: %d", h.acc.BounceCount())
	}
}

// Handle a pointer move event.
func (h *InputHandler) OnCursorPos(x, y float64) {
	h.orbit.MoveTo(float32(x), float32(y))
}

// Handle a pointer button event.
func (h *InputHandler) OnMouseButton(action Action) {
	switch action {
	case Press:
		h.orbit.Press()
	case Release:
		if h.orbit.Release() {
			h.acc.NoteOrientationChanging()
		}
	}
}

// Handle a framebuffer resize event.
func (h *InputHandler) OnFramebufferResize(width, height int) {
	if h.acc.NoteViewportResized(width, height) {
		h.logger.Infof("viewport resized to %dx%d", width, height)
	}
}
