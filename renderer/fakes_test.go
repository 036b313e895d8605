package renderer

import (
	"errors"
	"time"

	"github.com/achilleasa/glray/tracer"
)

type fakeSurface struct {
	id       int
	w, h     int
	released bool
}

func (s *fakeSurface) Width() int { return s.w }

func (s *fakeSurface) Height() int { return s.h }

func (s *fakeSurface) Release() { s.released = true }

// An in-memory device that records every request it receives.
type fakeDevice struct {
	surfaces  []*fakeSurface
	requests  []tracer.FrameRequest
	presented []tracer.Surface
	viewports [][2]int

	failCreate   bool
	failGenerate bool
	closed       bool

	// Invoked while the generator holds the target.
	onGenerate func()
}

func (d *fakeDevice) CreateSurface(width, height int) (tracer.Surface, error) {
	if d.failCreate {
		return nil, tracer.ErrSurfaceIncomplete
	}
	s := &fakeSurface{id: len(d.surfaces), w: width, h: height}
	d.surfaces = append(d.surfaces, s)
	return s, nil
}

func (d *fakeDevice) Generate(req *tracer.FrameRequest) error {
	if d.failGenerate {
		return errors.New("generate failed")
	}
	if d.onGenerate != nil {
		d.onGenerate()
	}
	d.requests = append(d.requests, *req)
	return nil
}

func (d *fakeDevice) SetViewport(width, height int) {
	d.viewports = append(d.viewports, [2]int{width, height})
}

func (d *fakeDevice) Present(src tracer.Surface) error {
	d.presented = append(d.presented, src)
	return nil
}

func (d *fakeDevice) Close() {
	d.closed = true
}

func (d *fakeDevice) lastRequest() tracer.FrameRequest {
	return d.requests[len(d.requests)-1]
}

// A window that runs a scripted list of event callbacks, one per poll, and
// requests closing after the last one. A script of n entries renders n frames.
type fakeWindow struct {
	script      []func()
	polls       int
	swaps       int
	shouldClose bool
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(v bool) { w.shouldClose = v }

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

func (w *fakeWindow) PollEvents() {
	if w.polls < len(w.script) && w.script[w.polls] != nil {
		w.script[w.polls]()
	}
	w.polls++
	if w.polls >= len(w.script) {
		w.shouldClose = true
	}
}

// A clock that advances by a fixed step on every read.
func steppingClock(step time.Duration) func() time.Time {
	now := time.Unix(1000, 0)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}
