package renderer

import (
	"time"

	"github.com/achilleasa/glray/tracer"
)

// The window system the frame loop runs in.
type Window interface {
	Closer

	// Returns true once closing the window has been requested.
	ShouldClose() bool

	// Deliver pending input events. Event callbacks run synchronously
	// on the calling goroutine.
	PollEvents()

	// Show the frame drawn since the last swap.
	SwapBuffers()
}

// FrameLoop sequences input polling, accumulation and presentation. There is
// no frame rate limit; frames are produced as fast as the device allows.
type FrameLoop struct {
	window     Window
	presenter  tracer.Presenter
	controller *Controller
	acc        *Accumulation
	targets    *TargetManager

	now   func() time.Time
	stats FrameStats
}

// Create a new frame loop.
func NewFrameLoop(window Window, presenter tracer.Presenter, controller *Controller, acc *Accumulation, targets *TargetManager) *FrameLoop {
	return &FrameLoop{
		window:     window,
		presenter:  presenter,
		controller: controller,
		acc:        acc,
		targets:    targets,
		now:        time.Now,
		stats: FrameStats{
			Resets: make(map[ResetCause]uint64),
		},
	}
}

// Run frames until the window is asked to close.
func (l *FrameLoop) Run() error {
	for !l.window.ShouldClose() {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run a single loop iteration.
func (l *FrameLoop) Step() error {
	start := l.now()

	l.window.PollEvents()

	width, height := l.acc.Viewport()
	l.presenter.SetViewport(width, height)

	info, err := l.controller.StepFrame()
	if err != nil {
		return err
	}

	if err = l.presenter.Present(l.targets.Surface()); err != nil {
		return err
	}

	l.window.SwapBuffers()
	l.record(info, l.now().Sub(start))
	return nil
}

// Get statistics for the frames rendered so far.
func (l *FrameLoop) Stats() FrameStats {
	stats := l.stats
	stats.Resets = make(map[ResetCause]uint64, numResetCauses)
	for cause := ResetCause(0); cause < numResetCauses; cause++ {
		stats.Resets[cause] = l.acc.Resets(cause)
	}
	stats.BounceCount = l.acc.BounceCount()
	stats.TargetAllocations = l.targets.Allocations()
	return stats
}

func (l *FrameLoop) record(info FrameInfo, frameTime time.Duration) {
	l.stats.Frames++
	l.stats.SampleCount = info.SampleCount
	l.stats.LastFrameTime = frameTime
	l.stats.RenderTime += frameTime
}
