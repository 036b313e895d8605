package renderer

import (
	"github.com/achilleasa/glray/log"
	"github.com/achilleasa/glray/scene"
	"github.com/achilleasa/glray/tracer"
)

type Renderer interface {
	// Render frames until the window is closed.
	Render() error

	// Release the render target.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// An interactive renderer that progressively refines the image while the
// camera is orbited with the mouse.
type Interactive struct {
	logger log.Logger

	orbit   *scene.Orbit
	acc     *Accumulation
	targets *TargetManager
	input   *InputHandler
	loop    *FrameLoop
}

// Create a new interactive renderer drawing into window through device.
// The render target is allocated immediately; failing to do so is fatal.
// The caller retains ownership of the device.
func NewInteractive(window Window, device tracer.Device, opts Options) (*Interactive, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := &Interactive{
		logger:  log.New("renderer"),
		orbit:   scene.NewOrbit(opts.OrbitAngle, opts.MouseSensitivity),
		acc:     NewAccumulation(opts.FrameW, opts.FrameH, opts.BounceCount, opts.MinBounces, opts.MaxBounces),
		targets: NewTargetManager(device),
	}

	if err := r.targets.Create(opts.FrameW, opts.FrameH); err != nil {
		return nil, err
	}

	controller := NewController(opts, r.orbit, r.acc, r.targets, device)
	r.input = NewInputHandler(r.orbit, r.acc, window)
	r.loop = NewFrameLoop(window, device, controller, r.acc, r.targets)

	r.logger.Infof("rendering %dx%d frames with %d bounce(s)", opts.FrameW, opts.FrameH, r.acc.BounceCount())
	return r, nil
}

// Get the handler that window events should be delivered to.
func (r *Interactive) Input() *InputHandler {
	return r.input
}

// Get the accumulation state.
func (r *Interactive) Accumulation() *Accumulation {
	return r.acc
}

func (r *Interactive) Render() error {
	return r.loop.Run()
}

func (r *Interactive) Close() {
	if r == nil {
		return
	}
	r.targets.Release()
}

func (r *Interactive) Stats() FrameStats {
	return r.loop.Stats()
}
