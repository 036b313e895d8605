package renderer

import (
	"time"

	"github.com/achilleasa/glray/log"
	"github.com/achilleasa/glray/scene"
	"github.com/achilleasa/glray/tracer"
)

// Information about a rendered frame.
type FrameInfo struct {
	// Effective orbit angle used for the frame.
	Angle float32

	// Blend weight passed to the sample generator.
	BlendWeight float32

	// Accumulated samples after the frame.
	SampleCount uint32

	// True if the render target and projection were set up for new viewport
	// dimensions before the frame.
	Resized bool

	// True if the frame was rendered while the camera was being dragged.
	Dragging bool
}

// The Controller renders a frame at a time and blends it into the render
// target.
type Controller struct {
	logger log.Logger
	opts   Options

	camera    *scene.Camera
	orbit     *scene.Orbit
	acc       *Accumulation
	targets   *TargetManager
	generator tracer.SampleGenerator

	// The parameter block uploaded for each frame.
	block scene.ParamBlock

	// Time source; replaced by tests.
	now        func() time.Time
	firstFrame time.Time
}

// Create a new accumulation controller.
func NewController(opts Options, orbit *scene.Orbit, acc *Accumulation, targets *TargetManager, generator tracer.SampleGenerator) *Controller {
	return &Controller{
		logger:    log.New("controller"),
		opts:      opts,
		camera:    scene.NewCamera(opts.FOV, opts.Near, opts.Far),
		orbit:     orbit,
		acc:       acc,
		targets:   targets,
		generator: generator,
		now:       time.Now,
	}
}

// Get the camera parameter block uploaded for the last frame.
func (c *Controller) ParamBlock() scene.ParamBlock {
	return c.block
}

// Render the next frame.
func (c *Controller) StepFrame() (FrameInfo, error) {
	var info FrameInfo

	// While dragging the image changes every frame so nothing can be
	// accumulated. This holds even if the pointer only moved vertically.
	info.Angle = c.orbit.Angle()
	info.Dragging = c.orbit.Dragging()
	if info.Dragging {
		c.acc.NoteOrientationChanging()
	}

	if c.acc.PendingResize() {
		width, height := c.acc.Viewport()
		if err := c.targets.Resize(width, height); err != nil {
			return info, err
		}
		c.camera.SetupProjection(float32(width) / float32(height))
		c.acc.clearPendingResize()
		info.Resized = true
		c.logger.Infof("render target is now %dx%d", width, height)
	}

	vp := c.camera.ComputeViewParameters(info.Angle, c.opts.OrbitRadius, c.opts.OrbitHeight, c.opts.LookAt, c.opts.Up)
	vp.Pack(&c.block)

	info.BlendWeight = c.acc.BlendWeight()

	now := c.now()
	if c.firstFrame.IsZero() {
		c.firstFrame = now
	}

	width, height := c.acc.Viewport()
	err := c.targets.Borrow(func(target tracer.Surface) error {
		return c.generator.Generate(&tracer.FrameRequest{
			Elapsed:     now.Sub(c.firstFrame),
			BlendWeight: info.BlendWeight,
			BounceCount: c.acc.BounceCount(),
			Width:       width,
			Height:      height,
			Camera:      &c.block,
			Target:      target,
		})
	})
	if err != nil {
		return info, err
	}

	if !info.Dragging {
		c.acc.advance()
	}
	info.SampleCount = c.acc.SampleCount

	if log.Enabled(log.Debug) {
		c.logger.Debugf("frame: angle=%.3f weight=%.4f samples=%d", info.Angle, info.BlendWeight, info.SampleCount)
	}
	return info, nil
}
