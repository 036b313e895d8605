package tracer

import (
	"time"

	"github.com/achilleasa/glray/scene"
)

// The binding point for the camera parameter block. It is fixed by
// convention so that no runtime query is needed on GL 3.3 contexts.
const CameraBlockBinding = 1

// A persistent floating point surface that holds the accumulated image.
type Surface interface {
	// Surface dimensions in pixels.
	Width() int
	Height() int

	// Release the device resources held by this surface.
	Release()
}

// A SurfaceFactory allocates accumulation surfaces.
type SurfaceFactory interface {
	CreateSurface(width, height int) (Surface, error)
}

// The inputs for a single sample generator invocation.
type FrameRequest struct {
	// Time since the first frame.
	Elapsed time.Duration

	// The weight of the previously accumulated image in [0, 1).
	BlendWeight float32

	// Max number of path segments per sample.
	BounceCount int

	// Viewport dimensions.
	Width  int
	Height int

	// Packed eye position and frustrum corner rays.
	Camera *scene.ParamBlock

	// The surface to read the accumulated image from and write the
	// blended result to.
	Target Surface
}

// A SampleGenerator renders one new sample per pixel and blends it into the
// request's target surface.
type SampleGenerator interface {
	Generate(req *FrameRequest) error
}

// A Presenter draws a surface to the visible screen region.
type Presenter interface {
	SetViewport(width, height int)
	Present(src Surface) error
}

// A Device bundles the gpu facing collaborators of the renderer.
type Device interface {
	SurfaceFactory
	SampleGenerator
	Presenter

	// Release all device resources.
	Close()
}
