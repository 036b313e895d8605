package renderer

import (
	"fmt"

	"github.com/achilleasa/glray/types"
)

type Options struct {
	// Frame dims.
	FrameW int
	FrameH int

	// Number of path segments traced per sample and the range that
	// interactive adjustments are clamped to.
	BounceCount int
	MinBounces  int
	MaxBounces  int

	// Perspective projection. FOV is the vertical field of view in degrees.
	FOV  float32
	Near float32
	Far  float32

	// Orbit rig. The eye circles LookAt at the given radius and height.
	OrbitAngle  float32
	OrbitRadius float32
	OrbitHeight float32
	LookAt      types.Vec3
	Up          types.Vec3

	// Radians of orbit rotation per pixel of horizontal pointer drag.
	MouseSensitivity float32
}

// Get the default options.
func DefaultOptions() Options {
	return Options{
		FrameW:           1024,
		FrameH:           768,
		BounceCount:      1,
		MinBounces:       1,
		MaxBounces:       4,
		FOV:              60,
		Near:             1,
		Far:              2,
		OrbitAngle:       0.8,
		OrbitRadius:      3,
		OrbitHeight:      2,
		LookAt:           types.XYZ(0, 0.5, 0),
		Up:               types.XYZ(0, 1, 0),
		MouseSensitivity: 0.01,
	}
}

// Check that the options describe a usable configuration.
func (o Options) Validate() error {
	if o.FrameW <= 0 || o.FrameH <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, o.FrameW, o.FrameH)
	}
	if o.MinBounces < 1 || o.MinBounces > o.MaxBounces {
		return fmt.Errorf("renderer: invalid bounce range [%d, %d]", o.MinBounces, o.MaxBounces)
	}
	if o.BounceCount < o.MinBounces || o.BounceCount > o.MaxBounces {
		return fmt.Errorf("renderer: bounce count %d outside [%d, %d]", o.BounceCount, o.MinBounces, o.MaxBounces)
	}
	if o.FOV <= 0 || o.FOV >= 180 {
		return fmt.Errorf("renderer: invalid field of view %f", o.FOV)
	}
	if o.Near <= 0 || o.Far <= o.Near {
		return fmt.Errorf("renderer: invalid clip planes near=%f far=%f", o.Near, o.Far)
	}
	return nil
}
