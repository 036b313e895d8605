package scene

import (
	"math"

	"github.com/achilleasa/glray/types"
)

// Each vector in the parameter block occupies 4 floats to match the std140
// layout of the CameraSettings uniform block.
const (
	ParamBlockStride = 4
	ParamBlockFloats = 5 * ParamBlockStride
	ParamBlockBytes  = ParamBlockFloats * 4
)

// The packed representation of ViewParameters that is uploaded to the gpu.
type ParamBlock [ParamBlockFloats]float32

// The per-frame camera geometry consumed by the sample generator.
type ViewParameters struct {
	Eye  types.Vec3
	Rays Frustrum
}

// Place the camera on a circle of the given radius and height around lookAt
// and return the resulting eye position and frustrum corner rays. The
// projection set up by the last SetupProjection call is used.
func (c *Camera) ComputeViewParameters(orbitAngle, radius, height float32, lookAt, up types.Vec3) ViewParameters {
	eye := types.XYZ(
		float32(math.Sin(float64(-orbitAngle)))*radius,
		height,
		float32(math.Cos(float64(-orbitAngle)))*radius,
	)
	c.SetLookAt(eye, lookAt, up)

	return ViewParameters{
		Eye:  c.Position,
		Rays: c.Frustrum,
	}
}

// Pack eye and corner rays into dst. The w component of each vector is zero.
func (vp ViewParameters) Pack(dst *ParamBlock) {
	put := func(slot int, v types.Vec3) {
		padded := v.Vec4(0)
		copy(dst[slot*ParamBlockStride:], padded[:])
	}

	put(0, vp.Eye)
	for i, ray := range vp.Rays {
		put(i+1, ray)
	}
}
