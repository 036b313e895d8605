package scene

import (
	"fmt"

	"github.com/achilleasa/glray/types"
)

// Image plane corners, in the order their eye rays are stored in a Frustrum.
var frustrumCorners = [4]types.Vec2{
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}

// Stores the ray directions at the four corners of the camera frustrum. The
// sample generator builds per pixel rays by interpolating the corner rays.
// Rays are ordered bottom-left, top-left, bottom-right, top-right.
type Frustrum [4]types.Vec3

func (fr Frustrum) String() string {
	return fmt.Sprintf(
		"Frustrum Rays:\nBL : (%3.3f, %3.3f, %3.3f)\nTL : (%3.3f, %3.3f, %3.3f)\nBR : (%3.3f, %3.3f, %3.3f)\nTR : (%3.3f, %3.3f, %3.3f)",
		fr[0][0], fr[0][1], fr[0][2],
		fr[1][0], fr[1][1], fr[1][2],
		fr[2][0], fr[2][1], fr[2][2],
		fr[3][0], fr[3][1], fr[3][2],
	)
}

// The camera type controls the scene camera.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	ViewMat  types.Mat4
	ProjMat  types.Mat4
	Frustrum Frustrum

	// Vertical field of view in degrees.
	FOV float32

	// Clip plane distances.
	Near float32
	Far  float32
}

func NewCamera(fov, near, far float32) *Camera {
	return &Camera{
		ViewMat:  types.Ident4(),
		ProjMat:  types.Perspective4(fov, 1, near, far),
		Position: types.Vec3{0, 0, 0},
		LookAt:   types.Vec3{0, 0, -1},
		Up:       types.Vec3{0, 1, 0},
		FOV:      fov,
		Near:     near,
		Far:      far,
	}
}

// Setup camera projection matrix.
func (c *Camera) SetupProjection(aspect float32) {
	c.ProjMat = types.Perspective4(c.FOV, aspect, c.Near, c.Far)
	c.Update()
}

// Place the camera eye at the given position looking at lookAt.
func (c *Camera) SetLookAt(eye, lookAt, up types.Vec3) {
	c.Position = eye
	c.LookAt = lookAt
	c.Up = up
	c.Update()
}

// Update the view matrix and the frustrum corner rays.
func (c *Camera) Update() {
	c.ViewMat = types.LookAtV(c.Position, c.LookAt, c.Up)
	c.updateFrustrum()
}

func (c *Camera) InvViewProjMat() types.Mat4 {
	return c.ProjMat.Mul4(c.ViewMat).Inv()
}

// Get the eye ray through the near plane point with normalized device
// coordinates (x, y).
func (c *Camera) EyeRay(x, y float32) types.Vec3 {
	return c.eyeRay(c.InvViewProjMat(), x, y)
}

// Generate a ray vector for a clip space point by multiplying it with the inv
// proj/view matrix, applying perspective and subtracting the camera eye position.
func (c *Camera) eyeRay(invProjViewMat types.Mat4, x, y float32) types.Vec3 {
	v := invProjViewMat.Mul4x1(types.XYZW(x, y, -1, 1))
	return v.Mul(1.0 / v[3]).Vec3().Sub(c.Position)
}

func (c *Camera) updateFrustrum() {
	invProjViewMat := c.InvViewProjMat()
	for i, corner := range frustrumCorners {
		c.Frustrum[i] = c.eyeRay(invProjViewMat, corner[0], corner[1])
	}
}
