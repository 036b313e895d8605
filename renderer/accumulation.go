package renderer

import "math"

// The largest float32 weight below 1.
var maxBlendWeight = math.Nextafter32(1, 0)

// The reasons for discarding the accumulated image.
type ResetCause uint8

const (
	OrientationChanged ResetCause = iota
	BounceCountChanged
	ViewportResized
	numResetCauses
)

func (c ResetCause) String() string {
	switch c {
	case OrientationChanged:
		return "orientation"
	case BounceCountChanged:
		return "bounce count"
	case ViewportResized:
		return "viewport resize"
	}
	return "unknown"
}

// Get the weight of the already accumulated image when blending in a new
// sample after sampleCount samples have been accumulated.
func BlendWeight(sampleCount uint32) float64 {
	n := float64(sampleCount)
	return n / (n + 1)
}

// Accumulation tracks the number of accumulated samples and the conditions
// that invalidate them.
type Accumulation struct {
	// Number of samples blended into the render target since the last reset.
	SampleCount uint32

	bounceCount int
	minBounces  int
	maxBounces  int

	width  int
	height int

	// Set when the render target must be recreated before the next frame.
	pendingResize bool

	resets [numResetCauses]uint64
}

// Create a new accumulation tracker for the given viewport. The render target
// is flagged for recreation so the first frame sets up the projection.
func NewAccumulation(width, height, bounceCount, minBounces, maxBounces int) *Accumulation {
	return &Accumulation{
		bounceCount:   clamp(bounceCount, minBounces, maxBounces),
		minBounces:    minBounces,
		maxBounces:    maxBounces,
		width:         width,
		height:        height,
		pendingResize: true,
	}
}

// Get the current bounce count.
func (a *Accumulation) BounceCount() int {
	return a.bounceCount
}

// Get the current viewport dimensions.
func (a *Accumulation) Viewport() (int, int) {
	return a.width, a.height
}

// Returns true if the render target must be recreated before the next frame.
func (a *Accumulation) PendingResize() bool {
	return a.pendingResize
}

// Get the weight of the accumulated image for the next frame as a float32
// in [0, 1).
func (a *Accumulation) BlendWeight() float32 {
	w := float32(BlendWeight(a.SampleCount))
	if w > maxBlendWeight {
		return maxBlendWeight
	}
	return w
}

// Get the number of resets caused by c.
func (a *Accumulation) Resets(c ResetCause) uint64 {
	return a.resets[c]
}

// Discard the accumulated samples because the camera orientation is changing.
func (a *Accumulation) NoteOrientationChanging() {
	a.reset(OrientationChanged)
}

// Set the bounce count, clamped to the configured range. Accumulation is
// reset only if the clamped value differs from the current one. Returns true
// if the bounce count changed.
func (a *Accumulation) NoteBounceCountChanged(count int) bool {
	count = clamp(count, a.minBounces, a.maxBounces)
	if count == a.bounceCount {
		return false
	}

	a.bounceCount = count
	a.reset(BounceCountChanged)
	return true
}

// Record new viewport dimensions. Zero sized viewports (e.g. minimized
// windows) and unchanged dimensions are ignored. Returns true if the render
// target needs to be recreated.
func (a *Accumulation) NoteViewportResized(width, height int) bool {
	if width <= 0 || height <= 0 || (width == a.width && height == a.height) {
		return false
	}

	a.width, a.height = width, height
	a.pendingResize = true
	a.reset(ViewportResized)
	return true
}

func (a *Accumulation) clearPendingResize() {
	a.pendingResize = false
}

// Count a successfully accumulated sample.
func (a *Accumulation) advance() {
	a.SampleCount++
}

func (a *Accumulation) reset(cause ResetCause) {
	a.SampleCount = 0
	a.resets[cause]++
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
