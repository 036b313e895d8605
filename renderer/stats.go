package renderer

import "time"

type FrameStats struct {
	// Number of rendered frames.
	Frames uint64

	// Accumulated samples and bounce count after the last frame.
	SampleCount uint32
	BounceCount int

	// Accumulation resets by cause.
	Resets map[ResetCause]uint64

	// Number of render target allocations.
	TargetAllocations uint64

	// Total render time for all frames and for the last frame.
	RenderTime    time.Duration
	LastFrameTime time.Duration
}

// Get the mean time per frame.
func (s FrameStats) MeanFrameTime() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.RenderTime / time.Duration(s.Frames)
}

// Get the mean frame rate.
func (s FrameStats) FPS() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.Frames) / s.RenderTime.Seconds()
}
