package renderer

import (
	"math"
	"testing"
)

func TestBlendWeightRange(t *testing.T) {
	prev := -1.0
	for n := uint32(0); n < 100000; n++ {
		w := BlendWeight(n)
		if w < 0 || w >= 1 {
			t.Fatalf("expected weight for %d samples to be in [0, 1); got %f", n, w)
		}
		if w <= prev {
			t.Fatalf("expected weight for %d samples to exceed %f; got %f", n, prev, w)
		}
		prev = w
	}

	for _, n := range []uint32{1 << 24, 1 << 31, math.MaxUint32} {
		if w := BlendWeight(n); w >= 1 {
			t.Fatalf("expected weight for %d samples to be below 1; got %f", n, w)
		}

		acc := NewAccumulation(1, 1, 1, 1, 4)
		acc.SampleCount = n
		if w := acc.BlendWeight(); w >= 1 {
			t.Fatalf("expected float32 weight for %d samples to be below 1; got %f", n, w)
		}
	}
}

func TestBlendWeightSequence(t *testing.T) {
	expWeights := []float64{0, 0.5, 2.0 / 3.0, 0.75, 0.8}
	for n, exp := range expWeights {
		if got := BlendWeight(uint32(n)); math.Abs(got-exp) > 1e-9 {
			t.Fatalf("[spec %d] expected weight %f; got %f", n, exp, got)
		}
	}
}

func TestNoteBounceCountChanged(t *testing.T) {
	type spec struct {
		current    int
		requested  int
		expStored  int
		expChanged bool
	}
	specs := []spec{
		{1, 1, 1, false},
		{1, 2, 2, true},
		{4, 3, 3, true},
		// Out of range requests are clamped.
		{2, 0, 1, true},
		{2, -5, 1, true},
		{2, 9, 4, true},
		// Clamping to the current value must not reset accumulation.
		{1, 0, 1, false},
		{4, 5, 4, false},
		{4, 100, 4, false},
	}

	for index, s := range specs {
		acc := NewAccumulation(1024, 768, s.current, 1, 4)
		acc.SampleCount = 7

		changed := acc.NoteBounceCountChanged(s.requested)
		if changed != s.expChanged {
			t.Fatalf("[spec %d] expected changed to be %t; got %t", index, s.expChanged, changed)
		}
		if acc.BounceCount() != s.expStored {
			t.Fatalf("[spec %d] expected bounce count %d; got %d", index, s.expStored, acc.BounceCount())
		}

		expSamples := uint32(7)
		if s.expChanged {
			expSamples = 0
		}
		if acc.SampleCount != expSamples {
			t.Fatalf("[spec %d] expected sample count %d; got %d", index, expSamples, acc.SampleCount)
		}
	}
}

func TestNoteViewportResized(t *testing.T) {
	type spec struct {
		w, h       int
		expResize  bool
		expW, expH int
		expSamples uint32
	}
	specs := []spec{
		{1024, 768, false, 1024, 768, 10},
		{0, 768, false, 1024, 768, 10},
		{1024, 0, false, 1024, 768, 10},
		{-1, -1, false, 1024, 768, 10},
		{800, 768, true, 800, 768, 0},
		{1024, 600, true, 1024, 600, 0},
		{1920, 1080, true, 1920, 1080, 0},
	}

	for index, s := range specs {
		acc := NewAccumulation(1024, 768, 1, 1, 4)
		acc.clearPendingResize()
		acc.SampleCount = 10

		if got := acc.NoteViewportResized(s.w, s.h); got != s.expResize {
			t.Fatalf("[spec %d] expected resize to be %t; got %t", index, s.expResize, got)
		}
		if acc.PendingResize() != s.expResize {
			t.Fatalf("[spec %d] expected pending resize to be %t; got %t", index, s.expResize, acc.PendingResize())
		}
		if w, h := acc.Viewport(); w != s.expW || h != s.expH {
			t.Fatalf("[spec %d] expected viewport %dx%d; got %dx%d", index, s.expW, s.expH, w, h)
		}
		if acc.SampleCount != s.expSamples {
			t.Fatalf("[spec %d] expected sample count %d; got %d", index, s.expSamples, acc.SampleCount)
		}
	}
}

func TestResetCauses(t *testing.T) {
	acc := NewAccumulation(1024, 768, 1, 1, 4)
	acc.NoteOrientationChanging()
	acc.NoteOrientationChanging()
	acc.NoteBounceCountChanged(2)
	acc.NoteBounceCountChanged(2)
	acc.NoteViewportResized(10, 10)

	expResets := map[ResetCause]uint64{
		OrientationChanged: 2,
		BounceCountChanged: 1,
		ViewportResized:    1,
	}
	for cause, exp := range expResets {
		if got := acc.Resets(cause); got != exp {
			t.Fatalf("expected %d resets caused by %s; got %d", exp, cause, got)
		}
	}
}

func TestInitialStateRequestsTargetSetup(t *testing.T) {
	acc := NewAccumulation(1024, 768, 7, 1, 4)
	if !acc.PendingResize() {
		t.Fatal("expected a new accumulation to request render target setup")
	}
	if acc.SampleCount != 0 {
		t.Fatalf("expected sample count to start at 0; got %d", acc.SampleCount)
	}
	if acc.BounceCount() != 4 {
		t.Fatalf("expected initial bounce count to be clamped to 4; got %d", acc.BounceCount())
	}
}
