package renderer

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/achilleasa/glray/scene"
	"github.com/achilleasa/glray/types"
)

type controllerFixture struct {
	ctrl    *Controller
	acc     *Accumulation
	orbit   *scene.Orbit
	targets *TargetManager
	dev     *fakeDevice
}

func newControllerFixture(t *testing.T, opts Options) *controllerFixture {
	f := &controllerFixture{
		dev:   &fakeDevice{},
		orbit: scene.NewOrbit(opts.OrbitAngle, opts.MouseSensitivity),
		acc:   NewAccumulation(opts.FrameW, opts.FrameH, opts.BounceCount, opts.MinBounces, opts.MaxBounces),
	}
	f.targets = NewTargetManager(f.dev)
	if err := f.targets.Create(opts.FrameW, opts.FrameH); err != nil {
		t.Fatal(err)
	}
	f.ctrl = NewController(opts, f.orbit, f.acc, f.targets, f.dev)
	f.ctrl.now = steppingClock(10 * time.Millisecond)
	return f
}

func (f *controllerFixture) step(t *testing.T) FrameInfo {
	info, err := f.ctrl.StepFrame()
	if err != nil {
		t.Fatal(err)
	}
	return info
}

func TestStepFrameAccumulates(t *testing.T) {
	opts := DefaultOptions()
	opts.OrbitAngle = 0
	f := newControllerFixture(t, opts)

	expWeights := []float32{0, 0.5, 0.6666667, 0.75, 0.8}
	for index, exp := range expWeights {
		info := f.step(t)
		if math.Abs(float64(info.BlendWeight-exp)) > 1e-6 {
			t.Fatalf("[frame %d] expected blend weight %f; got %f", index, exp, info.BlendWeight)
		}

		req := f.dev.lastRequest()
		if req.BlendWeight != info.BlendWeight {
			t.Fatalf("[frame %d] expected generator to receive weight %f; got %f", index, info.BlendWeight, req.BlendWeight)
		}
		if req.BounceCount != 1 || req.Width != 1024 || req.Height != 768 {
			t.Fatalf("[frame %d] expected 1 bounce at 1024x768; got %d bounce(s) at %dx%d", index, req.BounceCount, req.Width, req.Height)
		}
		if expElapsed := time.Duration(index) * 10 * time.Millisecond; req.Elapsed != expElapsed {
			t.Fatalf("[frame %d] expected elapsed time %s; got %s", index, expElapsed, req.Elapsed)
		}
		if req.Target != f.targets.Surface() {
			t.Fatalf("[frame %d] expected generator to write into the managed render target", index)
		}
	}

	if f.acc.SampleCount != 5 {
		t.Fatalf("expected 5 accumulated samples; got %d", f.acc.SampleCount)
	}

	block := f.ctrl.ParamBlock()
	eye := types.XYZ(block[0], block[1], block[2])
	if !eye.ApproxEqual(types.XYZ(0, 2, 3), 1e-5) {
		t.Fatalf("expected eye to be (0, 2, 3); got %v", eye)
	}
	if f.dev.lastRequest().Camera == nil || *f.dev.lastRequest().Camera != block {
		t.Fatal("expected generator to receive the packed camera block")
	}

	// The initial target setup must not reallocate a matching surface.
	if f.targets.Allocations() != 1 {
		t.Fatalf("expected a single render target allocation; got %d", f.targets.Allocations())
	}
}

func TestStepFrameDragResetsEveryFrame(t *testing.T) {
	opts := DefaultOptions()
	f := newControllerFixture(t, opts)
	input := NewInputHandler(f.orbit, f.acc, &fakeWindow{})

	f.step(t)
	f.step(t)
	if f.acc.SampleCount != 2 {
		t.Fatalf("expected 2 samples before dragging; got %d", f.acc.SampleCount)
	}

	input.OnCursorPos(100, 100)
	input.OnMouseButton(Press)

	// A drag with no horizontal movement still resets accumulation.
	for frame := 0; frame < 3; frame++ {
		input.OnCursorPos(100+float64(frame)*10, 100)
		info := f.step(t)
		if !info.Dragging {
			t.Fatalf("[frame %d] expected frame to be rendered while dragging", frame)
		}
		if info.BlendWeight != 0 || f.acc.SampleCount != 0 {
			t.Fatalf("[frame %d] expected weight 0 and no samples while dragging; got %f and %d", frame, info.BlendWeight, f.acc.SampleCount)
		}
		expAngle := opts.OrbitAngle + float32(frame)*10*opts.MouseSensitivity
		if math.Abs(float64(info.Angle-expAngle)) > 1e-6 {
			t.Fatalf("[frame %d] expected provisional angle %f; got %f", frame, expAngle, info.Angle)
		}
	}

	input.OnMouseButton(Release)
	if f.acc.SampleCount != 0 {
		t.Fatalf("expected release to leave 0 samples; got %d", f.acc.SampleCount)
	}

	expAngle := opts.OrbitAngle + 0.2
	for frame, expSamples := range []uint32{1, 2, 3} {
		info := f.step(t)
		if info.Dragging {
			t.Fatalf("[frame %d] expected frame after release not to be dragging", frame)
		}
		if info.SampleCount != expSamples {
			t.Fatalf("[frame %d] expected %d samples after release; got %d", frame, expSamples, info.SampleCount)
		}
		if math.Abs(float64(info.Angle-expAngle)) > 1e-6 {
			t.Fatalf("[frame %d] expected committed angle %f; got %f", frame, expAngle, info.Angle)
		}
	}
}

func TestStepFrameRecreatesTargetOnResize(t *testing.T) {
	f := newControllerFixture(t, DefaultOptions())
	for i := 0; i < 3; i++ {
		f.step(t)
	}
	oldSurface := f.dev.surfaces[0]

	if !f.acc.NoteViewportResized(640, 480) {
		t.Fatal("expected resize to be accepted")
	}
	if f.acc.SampleCount != 0 {
		t.Fatalf("expected resize to reset samples; got %d", f.acc.SampleCount)
	}

	info := f.step(t)
	if !info.Resized {
		t.Fatal("expected render target to be recreated")
	}
	if !oldSurface.released {
		t.Fatal("expected old render target to be released")
	}

	surface := f.targets.Surface()
	if surface.Width() != 640 || surface.Height() != 480 {
		t.Fatalf("expected render target to be 640x480; got %dx%d", surface.Width(), surface.Height())
	}
	req := f.dev.lastRequest()
	if req.Width != 640 || req.Height != 480 || req.BlendWeight != 0 || req.Target != surface {
		t.Fatalf("expected first frame after resize to render 640x480 with weight 0 into the new target; got %dx%d weight %f", req.Width, req.Height, req.BlendWeight)
	}
	if f.acc.PendingResize() {
		t.Fatal("expected pending resize flag to be cleared")
	}
	if f.targets.Allocations() != 2 {
		t.Fatalf("expected 2 render target allocations; got %d", f.targets.Allocations())
	}
}

func TestStepFrameSameSizeResizeIsNoop(t *testing.T) {
	f := newControllerFixture(t, DefaultOptions())
	for i := 0; i < 10; i++ {
		f.step(t)
	}

	if f.acc.NoteViewportResized(1024, 768) {
		t.Fatal("expected resize to the current dimensions to be ignored")
	}
	if f.acc.SampleCount != 10 {
		t.Fatalf("expected 10 samples to survive a no-op resize; got %d", f.acc.SampleCount)
	}

	info := f.step(t)
	if info.Resized || f.targets.Allocations() != 1 {
		t.Fatalf("expected no render target recreation; got %d allocations", f.targets.Allocations())
	}
	if info.SampleCount != 11 {
		t.Fatalf("expected 11 samples; got %d", info.SampleCount)
	}
}

func TestStepFrameBounceCountChange(t *testing.T) {
	f := newControllerFixture(t, DefaultOptions())
	f.step(t)
	f.step(t)

	f.acc.NoteBounceCountChanged(3)
	info := f.step(t)
	if info.BlendWeight != 0 || info.SampleCount != 1 {
		t.Fatalf("expected bounce count change to restart accumulation; got weight %f and %d samples", info.BlendWeight, info.SampleCount)
	}
	if req := f.dev.lastRequest(); req.BounceCount != 3 {
		t.Fatalf("expected generator to receive 3 bounces; got %d", req.BounceCount)
	}
}

func TestStepFrameGeneratorFailure(t *testing.T) {
	f := newControllerFixture(t, DefaultOptions())
	f.step(t)

	f.dev.failGenerate = true
	if _, err := f.ctrl.StepFrame(); err == nil {
		t.Fatal("expected generator error to be returned")
	}
	if f.acc.SampleCount != 1 {
		t.Fatalf("expected failed frame not to be counted; got %d samples", f.acc.SampleCount)
	}
}

func TestResizeWhileFrameInFlight(t *testing.T) {
	f := newControllerFixture(t, DefaultOptions())

	var resizeErr error
	f.dev.onGenerate = func() {
		resizeErr = f.targets.Resize(32, 32)
	}
	f.step(t)

	if !errors.Is(resizeErr, ErrResizeInFlight) {
		t.Fatalf("expected to get %v; got %v", ErrResizeInFlight, resizeErr)
	}
	if s := f.targets.Surface(); s.Width() != 1024 || s.Height() != 768 {
		t.Fatalf("expected in-flight render target to keep its dimensions; got %dx%d", s.Width(), s.Height())
	}
}

func TestStepFrameSurfaceFailure(t *testing.T) {
	f := newControllerFixture(t, DefaultOptions())
	f.step(t)

	f.dev.failCreate = true
	f.acc.NoteViewportResized(320, 200)
	_, err := f.ctrl.StepFrame()
	if err == nil {
		t.Fatal("expected render target allocation failure to be fatal")
	}
}
