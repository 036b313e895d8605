package renderer

import (
	"fmt"

	"github.com/achilleasa/glray/tracer"
)

// TargetManager owns the accumulation surface. The surface is never resized
// in place; a resize releases it and allocates a new one.
type TargetManager struct {
	factory tracer.SurfaceFactory
	surface tracer.Surface

	// Set while a sample generator invocation uses the surface.
	inFlight bool

	// Number of surface allocations.
	allocations uint64
}

// Create a target manager that allocates surfaces through factory.
func NewTargetManager(factory tracer.SurfaceFactory) *TargetManager {
	return &TargetManager{factory: factory}
}

// Allocate the initial surface.
func (m *TargetManager) Create(width, height int) error {
	if m.surface != nil {
		return m.Resize(width, height)
	}
	return m.allocate(width, height)
}

// Recreate the surface with the given dimensions. Calling Resize with the
// current dimensions is a no-op.
func (m *TargetManager) Resize(width, height int) error {
	if m.inFlight {
		return ErrResizeInFlight
	}
	if m.surface != nil && m.surface.Width() == width && m.surface.Height() == height {
		return nil
	}

	m.Release()
	return m.allocate(width, height)
}

// Get the current surface or nil if none is allocated.
func (m *TargetManager) Surface() tracer.Surface {
	return m.surface
}

// Get the number of surfaces allocated so far.
func (m *TargetManager) Allocations() uint64 {
	return m.allocations
}

// Lend the surface to fn for one read-modify-write pass. The surface cannot
// be resized until fn returns.
func (m *TargetManager) Borrow(fn func(tracer.Surface) error) error {
	if m.surface == nil {
		return ErrNoRenderTarget
	}

	m.inFlight = true
	defer func() { m.inFlight = false }()
	return fn(m.surface)
}

// Release the surface.
func (m *TargetManager) Release() {
	if m.surface != nil {
		m.surface.Release()
		m.surface = nil
	}
}

func (m *TargetManager) allocate(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	surface, err := m.factory.CreateSurface(width, height)
	if err != nil {
		return fmt.Errorf("renderer: could not create %dx%d render target: %w", width, height, err)
	}

	m.surface = surface
	m.allocations++
	return nil
}
