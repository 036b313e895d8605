package scene

import "github.com/achilleasa/glray/types"

// The state of the orbit camera input model.
type DragState uint8

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Orbit maps horizontal pointer drags to a rotation of the camera around the
// Y axis. While a drag is in progress the effective angle is provisional and
// derived from the pointer position; releasing the pointer commits it.
//
// Orbit is not safe for concurrent use. All methods are expected to be
// invoked from the thread that polls window events and drives the frame loop.
type Orbit struct {
	// The angle (in radians) committed by the last completed drag.
	CommittedAngle float32

	// Radians of rotation per pixel of horizontal pointer movement.
	Sensitivity float32

	state      DragState
	dragStartX float32
	pointer    types.Vec2
}

// Create a new orbit input model with the given committed angle.
func NewOrbit(angle, sensitivity float32) *Orbit {
	return &Orbit{
		CommittedAngle: angle,
		Sensitivity:    sensitivity,
	}
}

// Get the current input state.
func (o *Orbit) State() DragState {
	return o.state
}

// Returns true while a drag is in progress.
func (o *Orbit) Dragging() bool {
	return o.state == Dragging
}

// Get the last tracked pointer position.
func (o *Orbit) Pointer() types.Vec2 {
	return o.pointer
}

// Track the pointer position. While dragging, the effective angle follows
// the pointer on the next call to Angle.
func (o *Orbit) MoveTo(x, y float32) {
	o.pointer = types.XY(x, y)
}

// Start a drag at the current pointer position. Returns false if a drag is
// already in progress.
func (o *Orbit) Press() bool {
	if o.state == Dragging {
		return false
	}

	o.dragStartX = o.pointer[0]
	o.state = Dragging
	return true
}

// Finish the current drag and commit the provisional angle. Returns false if
// no drag was in progress.
func (o *Orbit) Release() bool {
	if o.state != Dragging {
		return false
	}

	o.CommittedAngle = o.Angle()
	o.state = Idle
	return true
}

// Get the effective orbit angle: the provisional angle while dragging or the
// committed angle otherwise.
func (o *Orbit) Angle() float32 {
	if o.state != Dragging {
		return o.CommittedAngle
	}

	return o.CommittedAngle + (o.pointer[0]-o.dragStartX)*o.Sensitivity
}
