// Package body holds the per-body kinematic state of the simulation: a
// position/orientation/velocity snapshot and its time-derivative bundle,
// with the single explicit-Euler sub-step the Runge-Kutta integrator builds
// on. Everything is an immutable value; stepping returns new states.
package body

import (
	"github.com/windhover/kestrel/spatial"
)

// State is a rigid body's kinematic snapshot at one instant: world position,
// orientation quaternion, linear velocity and angular velocity.
type State struct {
	Position    spatial.Vector3
	Orientation spatial.Quaternion
	Velocity    spatial.Vector3
	Omega       spatial.Vector3
}

// NewState returns a body at rest at the origin with identity orientation.
func NewState() State {
	return State{Orientation: spatial.QuatIdentity()}
}

// Rate is the time derivative of a State: velocity and angular velocity
// (the rates of position and orientation) plus linear and angular
// acceleration. Rates form a vector space, which the RK4 weighted stage
// combination relies on.
type Rate struct {
	Velocity spatial.Vector3
	Omega    spatial.Vector3
	Accel    spatial.Vector3
	Alpha    spatial.Vector3
}

// Add returns r + s component-wise.
func (r Rate) Add(s Rate) Rate {
	return Rate{
		Velocity: r.Velocity.Add(s.Velocity),
		Omega:    r.Omega.Add(s.Omega),
		Accel:    r.Accel.Add(s.Accel),
		Alpha:    r.Alpha.Add(s.Alpha),
	}
}

// Scale returns f*r component-wise.
func (r Rate) Scale(f float64) Rate {
	return Rate{
		Velocity: r.Velocity.Scale(f),
		Omega:    r.Omega.Scale(f),
		Accel:    r.Accel.Scale(f),
		Alpha:    r.Alpha.Scale(f),
	}
}

// Step advances the state by one explicit Euler sub-step of length dt under
// the given rate: position by dt·velocity, orientation by composing the
// incremental rotation of the rate's angular velocity (pre-multiplied onto
// the current orientation), velocity and omega by dt times the
// accelerations. The orientation is renormalized after composition so
// accumulated steps stay on the unit sphere.
func (s State) Step(dt float64, rate Rate) State {
	inc := spatial.QuatFromRotVelocityAndTime(rate.Omega, dt)
	return State{
		Position:    s.Position.Add(rate.Velocity.Scale(dt)),
		Orientation: inc.Product(s.Orientation).Normalize(),
		Velocity:    s.Velocity.Add(rate.Accel.Scale(dt)),
		Omega:       s.Omega.Add(rate.Alpha.Scale(dt)),
	}
}

// Rate returns the state's own kinematic rate with zero accelerations, the
// derivative of a body coasting force-free.
func (s State) Rate() Rate {
	return Rate{Velocity: s.Velocity, Omega: s.Omega}
}

// Transform maps local-frame points into the world frame through
// position + R·point. The returned slice is freshly allocated.
func (s State) Transform(points []spatial.Vector3) []spatial.Vector3 {
	world := make([]spatial.Vector3, len(points))
	for i, p := range points {
		world[i] = s.Position.Add(s.Orientation.Rotate(p))
	}
	return world
}

// TransformPoint maps a single local-frame point into the world frame.
func (s State) TransformPoint(p spatial.Vector3) spatial.Vector3 {
	return s.Position.Add(s.Orientation.Rotate(p))
}
