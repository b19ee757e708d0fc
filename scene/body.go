// Package scene assembles named rigid bodies into a simulation: it owns the
// mesh sets and derived mass properties, snapshots the ensemble into frames
// for the integrator, and prepares world-space geometry for a viewport. The
// mathematical core below it stays free of identifiers and configuration.
package scene

import (
	"github.com/google/uuid"

	"github.com/windhover/kestrel"
	"github.com/windhover/kestrel/body"
	"github.com/windhover/kestrel/solid"
)

// Body is a named rigid body: a kinematic state plus the meshes it is built
// from and their combined mass properties. Mass properties are derived data;
// after changing the mesh set the owner must call RecomputeMassProperties.
type Body struct {
	ID    uuid.UUID
	Name  string
	State body.State

	meshes []solid.Mesh
	props  solid.Properties
}

// NewBody creates a body with a fresh identifier and no meshes.
func NewBody(name string, state body.State) *Body {
	return &Body{
		ID:    uuid.New(),
		Name:  name,
		State: state,
	}
}

// AddMesh appends a mesh to the body. The stored mass properties are stale
// until RecomputeMassProperties is called.
func (b *Body) AddMesh(m solid.Mesh) {
	b.meshes = append(b.meshes, m)
}

// RecomputeMassProperties rebuilds the combined mass properties from the
// current mesh set, fusing sub-meshes through the parallel-axis composition.
func (b *Body) RecomputeMassProperties() {
	var props solid.Properties
	for i, m := range b.meshes {
		if i == 0 {
			props = solid.Compute(m)
			continue
		}
		props = props.Add(solid.Compute(m))
	}
	b.props = props
}

// MassProperties returns the properties from the last recompute.
func (b *Body) MassProperties() solid.Properties {
	return b.props
}

// WorldFaces maps every face of every mesh into the world frame at the
// body's current state.
func (b *Body) WorldFaces() []solid.Face {
	var faces []solid.Face
	for _, m := range b.meshes {
		world := m.Transform(b.State.TransformPoint)
		faces = append(faces, world.Faces...)
	}
	return faces
}

// Scene is an ordered collection of bodies sharing one simulation clock.
type Scene struct {
	Bodies  []*Body
	Time    float64
	Workers int
}

// Add appends a body; the body's index in frames follows insertion order.
func (s *Scene) Add(b *Body) {
	s.Bodies = append(s.Bodies, b)
}

// Frame snapshots the ensemble for the integrator.
func (s *Scene) Frame() kestrel.Frame {
	states := make([]body.State, len(s.Bodies))
	for i, b := range s.Bodies {
		states[i] = b.State
	}
	return kestrel.NewFrame(s.Time, states)
}

// Apply writes an integrated frame back into the bodies. The frame must
// hold one state per body in scene order.
func (s *Scene) Apply(f kestrel.Frame) {
	if len(f.Bodies) != len(s.Bodies) {
		panic("scene: frame body count does not match the scene")
	}
	s.Time = f.Time
	for i, b := range s.Bodies {
		b.State = f.Bodies[i]
	}
}

// Advance integrates the scene forward by dt under the given rate law.
func (s *Scene) Advance(dt float64, law kestrel.RateFunc) {
	s.Apply(s.Frame().Step(dt, law))
}

// WorldFaces computes every body's world-space faces, split per body. The
// per-body transforms are independent, so they fan out across the scene's
// worker count.
func (s *Scene) WorldFaces() [][]solid.Face {
	out := make([][]solid.Face, len(s.Bodies))
	task(max(1, s.Workers), s.Bodies, func(i int, b *Body) {
		out[i] = b.WorldFaces()
	})
	return out
}
