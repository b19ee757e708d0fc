// Package kestrel integrates ensembles of rigid bodies through time with a
// fixed-step classical Runge-Kutta scheme. The physics model is injected as
// a rate function mapping a frame to one derivative bundle per body; the
// package itself knows nothing about forces.
package kestrel

import (
	"fmt"

	"github.com/windhover/kestrel/body"
)

// RateFunc is the physics plug-in point: a pure function taking a whole
// frame and returning exactly one rate per body, in body order. Returning a
// different count is a fatal usage error.
type RateFunc func(Frame) []body.Rate

// Frame is the whole system's state at one simulation instant: a time tag
// and one kinematic state per body. Frames are immutable; stepping produces
// a new frame.
type Frame struct {
	Time   float64
	Bodies []body.State
}

// NewFrame builds a frame at the given time. The state slice is copied so
// later caller mutations cannot reach into the frame.
func NewFrame(time float64, states []body.State) Frame {
	bodies := make([]body.State, len(states))
	copy(bodies, states)
	return Frame{Time: time, Bodies: bodies}
}

// Step advances the ensemble by one classical 4th-order Runge-Kutta step of
// length dt. The four stages are evaluated at t, t+dt/2, t+dt/2 and t+dt
// (the third stage advances by the full dt using the second midpoint rate),
// then blended with weights 1/6, 1/3, 1/3, 1/6 per body. One rate-function
// call per stage covers all bodies, so coupled models see a consistent
// snapshot.
func (f Frame) Step(dt float64, rateFn RateFunc) Frame {
	k0 := f.rates(rateFn)
	k1 := f.substep(dt/2, k0).rates(rateFn)
	k2 := f.substep(dt/2, k1).rates(rateFn)
	k3 := f.substep(dt, k2).rates(rateFn)

	next := Frame{Time: f.Time + dt, Bodies: make([]body.State, len(f.Bodies))}
	for i := range f.Bodies {
		k := k0[i].Scale(1.0 / 6).
			Add(k1[i].Scale(1.0 / 3)).
			Add(k2[i].Scale(1.0 / 3)).
			Add(k3[i].Scale(1.0 / 6))
		next.Bodies[i] = f.Bodies[i].Step(dt, k)
	}
	return next
}

// substep advances every body by one Euler sub-step under the given stage
// rates, producing the intermediate frame the next stage is evaluated on.
func (f Frame) substep(dt float64, rates []body.Rate) Frame {
	stage := Frame{Time: f.Time + dt, Bodies: make([]body.State, len(f.Bodies))}
	for i, s := range f.Bodies {
		stage.Bodies[i] = s.Step(dt, rates[i])
	}
	return stage
}

// rates evaluates the rate function and enforces the one-rate-per-body
// contract. A mismatched count is never truncated or padded.
func (f Frame) rates(rateFn RateFunc) []body.Rate {
	rates := rateFn(f)
	if len(rates) != len(f.Bodies) {
		panic(fmt.Sprintf("kestrel: rate function returned %d rates for %d bodies", len(rates), len(f.Bodies)))
	}
	return rates
}
