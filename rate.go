package kestrel

import (
	"github.com/windhover/kestrel/body"
	"github.com/windhover/kestrel/spatial"
)

// Stock rate laws. Each returns rates whose velocity/omega components are
// the bodies' own kinematic rates and whose accelerations are the law's
// forcing contribution, so laws compose through Sum.

// Coast is the zero-forcing rate function: every body keeps its current
// linear and angular velocity.
func Coast(f Frame) []body.Rate {
	rates := make([]body.Rate, len(f.Bodies))
	for i, s := range f.Bodies {
		rates[i] = s.Rate()
	}
	return rates
}

// Drag returns the linear-damping law: acceleration −linear·velocity and
// angular acceleration −angular·omega, applied per body.
func Drag(linear, angular float64) RateFunc {
	return func(f Frame) []body.Rate {
		rates := Coast(f)
		for i, s := range f.Bodies {
			rates[i].Accel = s.Velocity.Scale(-linear)
			rates[i].Alpha = s.Omega.Scale(-angular)
		}
		return rates
	}
}

// Gravity returns a uniform-field law accelerating every body by g.
func Gravity(g spatial.Vector3) RateFunc {
	return func(f Frame) []body.Rate {
		rates := Coast(f)
		for i := range rates {
			rates[i].Accel = g
		}
		return rates
	}
}

// Spring returns a law pulling every body toward anchor with the given
// stiffness (acceleration per unit displacement).
func Spring(stiffness float64, anchor spatial.Vector3) RateFunc {
	return func(f Frame) []body.Rate {
		rates := Coast(f)
		for i, s := range f.Bodies {
			rates[i].Accel = anchor.Sub(s.Position).Scale(stiffness)
		}
		return rates
	}
}

// Sum composes rate laws: the kinematic velocity/omega components are taken
// once, the acceleration contributions add. Summing no laws is Coast.
func Sum(laws ...RateFunc) RateFunc {
	return func(f Frame) []body.Rate {
		rates := Coast(f)
		for _, law := range laws {
			contrib := law(f)
			for i := range rates {
				rates[i].Accel = rates[i].Accel.Add(contrib[i].Accel)
				rates[i].Alpha = rates[i].Alpha.Add(contrib[i].Alpha)
			}
		}
		return rates
	}
}
