// Package gravity computes gravitational acceleration and advances ship
// kinematics with a leapfrog (velocity-Verlet) scheme. The symmetric
// half-step structure keeps orbits stable over long integrations where
// plain Euler steps would spiral.
package gravity

import (
	"orrery.space/internal/vec"
)

const secondsPerDay = 24. * 3600.

// G is the gravitational constant in km³·kg⁻¹·day⁻².
const G = 6.6743e-11 * secondsPerDay * secondsPerDay * 1e-9

// Source is a point mass contributing to the force field.
type Source struct {
	Pos  vec.Vec3
	Mass float64
}

// Acceleration sums the inverse-square attraction of the sources at a
// point, in km/day².
func Acceleration(p vec.Vec3, sources []Source) vec.Vec3 {
	var acc vec.Vec3
	for _, s := range sources {
		d := s.Pos.Sub(p)
		r := d.Length()
		if r == 0 {
			continue
		}
		acc = acc.Add(d.Scale(G * s.Mass / (r * r * r)))
	}
	return acc
}

// State is the kinematic state advanced by the integrator.
type State struct {
	Pos vec.Vec3 // km
	Vel vec.Vec3 // km/day
	Acc vec.Vec3 // km/day²
}

// Field returns the acceleration at a position. The simulation supplies a
// field that re-resolves the influence set at the queried position, so the
// trailing half-kick never uses a stale set.
type Field func(vec.Vec3) vec.Vec3

// Step advances one leapfrog step of dt days:
//
//	v½ = v + a(x)·dt/2
//	x' = x + v½·dt
//	v' = v½ + a(x')·dt/2
//
// The scheme is time-reversible: stepping forward then backward with the
// velocity negated returns to the starting state up to float rounding.
func Step(s State, dt float64, field Field) State {
	vHalf := s.Vel.Add(field(s.Pos).Scale(dt / 2))
	pos := s.Pos.Add(vHalf.Scale(dt))
	acc := field(pos)
	return State{
		Pos: pos,
		Vel: vHalf.Add(acc.Scale(dt / 2)),
		Acc: acc,
	}
}
