// Package orbit advances bodies along Keplerian ellipses. Angles are
// handled in degrees throughout, matching the JPL approximate-ephemeris
// formulation (https://ssd.jpl.nasa.gov/planets/approx_pos.html); distances
// are kilometers and rates are per-day.
package orbit

import (
	"math"

	"orrery.space/internal/vec"
)

// Tolerance for the Newton correction on the eccentric anomaly, in degrees.
const eTolerance = 1e-6

// maxKeplerIterations caps the Newton refinement. Near-parabolic orbits may
// exhaust the cap; the last estimate is accepted rather than reported.
const maxKeplerIterations = 10

// Elliptical holds the fixed orbital elements of a body and the kinematic
// state derived from them at the last propagation time.
type Elliptical struct {
	Eccentricity       float64
	SemimajorAxis      float64 // km
	Inclination        float64 // degrees
	LongAscNode        float64 // degrees
	ArgPeriapsis       float64 // degrees
	InitialMeanAnomaly float64 // degrees
	RevolutionPeriod   float64 // days; zero pins the body at its frame origin

	MeanAnomaly      float64 // degrees
	EccentricAnomaly float64 // degrees

	// Position and velocity in the orbital plane around the host body.
	PlanePos vec.Vec2
	PlaneVel vec.Vec2

	// Position (km) and velocity (km/day) with respect to the host body.
	LocalPos vec.Vec3
	LocalVel vec.Vec3
}

// Mod180 normalizes an angle in degrees to [-180, 180).
func Mod180(deg float64) float64 {
	deg = math.Mod(deg+180, 360)
	if deg < 0 {
		deg += 360
	}
	return deg - 180
}

// SolveKepler finds the eccentric anomaly E (degrees) such that
// M = E - e·sin(E), for a mean anomaly M in degrees and eccentricity e.
// It returns the number of Newton iterations spent. The iteration cap is
// never reported as an error; the last estimate is used as-is.
func SolveKepler(M, e float64) (float64, int) {
	ed := e * 180 / math.Pi
	E := M + ed*math.Sin(M*math.Pi/180)
	iters := 0
	for i := 0; i < maxKeplerIterations; i++ {
		iters++
		dM := M - (E - ed*math.Sin(E*math.Pi/180))
		dE := dM / (1 - e*math.Cos(E*math.Pi/180))
		E += dE
		if math.Abs(dE) <= eTolerance {
			break
		}
	}
	return E, iters
}

func (o *Elliptical) updateMeanAnomaly(timeDays float64) {
	if o.RevolutionPeriod == 0 {
		return
	}
	o.MeanAnomaly = Mod180(o.InitialMeanAnomaly + 360*timeDays/o.RevolutionPeriod)
}

func (o *Elliptical) updateEccentricAnomaly(timeDays float64) int {
	o.updateMeanAnomaly(timeDays)
	E, iters := SolveKepler(o.MeanAnomaly, o.Eccentricity)
	o.EccentricAnomaly = E
	return iters
}

func (o *Elliptical) updatePlaneState(timeDays float64) int {
	iters := o.updateEccentricAnomaly(timeDays)
	a := o.SemimajorAxis
	e := o.Eccentricity
	E := o.EccentricAnomaly * math.Pi / 180
	o.PlanePos = vec.Vec2{
		X: a * (math.Cos(E) - e),
		Y: a * math.Sqrt(1-e*e) * math.Sin(E),
	}
	if o.RevolutionPeriod == 0 {
		return iters
	}
	// Velocity from the anomaly rates: Mdot is the mean motion, Edot
	// follows from differentiating Kepler's equation.
	Mdot := 2 * math.Pi / o.RevolutionPeriod
	Edot := Mdot / (1 - e*math.Cos(E))
	o.PlaneVel = vec.Vec2{
		X: -a * math.Sin(E) * Edot,
		Y: a * math.Cos(E) * Edot * math.Sqrt(1-e*e),
	}
	return iters
}

// Propagate recomputes the orbital-plane and host-frame kinematics for the
// given simulated time in days. It returns the number of Kepler iterations
// spent. The result depends only on the elements and the time, so bodies
// can be propagated in parallel.
func (o *Elliptical) Propagate(timeDays float64) int {
	iters := o.updatePlaneState(timeDays)
	w := o.ArgPeriapsis * math.Pi / 180
	node := o.LongAscNode * math.Pi / 180
	incl := o.Inclination * math.Pi / 180
	o.LocalPos = rotate(o.PlanePos, w, node, incl)
	o.LocalVel = rotate(o.PlaneVel, w, node, incl)
	return iters
}

// rotate maps an orbital-plane vector to the host body's reference frame by
// the standard 3-1-3 rotation: argument of periapsis around z, inclination
// around x, then longitude of ascending node around z.
func rotate(v vec.Vec2, argPeriapsis, longAscNode, inclination float64) vec.Vec3 {
	// Rotate around z by the argument of periapsis.
	x := v.X*math.Cos(argPeriapsis) - v.Y*math.Sin(argPeriapsis)
	y := v.X*math.Sin(argPeriapsis) + v.Y*math.Cos(argPeriapsis)

	// Rotate around x by the inclination.
	z := y * math.Sin(inclination)
	y = y * math.Cos(inclination)

	// Rotate around z by the longitude of the ascending node.
	return vec.Vec3{
		X: x*math.Cos(longAscNode) - y*math.Sin(longAscNode),
		Y: x*math.Sin(longAscNode) + y*math.Cos(longAscNode),
		Z: z,
	}
}
