// Package influence resolves which bodies gravitationally dominate a point
// in space. Each body owns a dominance sphere (a Hill-radius-like region);
// the innermost sphere containing a point names the dominant body, and the
// chain of containing spheres names the set of bodies worth summing forces
// over, so a ship's acceleration never iterates the whole catalog.
package influence

import (
	"orrery.space/internal/body"
	"orrery.space/internal/vec"
)

// Record names the bodies acting on one point: the dominant body and the
// ids whose gravity is included in force computation. The primary body is
// always a member, so the set is never empty.
type Record struct {
	Dominant    string
	Influencers []string
}

// Resolve computes the influence record for a point in world space. A body
// is only examined once its parent's sphere contains the point; of all
// containing spheres the deepest body in the hierarchy is dominant, with
// the primary body as the fallback.
func Resolve(p vec.Vec3, reg *body.Registry) Record {
	primary := reg.Primary()
	dominant := primary
	influencers := []string{primary.ID}

	queue := reg.Children(primary)
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		if p.Sub(b.Pos).Length() >= b.Dominance {
			continue
		}
		influencers = append(influencers, b.ID)
		if b.Depth > dominant.Depth {
			dominant = b
		}
		queue = append(queue, reg.Children(b)...)
	}
	return Record{Dominant: dominant.ID, Influencers: influencers}
}
