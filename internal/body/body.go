// Package body defines the celestial bodies of the simulation: their static
// catalog records, the filtered hierarchy built from them, and the
// per-tick propagation of their world-space kinematics.
//
// A body's position is entirely determined by the current simulated time,
// following orbital mechanics. World positions are expressed relative to
// the primary body, which is pinned at the coordinate origin.
package body

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"orrery.space/internal/orbit"
	"orrery.space/internal/vec"
)

// MaxIDLen bounds body and ship identifiers on the wire and in registries.
const MaxIDLen = 32

// Type orders bodies from the hierarchy root outward. The catalog filter
// keeps every body whose type is at most the configured smallest type.
type Type uint8

const (
	Star Type = iota
	Planet
	DwarfPlanet
	Moon
)

var typeNames = map[Type]string{
	Star:        "star",
	Planet:      "planet",
	DwarfPlanet: "dwarf_planet",
	Moon:        "moon",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// ParseType maps a type name back to its Type. Unknown names default to
// Moon, the most inclusive filter.
func ParseType(s string) Type {
	for t, name := range typeNames {
		if name == s {
			return t
		}
	}
	return Moon
}

// Config is the catalog filter descriptor replicated to clients: every body
// whose type is at most SmallestType is loaded.
type Config struct {
	SmallestType Type `msgpack:"smallest"`
}

// Data is an immutable catalog record.
type Data struct {
	ID     string
	Name   string
	Type   Type
	Parent string // empty for the primary body
	Radius float64 // mean radius, km
	Mass   float64 // kg

	// Orbital elements around the parent body, J2000-like epoch.
	Eccentricity       float64
	SemimajorAxis      float64 // km
	Inclination        float64 // degrees
	LongAscNode        float64 // degrees
	ArgPeriapsis       float64 // degrees
	InitialMeanAnomaly float64 // degrees
	RevolutionPeriod   float64 // days; zero for the primary body
}

// Body is a catalog record plus the mutable per-tick state derived from it.
type Body struct {
	Data
	Orbit orbit.Elliptical

	// World-space kinematics, relative to the primary body's origin.
	Pos vec.Vec3 // km
	Vel vec.Vec3 // km/day

	// Dominance is the radius of the sphere within which this body's
	// gravity is treated as locally dominant over its parent's. The
	// primary body's sphere is unbounded.
	Dominance float64

	// Depth in the hierarchy; 0 for the primary body.
	Depth int

	children []int
}

// Registry is the arena of loaded bodies with an id lookup and the
// hierarchy needed for world composition.
type Registry struct {
	bodies  []*Body
	index   map[string]int
	primary int
}

// Build filters the catalog records through cfg and assembles the body
// hierarchy. It fails when no primary body survives the filter, when two
// bodies share an id, or when a surviving body references a parent that did
// not survive: a body unreachable from the primary would otherwise never be
// positioned.
func Build(catalog []Data, cfg Config) (*Registry, error) {
	reg := &Registry{index: make(map[string]int), primary: -1}
	for _, data := range catalog {
		if data.Type > cfg.SmallestType {
			continue
		}
		if data.ID == "" || len(data.ID) > MaxIDLen {
			return nil, fmt.Errorf("invalid body id %q", data.ID)
		}
		if _, ok := reg.index[data.ID]; ok {
			return nil, fmt.Errorf("duplicate body id %q", data.ID)
		}
		b := &Body{Data: data, Orbit: orbit.Elliptical{
			Eccentricity:       data.Eccentricity,
			SemimajorAxis:      data.SemimajorAxis,
			Inclination:        data.Inclination,
			LongAscNode:        data.LongAscNode,
			ArgPeriapsis:       data.ArgPeriapsis,
			InitialMeanAnomaly: data.InitialMeanAnomaly,
			RevolutionPeriod:   data.RevolutionPeriod,
			MeanAnomaly:        data.InitialMeanAnomaly,
		}}
		reg.index[data.ID] = len(reg.bodies)
		reg.bodies = append(reg.bodies, b)
		if data.Parent == "" {
			if reg.primary >= 0 {
				return nil, fmt.Errorf("multiple primary bodies: %q and %q",
					reg.bodies[reg.primary].ID, data.ID)
			}
			reg.primary = len(reg.bodies) - 1
		}
	}
	if reg.primary < 0 {
		return nil, fmt.Errorf("no primary body in catalog")
	}
	for i, b := range reg.bodies {
		if b.Parent == "" {
			continue
		}
		pi, ok := reg.index[b.Parent]
		if !ok {
			return nil, fmt.Errorf("body %q unreachable: parent %q not loaded", b.ID, b.Parent)
		}
		reg.bodies[pi].children = append(reg.bodies[pi].children, i)
	}
	reg.computeDepths()
	reg.computeDominance()
	return reg, nil
}

func (r *Registry) computeDepths() {
	queue := []int{r.primary}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		b := r.bodies[i]
		for _, c := range b.children {
			r.bodies[c].Depth = b.Depth + 1
			queue = append(queue, c)
		}
	}
}

// computeDominance assigns each body a Hill-like sphere radius
// a·(1-e)·(m/3M)^(1/3) from its mass ratio to its parent. The primary
// body's sphere is unbounded so every point in space has a dominant body.
func (r *Registry) computeDominance() {
	for _, b := range r.bodies {
		if b.Parent == "" {
			b.Dominance = math.Inf(1)
			continue
		}
		parent := r.bodies[r.index[b.Parent]]
		ratio := b.Mass / (3 * parent.Mass)
		b.Dominance = b.SemimajorAxis * (1 - b.Eccentricity) * math.Cbrt(ratio)
	}
}

// Primary returns the root of the hierarchy.
func (r *Registry) Primary() *Body {
	return r.bodies[r.primary]
}

// Get returns the body with the given id, or nil.
func (r *Registry) Get(id string) *Body {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	return r.bodies[i]
}

// All returns the bodies in load order.
func (r *Registry) All() []*Body {
	return r.bodies
}

// Len returns the number of loaded bodies.
func (r *Registry) Len() int {
	return len(r.bodies)
}

// Children returns the bodies orbiting b.
func (r *Registry) Children(b *Body) []*Body {
	out := make([]*Body, len(b.children))
	for i, c := range b.children {
		out[i] = r.bodies[c]
	}
	return out
}

// PropagateLocal advances every body's parent-frame kinematics to the given
// simulated time. The per-body solves are independent, so they are fanned
// out across the available cores. It returns the total number of Kepler
// iterations spent, for instrumentation.
func (r *Registry) PropagateLocal(timeDays float64) int {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(r.bodies) {
		workers = len(r.bodies)
	}
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	iters := make([]int, workers)
	chunk := (len(r.bodies) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(r.bodies) {
			hi = len(r.bodies)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for _, b := range r.bodies[lo:hi] {
				iters[w] += b.Orbit.Propagate(timeDays)
			}
		}(w, lo, hi)
	}
	wg.Wait()
	total := 0
	for _, n := range iters {
		total += n
	}
	return total
}

// ComposeWorld folds the parent-frame kinematics into world space with a
// breadth-first traversal from the primary body, parent before child.
func (r *Registry) ComposeWorld() {
	type frame struct {
		idx int
		pos vec.Vec3
		vel vec.Vec3
	}
	queue := []frame{{idx: r.primary}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		b := r.bodies[f.idx]
		b.Pos = f.pos.Add(b.Orbit.LocalPos)
		b.Vel = f.vel.Add(b.Orbit.LocalVel)
		for _, c := range b.children {
			queue = append(queue, frame{idx: c, pos: b.Pos, vel: b.Vel})
		}
	}
}
