// Package ship holds the free-flying vessels whose motion is governed by
// the gravity of nearby bodies. Lifecycle is explicit: ships enter and
// leave the registry only through creation and removal commands.
package ship

import (
	"sort"

	"orrery.space/internal/influence"
	"orrery.space/internal/vec"
)

// Info is the immutable creation record of a ship.
type Info struct {
	ID       string   `msgpack:"id"`
	SpawnPos vec.Vec3 `msgpack:"spawn_pos"`
	SpawnVel vec.Vec3 `msgpack:"spawn_vel"`
}

// Ship is a vessel's kinematic state plus its current influence record.
// Kinematic fields are rewritten every tick by the integrator; the
// influence record is always recomputed before the acceleration that uses
// it.
type Ship struct {
	Info

	Pos vec.Vec3 // km, world space
	Vel vec.Vec3 // km/day
	Acc vec.Vec3 // km/day²

	Influence influence.Record
}

// Registry is an arena of ships with an id lookup.
type Registry struct {
	ships []*Ship
	index map[string]int
}

// NewRegistry returns an empty ship registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add inserts a ship and reports whether it was inserted; an already-used
// id leaves the registry unchanged.
func (r *Registry) Add(s *Ship) bool {
	if _, ok := r.index[s.ID]; ok {
		return false
	}
	r.index[s.ID] = len(r.ships)
	r.ships = append(r.ships, s)
	return true
}

// Remove deletes the ship with the given id; unknown ids are a no-op.
func (r *Registry) Remove(id string) {
	i, ok := r.index[id]
	if !ok {
		return
	}
	last := len(r.ships) - 1
	r.ships[i] = r.ships[last]
	r.index[r.ships[i].ID] = i
	r.ships = r.ships[:last]
	delete(r.index, id)
}

// Get returns the ship with the given id, or nil.
func (r *Registry) Get(id string) *Ship {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	return r.ships[i]
}

// All returns the ships in arena order.
func (r *Registry) All() []*Ship {
	return r.ships
}

// Len returns the number of ships.
func (r *Registry) Len() int {
	return len(r.ships)
}

// IDs returns the ship ids in sorted order, for listings.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.ships))
	for _, s := range r.ships {
		ids = append(ids, s.ID)
	}
	sort.Strings(ids)
	return ids
}
