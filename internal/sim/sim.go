// Package sim wires the simulation stages together. A Simulation owns the
// clock, the body registry, and the ship registry; Step runs the fixed
// stage sequence of one tick. All state has a single writer: the goroutine
// calling Step. Other goroutines feed input through the command queue,
// which is drained once per tick in FIFO order.
package sim

import (
	"sync"

	"orrery.space/internal/body"
	"orrery.space/internal/clock"
	"orrery.space/internal/gravity"
	"orrery.space/internal/influence"
	"orrery.space/internal/ship"
	"orrery.space/internal/vec"
)

// Command mutates the simulation from the tick goroutine. Commands come
// from the network and the admin console and run after the physics stages.
type Command func(*Simulation)

// Simulation is the context threaded through every stage of a tick.
type Simulation struct {
	Clock  *clock.Clock
	Bodies *body.Registry
	Ships  *ship.Registry

	Config body.Config

	mu      sync.Mutex
	pending []Command

	// KeplerIterations is the count spent by the last propagation pass,
	// for instrumentation.
	KeplerIterations int
}

// New builds a simulation from the built-in catalog filtered by cfg, with
// bodies positioned for tick 0 and a paused clock.
func New(cfg body.Config, step uint64) (*Simulation, error) {
	reg, err := body.Build(body.SolarSystem(), cfg)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		Clock:  clock.New(step),
		Bodies: reg,
		Ships:  ship.NewRegistry(),
		Config: cfg,
	}
	s.KeplerIterations = reg.PropagateLocal(0)
	reg.ComposeWorld()
	return s, nil
}

// Reconfigure swaps in a body registry rebuilt from the built-in catalog
// under a new filter, positioned at the current simulated time, and
// re-resolves every ship's influence against it. The old registry keeps
// serving reads until the swap, so this must run on the tick goroutine.
func (s *Simulation) Reconfigure(cfg body.Config) error {
	reg, err := body.Build(body.SolarSystem(), cfg)
	if err != nil {
		return err
	}
	s.KeplerIterations = reg.PropagateLocal(s.Clock.TimeDays())
	reg.ComposeWorld()
	s.Config = cfg
	s.Bodies = reg
	s.updateInfluence()
	return nil
}

// Enqueue appends a command for the next drain. Safe from any goroutine.
func (s *Simulation) Enqueue(cmd Command) {
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
}

// Step runs one fixed tick: clock advance, orbital propagation, influence
// resolution, ship integration, then the command drain. The physics stages
// only run while the clock is running; commands (ship creation, console
// administration) are drained even when paused.
func (s *Simulation) Step() {
	if s.Clock.Running() {
		s.Clock.Advance()
		t := s.Clock.TimeDays()
		s.KeplerIterations = s.Bodies.PropagateLocal(t)
		s.Bodies.ComposeWorld()
		s.updateInfluence()
		s.integrateShips()
	}
	s.drain()
}

func (s *Simulation) updateInfluence() {
	for _, sh := range s.Ships.All() {
		sh.Influence = influence.Resolve(sh.Pos, s.Bodies)
	}
}

func (s *Simulation) integrateShips() {
	dt := float64(s.Clock.Step())
	for _, sh := range s.Ships.All() {
		state := gravity.Step(gravity.State{Pos: sh.Pos, Vel: sh.Vel, Acc: sh.Acc}, dt,
			func(p vec.Vec3) vec.Vec3 {
				sh.Influence = influence.Resolve(p, s.Bodies)
				return gravity.Acceleration(p, s.sources(sh.Influence))
			})
		sh.Pos, sh.Vel, sh.Acc = state.Pos, state.Vel, state.Acc
	}
}

// sources maps an influence record to the point masses it names.
func (s *Simulation) sources(rec influence.Record) []gravity.Source {
	out := make([]gravity.Source, 0, len(rec.Influencers))
	for _, id := range rec.Influencers {
		if b := s.Bodies.Get(id); b != nil {
			out = append(out, gravity.Source{Pos: b.Pos, Mass: b.Mass})
		}
	}
	return out
}

func (s *Simulation) drain() {
	s.mu.Lock()
	cmds := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, cmd := range cmds {
		cmd(s)
	}
}

// CreateShip inserts a ship at its spawn kinematics with a freshly resolved
// influence record and acceleration. A duplicate id is a no-op, mirroring
// the at-most-once semantics of creation commands that may race. It reports
// whether the ship was created.
func (s *Simulation) CreateShip(info ship.Info) bool {
	return s.AdoptShip(info, info.SpawnPos, info.SpawnVel)
}

// AdoptShip inserts a ship at the given kinematics rather than its spawn
// record: a replica submitting a creation has kept integrating locally, so
// its reported state is ahead of the spawn point. Influence and
// acceleration are resolved here, never trusted off the wire.
func (s *Simulation) AdoptShip(info ship.Info, pos, vel vec.Vec3) bool {
	rec := influence.Resolve(pos, s.Bodies)
	sh := &ship.Ship{
		Info:      info,
		Pos:       pos,
		Vel:       vel,
		Acc:       gravity.Acceleration(pos, s.sources(rec)),
		Influence: rec,
	}
	return s.Ships.Add(sh)
}

// RemoveShip deletes a ship; unknown ids are a no-op.
func (s *Simulation) RemoveShip(id string) {
	s.Ships.Remove(id)
}
