package sim

import (
	"testing"

	"orrery.space/internal/body"
	"orrery.space/internal/ship"
	"orrery.space/internal/vec"
)

func newSim(t *testing.T) *Simulation {
	t.Helper()
	s, err := New(body.Config{SmallestType: body.Moon}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewPositionsBodiesAtEpoch(t *testing.T) {
	s := newSim(t)
	earth := s.Bodies.Get("earth")
	if earth == nil {
		t.Fatal("earth missing from registry")
	}
	d := earth.Pos.Length()
	if d < 147095000 || d > 152100000 {
		t.Errorf("earth heliocentric distance %v km at epoch", d)
	}
	if s.Clock.Running() {
		t.Errorf("fresh simulation clock is running")
	}
}

func TestStepPausedFreezesPhysics(t *testing.T) {
	s := newSim(t)
	before := s.Bodies.Get("earth").Pos
	for i := 0; i < 5; i++ {
		s.Step()
	}
	if s.Bodies.Get("earth").Pos != before {
		t.Errorf("body moved while the clock was paused")
	}
	if s.Clock.Tick() != 0 {
		t.Errorf("tick %d while paused", s.Clock.Tick())
	}
}

func TestStepAdvancesBodies(t *testing.T) {
	s := newSim(t)
	s.Clock.SetRunning(true)
	before := s.Bodies.Get("earth").Pos
	s.Step()
	if s.Clock.Tick() != 1 {
		t.Fatalf("tick %d, want 1", s.Clock.Tick())
	}
	moved := s.Bodies.Get("earth").Pos.Sub(before).Length()
	// Earth covers about 2.57 million km per day.
	if moved < 2e6 || moved > 3e6 {
		t.Errorf("earth moved %v km in one day", moved)
	}
}

func TestCommandsDrainWhilePaused(t *testing.T) {
	s := newSim(t)
	ran := false
	s.Enqueue(func(*Simulation) { ran = true })
	s.Step()
	if !ran {
		t.Errorf("command not drained on a paused tick")
	}
}

func TestCommandsDrainInOrder(t *testing.T) {
	s := newSim(t)
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		s.Enqueue(func(*Simulation) { order = append(order, i) })
	}
	s.Step()
	for i, v := range order {
		if v != i {
			t.Fatalf("commands ran out of order: %v", order)
		}
	}
}

func TestCreateShipResolvesKinematics(t *testing.T) {
	s := newSim(t)
	earth := s.Bodies.Get("earth")
	spawn := earth.Pos.Add(vec.Vec3{X: 7000})
	if !s.CreateShip(ship.Info{ID: "probe", SpawnPos: spawn, SpawnVel: earth.Vel}) {
		t.Fatal("CreateShip rejected a fresh id")
	}
	sh := s.Ships.Get("probe")
	if sh == nil {
		t.Fatal("ship not in registry")
	}
	if sh.Influence.Dominant != "earth" {
		t.Errorf("dominant body %q at spawn, want earth", sh.Influence.Dominant)
	}
	if sh.Acc.Length() == 0 {
		t.Errorf("spawn acceleration not resolved")
	}
}

func TestCreateShipDuplicateNoop(t *testing.T) {
	s := newSim(t)
	info := ship.Info{ID: "probe", SpawnPos: vec.Vec3{X: 1e9}}
	s.CreateShip(info)
	if s.CreateShip(info) {
		t.Errorf("duplicate ship creation reported success")
	}
	if s.Ships.Len() != 1 {
		t.Errorf("ship count %d, want 1", s.Ships.Len())
	}
}

func TestStepIntegratesShips(t *testing.T) {
	s := newSim(t)
	earth := s.Bodies.Get("earth")
	spawn := earth.Pos.Add(vec.Vec3{X: 50000})
	s.CreateShip(ship.Info{ID: "probe", SpawnPos: spawn, SpawnVel: earth.Vel})
	s.Clock.SetRunning(true)
	s.Step()
	sh := s.Ships.Get("probe")
	if sh.Pos == spawn {
		t.Errorf("ship did not move over a running tick")
	}
	// The ship starts co-moving with earth and must be pulled along with it,
	// staying within earth's dominance sphere over a single day.
	sep := sh.Pos.Sub(s.Bodies.Get("earth").Pos).Length()
	if sep > earth.Dominance {
		t.Errorf("ship separated %v km from earth in one tick", sep)
	}
}

func TestReconfigureRebuildsRegistry(t *testing.T) {
	s := newSim(t)
	if s.Bodies.Get("moon") == nil {
		t.Fatal("moon missing before reconfigure")
	}
	s.CreateShip(ship.Info{ID: "probe", SpawnPos: vec.Vec3{Z: 5e9}})

	if err := s.Reconfigure(body.Config{SmallestType: body.Planet}); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if s.Bodies.Get("moon") != nil {
		t.Errorf("stricter filter kept the moon")
	}
	if s.Bodies.Len() != 9 {
		t.Errorf("registry holds %d bodies after reconfigure, want 9", s.Bodies.Len())
	}
	if s.Config.SmallestType != body.Planet {
		t.Errorf("config not updated")
	}
	if got := s.Ships.Get("probe").Influence.Dominant; got != "sun" {
		t.Errorf("ship influence not re-resolved, dominant %q", got)
	}
}

func TestReconfigureArrivesViaCommandQueue(t *testing.T) {
	s := newSim(t)
	s.Enqueue(func(sm *Simulation) {
		if err := sm.Reconfigure(body.Config{SmallestType: body.Star}); err != nil {
			t.Errorf("Reconfigure: %v", err)
		}
	})
	s.Step()
	if s.Bodies.Len() != 1 {
		t.Errorf("registry holds %d bodies, want just the star", s.Bodies.Len())
	}
}

func TestRemoveShip(t *testing.T) {
	s := newSim(t)
	s.CreateShip(ship.Info{ID: "probe", SpawnPos: vec.Vec3{X: 1e9}})
	s.RemoveShip("probe")
	s.RemoveShip("probe") // no-op
	if s.Ships.Len() != 0 {
		t.Errorf("ship count %d after removal", s.Ships.Len())
	}
}
