package server

import (
	"context"
	"time"
)

// loop runs the fixed-timestep scheduler. Each iteration advances one
// simulation tick (clock, orbits, influence, integration, command drain)
// and then consults a wall-clock accumulator to decide whether a periodic
// update is due; broadcast cadence is independent of the tick rate.
func (s *Server) loop(ctx context.Context) {
	tick := time.NewTicker(time.Second / time.Duration(s.cfg.TickRate))
	defer tick.Stop()
	broadcastEvery := time.Second / time.Duration(s.cfg.BroadcastRate)
	lastBroadcast := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}

		running := s.sim.Clock.Running()
		s.sim.Step()
		if running {
			s.metrics.TicksTotal.Inc()
			s.metrics.KeplerIterations.Observe(float64(s.sim.KeplerIterations))
		}

		if now := time.Now(); now.Sub(lastBroadcast) >= broadcastEvery {
			lastBroadcast = now
			s.sendPeriodicUpdate(snapshot(s.sim.Clock.Tick(), s.sim.Ships.All()))
		}
	}
}
