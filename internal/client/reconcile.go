package client

import (
	"orrery.space/internal/sim"
	"orrery.space/internal/wire"
)

// ApplyPeriodicUpdate overwrites the local clock tick and the kinematics
// of every ship named in an authoritative update. A ship id not yet in the
// local registry is skipped silently: the creation acknowledgement travels
// on the reliable channel with no ordering guarantee relative to the
// unreliable broadcasts, so an update may legitimately arrive first. The
// next update after creation lands normally. Returns the number of entries
// skipped.
func ApplyPeriodicUpdate(sm *sim.Simulation, update wire.PeriodicUpdate) int {
	sm.Clock.SetTick(update.Tick)
	dropped := 0
	for _, state := range update.Ships {
		sh := sm.Ships.Get(state.ID)
		if sh == nil {
			dropped++
			continue
		}
		sh.Pos = state.Pos
		sh.Vel = state.Vel
	}
	return dropped
}
