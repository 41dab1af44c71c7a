package gravity

import (
	"math"
	"testing"

	"orrery.space/internal/vec"
)

const earthMass = 5.97217e24

func earthField(p vec.Vec3) vec.Vec3 {
	return Acceleration(p, []Source{{Mass: earthMass}})
}

func TestAccelerationPointsAtSource(t *testing.T) {
	acc := Acceleration(vec.Vec3{X: 7000}, []Source{{Mass: earthMass}})
	if acc.X >= 0 || acc.Y != 0 || acc.Z != 0 {
		t.Errorf("acceleration %+v does not point back at the source", acc)
	}
}

func TestAccelerationInverseSquare(t *testing.T) {
	near := Acceleration(vec.Vec3{X: 7000}, []Source{{Mass: earthMass}}).Length()
	far := Acceleration(vec.Vec3{X: 14000}, []Source{{Mass: earthMass}}).Length()
	ratio := near / far
	if math.Abs(ratio-4) > 1e-9 {
		t.Errorf("doubling the distance scaled acceleration by %v, want 4", ratio)
	}
}

func TestAccelerationSkipsCoincidentSource(t *testing.T) {
	acc := Acceleration(vec.Vec3{}, []Source{{Mass: earthMass}})
	if acc != (vec.Vec3{}) {
		t.Errorf("coincident source produced acceleration %+v", acc)
	}
}

func TestAccelerationSurfaceGravity(t *testing.T) {
	// 9.81 m/s² at earth's surface, converted to km/day².
	acc := Acceleration(vec.Vec3{X: 6371}, []Source{{Mass: earthMass}}).Length()
	want := 9.81e-3 * 86400 * 86400
	if math.Abs(acc-want)/want > 0.01 {
		t.Errorf("surface acceleration %v km/day², want about %v", acc, want)
	}
}

func TestStepReversible(t *testing.T) {
	start := State{
		Pos: vec.Vec3{X: 7000},
		Vel: vec.Vec3{Y: 7.5 * 86400}, // km/day
	}
	dt := 1. / 86400 // one second
	fwd := Step(start, dt, earthField)
	back := Step(State{Pos: fwd.Pos, Vel: fwd.Vel.Scale(-1)}, dt, earthField)
	if d := back.Pos.Sub(start.Pos).Length(); d > 1e-6 {
		t.Errorf("reversed step missed the start by %v km", d)
	}
	if d := back.Vel.Scale(-1).Sub(start.Vel).Length(); d > 1e-6 {
		t.Errorf("reversed step velocity off by %v km/day", d)
	}
}

// A circular low orbit must stay near its radius over a full revolution.
func TestStepCircularOrbitStable(t *testing.T) {
	r := 7000.0
	vCirc := math.Sqrt(G * earthMass / r)
	s := State{Pos: vec.Vec3{X: r}, Vel: vec.Vec3{Y: vCirc}}
	period := 2 * math.Pi * r / vCirc
	steps := 4000
	dt := period / float64(steps)
	for i := 0; i < steps; i++ {
		s = Step(s, dt, earthField)
	}
	if dev := math.Abs(s.Pos.Length()-r) / r; dev > 0.01 {
		t.Errorf("orbit radius drifted by %.2f%% over one revolution", dev*100)
	}
}
