package vec

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: -5, Z: 6}
	if got := a.Add(b); got != (Vec3{X: 5, Y: -3, Z: 9}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{X: -3, Y: 7, Z: -3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v", got)
	}
}

func TestVec3Length(t *testing.T) {
	if got := (Vec3{X: 3, Y: 4}).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	if got := (Vec3{}).Length(); got != 0 {
		t.Errorf("zero Length = %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	if got := x.Cross(y); got != (Vec3{Z: 1}) {
		t.Errorf("x × y = %+v", got)
	}
	if got := y.Cross(x); got != (Vec3{Z: -1}) {
		t.Errorf("y × x = %+v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{X: 10, Y: 0, Z: 0}.Normalize()
	if n != (Vec3{X: 1}) {
		t.Errorf("Normalize = %+v", n)
	}
	// Degenerate input stays zero rather than going NaN.
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize = %+v", got)
	}
}

func TestVec2Length(t *testing.T) {
	if got := (Vec2{X: 5, Y: 12}).Length(); math.Abs(got-13) > 1e-12 {
		t.Errorf("Length = %v", got)
	}
}
