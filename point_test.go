package ink

import (
	"math"
	"testing"
)

func TestVec_Ops(t *testing.T) {
	a := V(3, 4)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, 6) {
		t.Errorf("Add = %+v, want (4, 6)", got)
	}
	if got := a.Sub(b); got != V(2, 2) {
		t.Errorf("Sub = %+v, want (2, 2)", got)
	}
	if got := a.Mul(2); got != V(6, 8) {
		t.Errorf("Mul = %+v, want (6, 8)", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := V(0, 0).Distance(a); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVec_Lerp(t *testing.T) {
	a, b := V(0, 0), V(10, 20)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
	if got := a.Midpoint(b); got != V(5, 10) {
		t.Errorf("Midpoint = %+v, want (5, 10)", got)
	}
}

func TestPoint_Defaults(t *testing.T) {
	p := PointAt(1, 2, 3)
	if p.Pressure != DefaultPressure {
		t.Errorf("Pressure = %v, want %v", p.Pressure, DefaultPressure)
	}
	if p.Tilt != nil {
		t.Error("Tilt should be nil for devices without tilt")
	}
	if p.Velocity != 0 {
		t.Errorf("Velocity = %v, want 0", p.Velocity)
	}
	if got := p.Pos(); got != V(1, 2) {
		t.Errorf("Pos = %+v, want (1, 2)", got)
	}
}

func TestVec_LengthOfUnit(t *testing.T) {
	v := V(1, 1)
	if got := v.Length(); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("Length = %v, want sqrt(2)", got)
	}
}
