package catrom

import (
	"math"
	"testing"
)

func TestVec3Products(t *testing.T) {
	if d := Vec(1, 2, 3).Dot(Vec(4, -5, 6)); d != 12 {
		t.Errorf("got dot product %v, want 12", d)
	}
	diff(t, Vec(0, 0, 1), Vec(1, 0, 0).Cross(Vec(0, 1, 0)))
	diff(t, Vec(0, 0, -1), Vec(0, 1, 0).Cross(Vec(1, 0, 0)))

	// Cross of parallel vectors vanishes.
	diff(t, Vec(0, 0, 0), Vec(1, 2, 3).Cross(Vec(2, 4, 6)))
}

func TestVec3Hypot(t *testing.T) {
	v := Vec(2, -3, 6)
	if h := v.Hypot(); h != 7 {
		t.Errorf("got magnitude %v, want 7", h)
	}
	if h := v.Hypot2(); h != 49 {
		t.Errorf("got squared magnitude %v, want 49", h)
	}

	n := v.Normalize()
	if h := n.Hypot(); math.Abs(h-1) > 1e-15 {
		t.Errorf("got normalized magnitude %v, want 1", h)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	diff(t, Vec(3, 3, 3), Vec(1, 2, 3).Add(Vec(2, 1, 0)))
	diff(t, Vec(-1, 1, 3), Vec(1, 2, 3).Sub(Vec(2, 1, 0)))
	diff(t, Vec(2, 4, 6), Vec(1, 2, 3).Mul(2))
	diff(t, Vec(0.5, 1, 1.5), Vec(1, 2, 3).Div(2))
	diff(t, Vec(-1, -2, -3), Vec(1, 2, 3).Negate())
	diff(t, Vec(1, 1, 1), Vec(0, 0, 0).Lerp(Vec(2, 2, 2), 0.5))
}
