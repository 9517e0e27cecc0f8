package catrom

import (
	"gonum.org/v1/gonum/integrate/quad"
)

// ParametricCurve describes a curve in 3-space parametrized by a scalar.
//
// If the result is interpreted as a point, this represents a curve. But the
// result can be interpreted as a vector as well.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter u. Generally, u is in the range [0, 1].
	Eval(u float64) Point3
	Start() Point3
	End() Point3
}

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values).
	Arclen(accuracy float64) float64
}

var _ ParametricCurve = Seg{}
var _ Arclener = Seg{}

// Seg is a single Catmull-Rom segment. It spans P1 to P2; P0 and P3 only
// shape the tangents at the endpoints.
type Seg struct {
	P0 Point3
	P1 Point3
	P2 Point3
	P3 Point3
}

func (s Seg) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf() || s.P2.IsInf() || s.P3.IsInf()
}

func (s Seg) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN() || s.P2.IsNaN() || s.P3.IsNaN()
}

// Eval evaluates the segment at the local parameter u. Eval(0) is P1 and
// Eval(1) is P2; values of u outside [0, 1] extrapolate.
func (s Seg) Eval(u float64) Point3 {
	return Point3{
		X: blend(s.P0.X, s.P1.X, s.P2.X, s.P3.X, u),
		Y: blend(s.P0.Y, s.P1.Y, s.P2.Y, s.P3.Y, u),
		Z: blend(s.P0.Z, s.P1.Z, s.P2.Z, s.P3.Z, u),
	}
}

// Velocity evaluates the derivative of the segment with respect to the local
// parameter u. The result is a tangent vector in per-local-unit terms; it is
// not normalized and not rescaled to arc length.
func (s Seg) Velocity(u float64) Vec3 {
	return Vec3{
		X: blendDeriv(s.P0.X, s.P1.X, s.P2.X, s.P3.X, u),
		Y: blendDeriv(s.P0.Y, s.P1.Y, s.P2.Y, s.P3.Y, u),
		Z: blendDeriv(s.P0.Z, s.P1.Z, s.P2.Z, s.P3.Z, u),
	}
}

func (s Seg) Start() Point3 {
	return s.P1
}

func (s Seg) End() Point3 {
	return s.P2
}

// Arclen returns the arc length of the segment over u in [0, 1].
//
// The speed |Velocity| is smooth, so fixed Gauss-Legendre quadrature
// converges quickly; the node count is chosen from the requested accuracy.
func (s Seg) Arclen(accuracy float64) float64 {
	n := 8
	switch {
	case accuracy < 1e-10:
		n = 24
	case accuracy < 1e-5:
		n = 16
	}
	return quad.Fixed(func(u float64) float64 {
		return s.Velocity(u).Hypot()
	}, 0, 1, n, quad.Legendre{}, 0)
}

// blend evaluates the Catmull-Rom blend of four control values at u.
// The curve passes through b at u=0 and c at u=1.
func blend(a, b, c, d, u float64) float64 {
	u2 := u * u
	u3 := u2 * u
	return 0.5 * ((-a+3*b-3*c+d)*u3 + (2*a-5*b+4*c-d)*u2 + (c-a)*u + 2*b)
}

// blendDeriv evaluates d(blend)/du. It must stay the exact derivative of
// [blend]; the evaluators rely on the two agreeing.
func blendDeriv(a, b, c, d, u float64) float64 {
	return 1.5*(-a+3*b-3*c+d)*u*u + (2*a-5*b+4*c-d)*u + 0.5*(c-a)
}
