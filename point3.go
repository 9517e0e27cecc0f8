package catrom

import (
	"fmt"
	"math"
)

// Point3 is a position in 3D Cartesian space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Splat returns the point's x, y, and z coordinates.
func (pt Point3) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Translate returns the point moved by the vector o.
func (pt Point3) Translate(o Vec3) Point3 {
	return Point3{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point3) Sub(o Point3) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	return Point3(Vec3(pt).Lerp(Vec3(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point3) Midpoint(o Point3) Point3 {
	return Point3{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point3) DistanceSquared(o Point3) float64 {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether at least one of x, y, and z is infinite.
func (pt Point3) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y, and z is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
