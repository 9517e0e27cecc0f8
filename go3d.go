package catrom

import (
	"github.com/ungerik/go3d/float64/vec3"
)

var _ PointSource = Vec3Points(nil)

// Vec3Points adapts a slice of go3d vectors to a [PointSource], for callers
// that already keep their waypoints in go3d types.
type Vec3Points []vec3.T

func (vp Vec3Points) Len() int { return len(vp) }

func (vp Vec3Points) PositionAt(i int) Point3 {
	return Point3{X: vp[i][0], Y: vp[i][1], Z: vp[i][2]}
}
