package catrom

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooFewPoints is returned when a path's point source holds fewer than the
// four control points a single Catmull-Rom segment needs.
var ErrTooFewPoints = errors.New("catmull-rom path requires at least 4 points")

// ErrSegmentOutOfRange is returned when a segment anchor falls outside the
// interpolatable range of the path.
var ErrSegmentOutOfRange = errors.New("segment anchor out of range")

// Path evaluates a Catmull-Rom spline over an externally owned sequence of
// control points.
//
// A path with n points has n-3 interpolatable segments: the first and last
// points only anchor tangents at the ends. Global parameters t in [0, 1] span
// those segments; t=0 is the second point and t=1 the second-to-last.
//
// All evaluators are pure reads of the source. They may be called
// concurrently, provided the source is not mutated while a call is in flight.
type Path struct {
	Source PointSource

	// Loop marks the path as closed. None of the evaluators read it yet;
	// segments never wrap around from the last point back to the first.
	Loop bool
}

// Segments returns the number of interpolatable segments. It is non-positive
// when the source holds fewer than four points.
func (p Path) Segments() int {
	return p.Source.Len() - 3
}

// locate resolves a global parameter to a segment index and local parameter.
//
// Only the upper bound is clamped, so that t=1 maps to the last segment with
// u=1 instead of overflowing past the last usable quadruple. The local
// parameter is recomputed from the unclamped scaled value, so at the very end
// of the range u can legitimately reach or exceed 1 rather than being
// renormalized. Negative t resolves to a negative index; Seg rejects it.
func (p Path) locate(t float64) (int, float64) {
	sections := p.Segments()
	idx := min(int(math.Floor(t*float64(sections))), sections-1)
	u := t*float64(sections) - float64(idx)
	return idx, u
}

// Seg returns the segment anchored at the control point with index from.
// The segment proceeds from point from to point from+1, with points from-1
// and from+2 shaping the tangents. Valid anchors are 1 through Len()-3.
func (p Path) Seg(from int) (Seg, error) {
	n := p.Source.Len()
	if n < 4 {
		return Seg{}, fmt.Errorf("%w: have %d", ErrTooFewPoints, n)
	}
	if from < 1 || from > n-3 {
		return Seg{}, fmt.Errorf("%w: anchor %d not in [1, %d]", ErrSegmentOutOfRange, from, n-3)
	}
	return Seg{
		P0: p.Source.PositionAt(from - 1),
		P1: p.Source.PositionAt(from),
		P2: p.Source.PositionAt(from + 1),
		P3: p.Source.PositionAt(from + 2),
	}, nil
}

// Interp returns the position on the path at the global parameter t.
//
// Values of t above 1 extrapolate beyond the last segment. Negative t
// resolves to a segment before the start of the path and is reported as
// [ErrSegmentOutOfRange].
func (p Path) Interp(t float64) (Point3, error) {
	idx, u := p.locate(t)
	s, err := p.Seg(idx + 1)
	if err != nil {
		return Point3{}, err
	}
	return s.Eval(u), nil
}

// Velocity returns the tangent of the path at the global parameter t.
//
// The result is the exact derivative of [Path.Interp] with respect to the
// segment-local parameter. Its magnitude is in per-segment-local-unit terms;
// it is not normalized and not rescaled to global t or arc length.
func (p Path) Velocity(t float64) (Vec3, error) {
	idx, u := p.locate(t)
	s, err := p.Seg(idx + 1)
	if err != nil {
		return Vec3{}, err
	}
	return s.Velocity(u), nil
}

// InterpClamped returns the position at the local parameter u on the segment
// anchored at from, for callers that already know which segment they are in
// and want to skip the global-to-local mapping.
//
// InterpClamped(from, 0) is the control point at from and
// InterpClamped(from, 1) the one at from+1. Values of u outside [0, 1]
// extrapolate.
func (p Path) InterpClamped(from int, u float64) (Point3, error) {
	s, err := p.Seg(from)
	if err != nil {
		return Point3{}, err
	}
	return s.Eval(u), nil
}

// VelocityClamped returns the tangent at the local parameter u on the segment
// anchored at from. See [Path.Velocity] for the scaling of the result.
func (p Path) VelocityClamped(from int, u float64) (Vec3, error) {
	s, err := p.Seg(from)
	if err != nil {
		return Vec3{}, err
	}
	return s.Velocity(u), nil
}

// Arclen returns the total arc length of the path, accurate to roughly the
// given accuracy.
func (p Path) Arclen(accuracy float64) (float64, error) {
	sections := p.Segments()
	if sections < 1 {
		return 0, fmt.Errorf("%w: have %d", ErrTooFewPoints, p.Source.Len())
	}
	per := accuracy / float64(sections)
	var total float64
	for from := 1; from <= sections; from++ {
		s, err := p.Seg(from)
		if err != nil {
			return 0, err
		}
		total += s.Arclen(per)
	}
	return total, nil
}

// Sample evaluates the path at n+1 parameters evenly spaced in t over [0, 1]
// and returns the resulting points, including both endpoints.
func (p Path) Sample(n int) ([]Point3, error) {
	if n < 1 {
		return nil, fmt.Errorf("sample count %d, need at least 1", n)
	}
	out := make([]Point3, n+1)
	for i := range out {
		pt, err := p.Interp(float64(i) / float64(n))
		if err != nil {
			return nil, err
		}
		out[i] = pt
	}
	return out, nil
}
