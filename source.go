package catrom

// PointSource is an ordered, indexable sequence of control point positions.
//
// Indices are zero-based and follow insertion order. A source must be stable
// for the duration of a single evaluation call; mutating it concurrently with
// an evaluation is a data race.
type PointSource interface {
	// Len returns the number of control points.
	Len() int
	// PositionAt returns the position of the control point at index i,
	// with 0 <= i < Len().
	PositionAt(i int) Point3
}

var _ PointSource = Points(nil)

// Points is the simplest PointSource: a slice of positions.
type Points []Point3

func (ps Points) Len() int                { return len(ps) }
func (ps Points) PositionAt(i int) Point3 { return ps[i] }

// Positioned constrains vertex types to the single capability the evaluators
// need: exposing a position.
type Positioned interface {
	Position() Point3
}

// VertexPoints adapts an ordered slice of arbitrary vertices to a
// [PointSource]. The vertex type only has to report its position; any other
// state it carries is ignored.
type VertexPoints[V Positioned] []V

func (vp VertexPoints[V]) Len() int                { return len(vp) }
func (vp VertexPoints[V]) PositionAt(i int) Point3 { return vp[i].Position() }
