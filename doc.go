// Package catrom evaluates Catmull-Rom splines over ordered control points,
// producing continuous position and tangent samples along a path. It serves
// path-authoring and motion-along-path tooling: given a set of waypoints, it
// answers queries for a smooth 3D position or direction at any normalized
// parameter, across the whole path or within a single segment.
//
// # Paths and segments
//
// [Path] is the main entry point. It reads control points from an injected
// [PointSource] and exposes four evaluators: [Path.Interp] and
// [Path.Velocity] address the whole path with a global parameter, while
// [Path.InterpClamped] and [Path.VelocityClamped] address one segment
// directly, for callers that walk the path incrementally and already know
// which segment they are in. Velocity is always the exact derivative of
// position with respect to the segment-local parameter, not a unit tangent.
//
// A path with n control points has n-3 segments. The first and last points
// never lie on the curve; they only shape the tangents at the ends. Each
// segment blends four consecutive points with the standard Catmull-Rom cubic,
// so the curve passes exactly through every interior control point and is C¹
// continuous across segment boundaries.
//
// [Seg] exposes a single four-point quadruple as a standalone
// [ParametricCurve] with its own arc length.
//
// # Point sources
//
// Control points are owned by the caller. [Points] is a plain slice source,
// [VertexPoints] adapts any vertex type that can report a position, and
// [Vec3Points] adapts go3d vectors. The evaluators never mutate a source and
// hold no state of their own; every call is a pure function of the source
// contents and the parameters.
//
// # Literature
//
//   - [A Primer on Bézier Curves], chapter on Catmull-Rom splines
//   - [On the Parameterization of Catmull-Rom Curves] by Yuksel, Schaefer, and Keyser
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [On the Parameterization of Catmull-Rom Curves]: https://www.cemyuksel.com/research/catmullrom_param/
package catrom
