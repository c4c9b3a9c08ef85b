package geom

import (
	"fmt"
	"math"
)

// Edge is an oriented line segment between two points, used as the unit of
// work for Line.EdgeIntersection and the triangle-edge walks in Intersects.
type Edge struct {
	A, B Vec3
}

// Line is a point plus a direction. The direction need not be unit length;
// Projection values are only commensurable between queries against the
// same Line instance.
type Line struct {
	P, D Vec3
}

// NewLine constructs a line through P in direction D. It panics with a
// *PreconditionError if D is shorter than Epsilon (a zero-length direction
// cannot define a line).
func NewLine(p, d Vec3) Line {
	if d.Length2() < epsilon2() {
		failPrecondition("NewLine", "direction vector is shorter than epsilon")
	}
	return Line{P: p, D: d}
}

// Projection returns the signed parameter (q-P) dot D along the line.
// Because D is not normalized, only projections from the same Line are
// comparable.
func (l Line) Projection(q Vec3) float32 {
	return q.Sub(l.P).Dot(l.D)
}

// EdgeIntersection computes the line-parameter at which the segment edge
// crosses plane, returning ok=false when both endpoints lie within plane's
// epsilon-slab, or both lie strictly on the same side of plane.
func (l Line) EdgeIntersection(edge Edge, plane Plane) (t float32, ok bool) {
	eps := Epsilon()
	distA := plane.Distance(edge.A)
	distB := plane.Distance(edge.B)

	if abs32(distA) < eps && abs32(distB) < eps {
		return 0, false
	}
	if (distA > eps && distB > eps) || (distA < -eps && distB < -eps) {
		return 0, false
	}

	projA := l.Projection(edge.A)
	projB := l.Projection(edge.B)
	return (projA*distB - projB*distA) / (distB - distA), true
}

// RotatePoint rotates point around the line's axis (through P, direction D)
// by angle radians, using Rodrigues' rotation formula. It is not part of
// the core collision predicate; pkg/animate uses it to drive
// time-varying triangles (see original_source's DynamicTriangle), which
// spec.md places out of the core's scope.
func (l Line) RotatePoint(point Vec3, angle float64) Vec3 {
	axisLen := float32(math.Sqrt(float64(l.D.Length2())))
	axis := l.D.Scale(1 / axisLen)

	rel := point.Sub(l.P)
	cosA := float32(math.Cos(angle))
	sinA := float32(math.Sin(angle))

	rotated := rel.Scale(cosA).
		Add(axis.Cross(rel).Scale(sinA)).
		Add(axis.Scale(axis.Dot(rel) * (1 - cosA)))

	return l.P.Add(rotated)
}

func (l Line) String() string {
	return fmt.Sprintf("(%s + %s * t)", l.P, l.D)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
