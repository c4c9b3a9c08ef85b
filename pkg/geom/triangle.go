package geom

import (
	"fmt"
	"math"
)

// Triangle is an ordered triple of vertices in R3. Vertex order determines
// the sign of Normal but not the outcome of Intersects, which treats the
// underlying surface as unoriented.
type Triangle struct {
	P [3]Vec3
}

// NewTriangle constructs a triangle from three vertices, in order.
func NewTriangle(p0, p1, p2 Vec3) Triangle {
	return Triangle{P: [3]Vec3{p0, p1, p2}}
}

// Normal returns (P1-P0) x (P2-P0), unnormalized.
func (t Triangle) Normal() Vec3 {
	return t.P[1].Sub(t.P[0]).Cross(t.P[2].Sub(t.P[0]))
}

// IsDegenerate reports whether t's three vertices are collinear (or
// coincident) to within Epsilon, i.e. its normal has no well-defined
// direction.
func (t Triangle) IsDegenerate() bool {
	return t.Normal().Length2() <= epsilon2()
}

// Edges returns t's three boundary edges in winding order: (P0,P1),
// (P1,P2), (P2,P0).
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{A: t.P[0], B: t.P[1]},
		{A: t.P[1], B: t.P[2]},
		{A: t.P[2], B: t.P[0]},
	}
}

// IntersectionRange walks t's three edges against plane and folds their
// EdgeIntersection parameters (measured along line) into the smallest
// enclosing Range. If no edge crosses plane, the result is the empty range
// [+Inf, -Inf]; the only caller in this package passes the result to
// Range.Intersects, and an empty range never intersects anything, so the
// coplanar-edge-slab case yields false, as in the original predicate.
func (t Triangle) IntersectionRange(line Line, plane Plane) Range {
	min, max := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, edge := range t.Edges() {
		if param, ok := line.EdgeIntersection(edge, plane); ok {
			if param < min {
				min = param
			}
			if param > max {
				max = param
			}
		}
	}
	return Range{min: min, max: max}
}

func (t Triangle) String() string {
	return fmt.Sprintf("(%s, %s, %s)", t.P[0], t.P[1], t.P[2])
}

// Triangle2D is the 2D analogue of Triangle, produced by AAPlane.Project.
type Triangle2D struct {
	P [3]Vec2
}

// NewTriangle2D constructs a 2D triangle from three vertices, in order.
func NewTriangle2D(p0, p1, p2 Vec2) Triangle2D {
	return Triangle2D{P: [3]Vec2{p0, p1, p2}}
}

// Edges is the 2D counterpart of Triangle.Edges.
func (t Triangle2D) Edges() [3]Edge2D {
	return [3]Edge2D{
		{A: t.P[0], B: t.P[1]},
		{A: t.P[1], B: t.P[2]},
		{A: t.P[2], B: t.P[0]},
	}
}

// orientation is twice the signed area of the triangle (p, edge.A, edge.B).
func orientation(p Vec2, edge Edge2D) float32 {
	return (edge.B.X-p.X)*(edge.B.Y-edge.A.Y) - (edge.B.X-edge.A.X)*(edge.B.Y-p.Y)
}

// ContainsPoint reports whether p lies inside or on the boundary of t,
// using the sign of orientation against each of t's three edges.
func (t Triangle2D) ContainsPoint(p Vec2) bool {
	edges := t.Edges()
	d1 := orientation(p, edges[0])
	d2 := orientation(p, edges[1])
	d3 := orientation(p, edges[2])
	return (d1 >= 0 && d2 >= 0 && d3 >= 0) || (d1 <= 0 && d2 <= 0 && d3 <= 0)
}

// Contains reports whether t fully contains other, i.e. every vertex of
// other lies inside or on the boundary of t.
func (t Triangle2D) Contains(other Triangle2D) bool {
	return t.ContainsPoint(other.P[0]) && t.ContainsPoint(other.P[1]) && t.ContainsPoint(other.P[2])
}

func (t Triangle2D) String() string {
	return fmt.Sprintf("(%s, %s, %s)", t.P[0], t.P[1], t.P[2])
}

// Edge2D is the 2D analogue of Edge.
type Edge2D struct {
	A, B Vec2
}

// edgesIntersect reports whether segments e1 and e2 cross, touch
// collinearly with overlapping projections, or (within Epsilon) are
// collinear and overlap on both axes.
func edgesIntersect(e1, e2 Edge2D) bool {
	eps := Epsilon()
	o11 := orientation(e2.A, e1)
	o12 := orientation(e2.B, e1)
	o21 := orientation(e1.A, e2)
	o22 := orientation(e1.B, e2)

	if abs32(o11) < eps && abs32(o12) < eps && abs32(o21) < eps && abs32(o22) < eps {
		xr1 := NewRange(min32(e1.A.X, e1.B.X), max32(e1.A.X, e1.B.X))
		xr2 := NewRange(min32(e2.A.X, e2.B.X), max32(e2.A.X, e2.B.X))
		yr1 := NewRange(min32(e1.A.Y, e1.B.Y), max32(e1.A.Y, e1.B.Y))
		yr2 := NewRange(min32(e2.A.Y, e2.B.Y), max32(e2.A.Y, e2.B.Y))
		return xr1.Intersects(xr2) && yr1.Intersects(yr2)
	}

	if ((o11 >= eps && o12 <= -eps) || (o11 <= -eps && o12 >= eps)) &&
		((o21 >= eps && o22 <= -eps) || (o21 <= -eps && o22 >= eps)) {
		return true
	}
	return false
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
