package geom

import (
	"io"
	"log"
)

// Intersects is the exact-parity triangle-triangle intersection predicate.
// It reports whether tri1 and tri2, as filled triangles (not just their
// boundaries), share at least one point.
//
// It panics with a *PreconditionError if either triangle is degenerate:
// callers are expected to filter degenerate triangles before building a
// scene (pkg/collide assumes none remain).
func Intersects(tri1, tri2 Triangle) bool {
	return IntersectsTrace(tri1, tri2, nil)
}

// IntersectsTrace behaves exactly like Intersects, but additionally writes
// a line per decision stage to sink, mirroring the #ifndef NDEBUG
// std::cerr trace lines in the reference predicate. sink may be nil, in
// which case no line is written; its presence or absence never changes
// the returned value.
func IntersectsTrace(tri1, tri2 Triangle, sink io.Writer) bool {
	var trace *log.Logger
	if sink != nil {
		trace = log.New(sink, "", 0)
		trace.Printf("checking triangles: %s and %s", tri1, tri2)
	}

	pln1 := PlaneOfTriangle(tri1)
	pln2 := PlaneOfTriangle(tri2)

	if TriangleIsFront(pln1, tri2) || TriangleIsBack(pln1, tri2) ||
		TriangleIsFront(pln2, tri1) || TriangleIsBack(pln2, tri1) {
		if trace != nil {
			trace.Printf("fully front or back, not intersecting")
		}
		return false
	}

	if line, ok := pln1.Intersect(pln2); ok {
		if trace != nil {
			trace.Printf("non-coplanar, intersection line: %s", line)
		}
		rng1 := tri1.IntersectionRange(line, pln2)
		rng2 := tri2.IntersectionRange(line, pln1)
		if trace != nil {
			trace.Printf("first range: %s, second range: %s", rng1, rng2)
		}
		return rng1.Intersects(rng2)
	}

	// Coplanar: drop the component with the largest-magnitude normal and
	// reduce to a 2D triangle-triangle overlap test.
	axis := dominantAxis(pln1.N)
	aa := AAPlane{Pos: 0, Axis: axis}
	tri1Prj := aa.ProjectTriangle(tri1)
	tri2Prj := aa.ProjectTriangle(tri2)
	if trace != nil {
		trace.Printf("coplanar, 2D triangles: %s and %s", tri1Prj, tri2Prj)
	}
	return intersects2D(tri1Prj, tri2Prj, trace)
}

func dominantAxis(n Vec3) Axis {
	ax, ay, az := abs32(n.X), abs32(n.Y), abs32(n.Z)
	if ax > ay {
		if ax > az {
			return AxisX
		}
		return AxisZ
	}
	if ay > az {
		return AxisY
	}
	return AxisZ
}

// Intersects2D reports whether tri1 and tri2, as filled 2D triangles,
// share at least one point: either a pair of their edges crosses, or one
// triangle fully contains the other.
func Intersects2D(tri1, tri2 Triangle2D) bool {
	return intersects2D(tri1, tri2, nil)
}

func intersects2D(tri1, tri2 Triangle2D, trace *log.Logger) bool {
	for _, e1 := range tri1.Edges() {
		for _, e2 := range tri2.Edges() {
			if edgesIntersect(e1, e2) {
				if trace != nil {
					trace.Printf("edges %v and %v intersect", e1, e2)
				}
				return true
			}
		}
	}
	return tri1.Contains(tri2) || tri2.Contains(tri1)
}
