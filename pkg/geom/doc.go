// Package geom implements the three-dimensional vector, line, plane, and
// triangle primitives used by pkg/collide, along with the triangle-triangle
// intersection predicate that decides whether two triangles in R^3 touch or
// overlap.
//
// All near-zero sign and length comparisons go through a single tolerance,
// Epsilon. The package favors explicit construction over zero values: types
// with a validity invariant (Line, Plane) are built through constructors
// that panic with a *PreconditionError when the invariant cannot hold,
// matching the fail-fast contract of the degenerate-input cases this
// package's callers are expected to have already filtered out.
package geom
