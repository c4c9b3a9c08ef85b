package collide

import "github.com/kachkov98/gotriangles/pkg/geom"

// Scene is an indexed collection of triangles. Index position is a
// triangle's identity throughout this package; TriangleIndex values are
// only meaningful relative to the Scene they were produced from.
type Scene []geom.Triangle

// TriangleIndex names a triangle by its position in a Scene.
type TriangleIndex uint32

// Collisions is the set of triangle indices that participate in at least
// one intersecting pair. It does not record which pairs intersected, only
// which triangles were involved in some intersection.
type Collisions map[TriangleIndex]struct{}

func newCollisions() Collisions {
	return make(Collisions)
}

// add records both idx1 and idx2 as participating in an intersection.
func (c Collisions) add(idx1, idx2 TriangleIndex) {
	c[idx1] = struct{}{}
	c[idx2] = struct{}{}
}

// Has reports whether idx participates in at least one recorded
// intersection.
func (c Collisions) Has(idx TriangleIndex) bool {
	_, ok := c[idx]
	return ok
}

// merge folds other into c in place.
func (c Collisions) merge(other Collisions) {
	for idx := range other {
		c[idx] = struct{}{}
	}
}
