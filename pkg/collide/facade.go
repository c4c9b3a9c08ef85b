package collide

import "io"

// FindIntersectingTriangles returns the set of indices into scene whose
// triangle participates in at least one pairwise intersection with
// another triangle in scene. The empty scene yields the empty set.
func FindIntersectingTriangles(scene Scene) Collisions {
	return FindIntersectingTrianglesTrace(scene, nil)
}

// FindIntersectingTrianglesTrace behaves exactly like
// FindIntersectingTriangles, but additionally logs every predicate
// evaluation to sink. sink may be nil; its presence or
// absence never changes the returned set.
func FindIntersectingTrianglesTrace(scene Scene, sink io.Writer) Collisions {
	if len(scene) == 0 {
		return newCollisions()
	}
	indices := make([]TriangleIndex, len(scene))
	for i := range indices {
		indices[i] = TriangleIndex(i)
	}
	return NewTreeNode(indices, scene).TestCollisionsTrace(scene, sink)
}
