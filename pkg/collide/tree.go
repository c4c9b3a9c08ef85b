package collide

import (
	"io"
	"log"
	"math"

	"github.com/kachkov98/gotriangles/pkg/geom"
)

// TreeNode is a node of the recursive axis-aligned space partition over a
// subset of a Scene's triangle indices. Each node exclusively owns its
// children; there are no back-pointers.
type TreeNode struct {
	straddle     []TriangleIndex
	frontIndices []TriangleIndex
	backIndices  []TriangleIndex
	front, back  *TreeNode
}

// NewTreeNode partitions indices by the midpoint of their bounding box on
// its axis of maximum extent, recursing on the front and back subsets.
func NewTreeNode(indices []TriangleIndex, scene Scene) *TreeNode {
	node := &TreeNode{}
	if len(indices) == 0 {
		return node
	}

	plane := splitPlane(indices, scene)
	for _, idx := range indices {
		switch {
		case geom.TriangleIsFront(plane, scene[idx]):
			node.frontIndices = append(node.frontIndices, idx)
		case geom.TriangleIsBack(plane, scene[idx]):
			node.backIndices = append(node.backIndices, idx)
		default:
			node.straddle = append(node.straddle, idx)
		}
	}

	// Degenerate-recursion guard (spec's open question on §4.3): if every
	// triangle landed on the same side of the split, that child list equals
	// the parent's and recursing on it would repeat the identical split
	// forever. Fall back to a leaf holding every index in straddle instead.
	if len(node.frontIndices) == len(indices) || len(node.backIndices) == len(indices) {
		node.straddle = indices
		node.frontIndices = nil
		node.backIndices = nil
		return node
	}

	if len(node.frontIndices) > 0 {
		node.front = NewTreeNode(node.frontIndices, scene)
	}
	if len(node.backIndices) > 0 {
		node.back = NewTreeNode(node.backIndices, scene)
	}
	return node
}

func splitPlane(indices []TriangleIndex, scene Scene) geom.AAPlane {
	posInf := float32(math.Inf(1))
	negInf := float32(math.Inf(-1))
	min := geom.Vec3{X: posInf, Y: posInf, Z: posInf}
	max := geom.Vec3{X: negInf, Y: negInf, Z: negInf}
	for _, idx := range indices {
		tri := scene[idx]
		for _, p := range tri.P {
			min = geom.Vec3{X: fmin(min.X, p.X), Y: fmin(min.Y, p.Y), Z: fmin(min.Z, p.Z)}
			max = geom.Vec3{X: fmax(max.X, p.X), Y: fmax(max.Y, p.Y), Z: fmax(max.Z, p.Z)}
		}
	}

	extentX, extentY, extentZ := max.X-min.X, max.Y-min.Y, max.Z-min.Z
	var axis geom.Axis
	if extentX > extentY {
		if extentX > extentZ {
			axis = geom.AxisX
		} else {
			axis = geom.AxisZ
		}
	} else {
		if extentY > extentZ {
			axis = geom.AxisY
		} else {
			axis = geom.AxisZ
		}
	}

	mid := (min.Component(axis) + max.Component(axis)) * 0.5
	return geom.AAPlane{Pos: mid, Axis: axis}
}

// TestCollisions enumerates candidate pairs rooted at node and returns the
// set of triangle indices that participate in at least one intersection.
func (node *TreeNode) TestCollisions(scene Scene) Collisions {
	return node.TestCollisionsTrace(scene, nil)
}

// TestCollisionsTrace behaves exactly like TestCollisions, but additionally
// logs each predicate evaluation to sink. sink may be nil; its presence or
// absence never changes the returned set.
func (node *TreeNode) TestCollisionsTrace(scene Scene, sink io.Writer) Collisions {
	var trace *log.Logger
	if sink != nil {
		trace = log.New(sink, "", 0)
	}

	res := newCollisions()
	doTest := func(idx1, idx2 TriangleIndex) {
		if res.Has(idx1) && res.Has(idx2) {
			return
		}
		if trace != nil {
			trace.Printf("testing triangles %d and %d", idx1, idx2)
		}
		if geom.Intersects(scene[idx1], scene[idx2]) {
			res.add(idx1, idx2)
		}
	}

	for i := 0; i < len(node.straddle); i++ {
		for j := i + 1; j < len(node.straddle); j++ {
			doTest(node.straddle[i], node.straddle[j])
		}
		for _, j := range node.frontIndices {
			doTest(node.straddle[i], j)
		}
		for _, j := range node.backIndices {
			doTest(node.straddle[i], j)
		}
	}

	if node.front != nil {
		res.merge(node.front.TestCollisionsTrace(scene, sink))
	}
	if node.back != nil {
		res.merge(node.back.TestCollisionsTrace(scene, sink))
	}
	return res
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
