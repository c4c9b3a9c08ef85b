package animate

import (
	"github.com/kachkov98/gotriangles/pkg/collide"
	"github.com/kachkov98/gotriangles/pkg/geom"
)

// DynamicTriangle is a triangle that spins around Axis at Speed radians
// per second.
type DynamicTriangle struct {
	Base  geom.Triangle
	Axis  geom.Line
	Speed float64
}

// At returns the triangle's position at the given time, rotating each of
// its base vertices around Axis by Speed*time radians.
func (d DynamicTriangle) At(time float64) geom.Triangle {
	angle := d.Speed * time
	return geom.NewTriangle(
		d.Axis.RotatePoint(d.Base.P[0], angle),
		d.Axis.RotatePoint(d.Base.P[1], angle),
		d.Axis.RotatePoint(d.Base.P[2], angle),
	)
}

// Scene is an ordered collection of DynamicTriangle values.
type Scene []DynamicTriangle

// At evaluates every triangle in s at time, producing an ordinary
// collide.Scene suitable for collide.FindIntersectingTriangles.
func (s Scene) At(time float64) collide.Scene {
	out := make(collide.Scene, len(s))
	for i, d := range s {
		out[i] = d.At(time)
	}
	return out
}
