package geom

// signedDistancer is satisfied by any plane-like type that can measure a
// signed distance from a point. Plane and AAPlane both implement it; the
// original C++ source shares isFront/isBack/isCoplanar between its two
// plane kinds through a CRTP mixin base (PlaneBase<Derived>). Go has no
// CRTP, so the shared vertex-wise lifting is expressed as free functions
// over this capability interface instead of a mixin.
type signedDistancer interface {
	Distance(Vec3) float32
}

// IsFront reports whether point lies strictly in front of d (signed
// distance > Epsilon).
func IsFront(d signedDistancer, point Vec3) bool {
	return d.Distance(point) > Epsilon()
}

// IsBack reports whether point lies strictly behind d (signed distance <
// -Epsilon).
func IsBack(d signedDistancer, point Vec3) bool {
	return d.Distance(point) < -Epsilon()
}

// IsCoplanar reports whether point lies within d's epsilon-slab.
func IsCoplanar(d signedDistancer, point Vec3) bool {
	return abs32(d.Distance(point)) <= Epsilon()
}

// TriangleIsFront reports whether every vertex of tri lies strictly in
// front of d.
func TriangleIsFront(d signedDistancer, tri Triangle) bool {
	return IsFront(d, tri.P[0]) && IsFront(d, tri.P[1]) && IsFront(d, tri.P[2])
}

// TriangleIsBack reports whether every vertex of tri lies strictly behind d.
func TriangleIsBack(d signedDistancer, tri Triangle) bool {
	return IsBack(d, tri.P[0]) && IsBack(d, tri.P[1]) && IsBack(d, tri.P[2])
}

// TriangleIsCoplanar reports whether every vertex of tri lies within d's
// epsilon-slab.
func TriangleIsCoplanar(d signedDistancer, tri Triangle) bool {
	return IsCoplanar(d, tri.P[0]) && IsCoplanar(d, tri.P[1]) && IsCoplanar(d, tri.P[2])
}

// Plane is a point plus a normal, not necessarily unit length.
type Plane struct {
	P, N Vec3
}

// NewPlane constructs a plane through p with normal n. It panics with a
// *PreconditionError if n is shorter than Epsilon.
func NewPlane(p, n Vec3) Plane {
	if n.Length2() <= epsilon2() {
		failPrecondition("NewPlane", "normal vector is shorter than epsilon")
	}
	return Plane{P: p, N: n}
}

// PlaneOfTriangle builds the plane containing tri, using tri's first vertex
// as the plane's point and tri.Normal() as its normal. It panics with a
// *PreconditionError if tri is degenerate.
func PlaneOfTriangle(tri Triangle) Plane {
	if tri.IsDegenerate() {
		failPrecondition("PlaneOfTriangle", "triangle is degenerate")
	}
	return Plane{P: tri.P[0], N: tri.Normal()}
}

// Distance returns the signed, unnormalized distance from point to the
// plane: (point-P) dot N.
func (pl Plane) Distance(point Vec3) float32 {
	return point.Sub(pl.P).Dot(pl.N)
}

// Intersect returns the line where pl and other meet, or ok=false when the
// two planes are parallel (within epsilon^2 of the cross-product
// direction vanishing).
func (pl Plane) Intersect(other Plane) (line Line, ok bool) {
	dir := pl.N.Cross(other.N)
	det := dir.Length2()
	if det < epsilon2() {
		return Line{}, false
	}

	point := dir.Cross(pl.N).Scale(other.P.Dot(other.N)).
		Sub(dir.Cross(other.N).Scale(pl.P.Dot(pl.N)))
	point = point.Scale(1 / det)

	return Line{P: point, D: dir}, true
}

// AAPlane is an axis-aligned plane: all points whose coordinate along axis
// equals pos.
type AAPlane struct {
	Pos  float32
	Axis Axis
}

// Distance returns the signed difference between point's coordinate on
// ap.Axis and ap.Pos.
func (ap AAPlane) Distance(point Vec3) float32 {
	return point.Component(ap.Axis) - ap.Pos
}

// Project drops the coordinate named by ap.Axis, returning the remaining
// two components as (in axis order X,Y,Z skipped) (y,z), (x,z), or (x,y).
func (ap AAPlane) Project(point Vec3) Vec2 {
	switch ap.Axis {
	case AxisX:
		return Vec2{point.Y, point.Z}
	case AxisY:
		return Vec2{point.X, point.Z}
	default: // AxisZ
		return Vec2{point.X, point.Y}
	}
}

// ProjectTriangle projects every vertex of tri with Project.
func (ap AAPlane) ProjectTriangle(tri Triangle) Triangle2D {
	return Triangle2D{P: [3]Vec2{
		ap.Project(tri.P[0]),
		ap.Project(tri.P[1]),
		ap.Project(tri.P[2]),
	}}
}
