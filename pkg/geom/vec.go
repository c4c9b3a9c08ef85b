package geom

import "fmt"

// Axis names one of the three coordinate axes. It is used by AAPlane to
// pick which component of a point it measures distance against.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "unknown"
	}
}

// Vec3 is a three-dimensional vector of finite single-precision floats.
// It is a value type, copied freely.
type Vec3 struct {
	X, Y, Z float32
}

// Component returns the coordinate of v named by axis.
func (v Vec3) Component(axis Axis) float32 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return 0
	}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length2 returns the squared length of v, for comparisons against
// Epsilon^2 without a square root.
func (v Vec3) Length2() float32 {
	return v.Dot(v)
}

func (v Vec3) String() string {
	return fmt.Sprintf("[x: %g y: %g z: %g]", v.X, v.Y, v.Z)
}

// Vec2 is a two-dimensional vector, produced by projecting a Vec3 onto an
// AAPlane.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("[x: %g y: %g]", v.X, v.Y)
}

// Range is a closed one-dimensional interval [Min, Max]. Endpoint contact
// counts as intersection.
type Range struct {
	min, max float32
}

// NewRange constructs a closed interval. It panics with a
// *PreconditionError if min > max.
func NewRange(min, max float32) Range {
	if min > max {
		failPrecondition("NewRange", fmt.Sprintf("min %g > max %g", min, max))
	}
	return Range{min: min, max: max}
}

// Min returns the lower bound of the interval.
func (r Range) Min() float32 { return r.min }

// Max returns the upper bound of the interval.
func (r Range) Max() float32 { return r.max }

// Intersects reports whether r and other, as closed intervals, share at
// least one point.
func (r Range) Intersects(other Range) bool {
	if other.max < r.min || other.min > r.max {
		return false
	}
	return true
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.min, r.max)
}
