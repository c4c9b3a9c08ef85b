package geom

import (
	"math"
	"testing"
)

func TestRangeIntersects(t *testing.T) {
	cases := []struct {
		name   string
		r1, r2 Range
		want   bool
	}{
		{"disjoint", NewRange(0, 1), NewRange(2, 3), false},
		{"touching at endpoint", NewRange(0, 1), NewRange(1, 2), true},
		{"overlapping", NewRange(0, 2), NewRange(1, 3), true},
		{"nested", NewRange(0, 10), NewRange(2, 3), true},
		{"identical", NewRange(5, 5), NewRange(5, 5), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r1.Intersects(c.r2); got != c.want {
				t.Errorf("(%v).Intersects(%v) = %v, want %v", c.r1, c.r2, got, c.want)
			}
			if got := c.r2.Intersects(c.r1); got != c.want {
				t.Errorf("Intersects is not symmetric for (%v, %v)", c.r1, c.r2)
			}
		})
	}
}

func TestNewRangePanicsWhenInverted(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("NewRange did not panic when min > max")
		}
	}()
	NewRange(1, 0)
}

func TestEmptyRangeNeverIntersects(t *testing.T) {
	// An empty range, as produced by Triangle.IntersectionRange when no edge
	// crosses the plane, uses min=+Inf, max=-Inf rather than NewRange's
	// validated min<=max. It must still compare as non-intersecting against
	// anything, including another empty range.
	empty := Range{min: float32(math.Inf(1)), max: float32(math.Inf(-1))}
	other := NewRange(-1e6, 1e6)
	if empty.Intersects(other) {
		t.Errorf("empty Range unexpectedly intersects %v", other)
	}
	if empty.Intersects(empty) {
		t.Errorf("empty Range unexpectedly intersects itself")
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	got := x.Cross(y)
	want := Vec3{Z: 1}
	if got != want {
		t.Errorf("x.Cross(y) = %v, want %v", got, want)
	}
}
