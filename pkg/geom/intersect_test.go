package geom

import "testing"

func TestIntersectsSeedTriangle(t *testing.T) {
	tri := NewTriangle(
		Vec3{X: 5, Y: 6, Z: 7},
		Vec3{X: 6, Y: 5, Z: 4},
		Vec3{X: 1, Y: 2, Z: 3},
	)

	cases := []struct {
		name string
		tri  Triangle
		want bool
	}{
		{
			name: "disjoint non-coplanar",
			tri: NewTriangle(
				Vec3{X: -1, Y: 5, Z: 0},
				Vec3{X: 2, Y: 2, Z: -3},
				Vec3{X: 5, Y: 5, Z: 0},
			),
			want: false,
		},
		{
			name: "disjoint second",
			tri: NewTriangle(
				Vec3{X: -1, Y: -1, Z: 0},
				Vec3{X: 0, Y: 1, Z: 0},
				Vec3{X: 1, Y: -1, Z: 0},
			),
			want: false,
		},
		{
			name: "disjoint mirrored",
			tri: NewTriangle(
				Vec3{X: -1, Y: -5, Z: 0},
				Vec3{X: 2, Y: -2, Z: -3},
				Vec3{X: 5, Y: -5, Z: 0},
			),
			want: false,
		},
		{
			name: "identical",
			tri: NewTriangle(
				Vec3{X: 5, Y: 6, Z: 7},
				Vec3{X: 6, Y: 5, Z: 4},
				Vec3{X: 1, Y: 2, Z: 3},
			),
			want: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Intersects(tri, c.tri); got != c.want {
				t.Errorf("Intersects(tri, %v) = %v, want %v", c.tri, got, c.want)
			}
			if got := Intersects(c.tri, tri); got != c.want {
				t.Errorf("Intersects is not symmetric for %v: got %v, want %v", c.tri, got, c.want)
			}
		})
	}
}

func TestIntersectsCoplanarTouchOnly(t *testing.T) {
	tri1 := NewTriangle(Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, Vec3{X: 0, Y: 1, Z: 0})
	tri2 := NewTriangle(Vec3{X: 1, Y: 0, Z: 0}, Vec3{X: 2, Y: 0, Z: 0}, Vec3{X: 1, Y: 1, Z: 0})
	if !Intersects(tri1, tri2) {
		t.Errorf("Intersects(%v, %v) = false, want true: the shared vertex lies on the collinear edge (0,0)-(1,0), which counts as overlap by the documented tolerance policy", tri1, tri2)
	}
}

func TestIntersectsCoplanarOverlap(t *testing.T) {
	tri1 := NewTriangle(Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 2, Y: 0, Z: 0}, Vec3{X: 0, Y: 2, Z: 0})
	tri2 := NewTriangle(Vec3{X: 1, Y: 1, Z: 0}, Vec3{X: 3, Y: 1, Z: 0}, Vec3{X: 1, Y: 3, Z: 0})
	if !Intersects(tri1, tri2) {
		t.Errorf("Intersects(%v, %v) = false, want true", tri1, tri2)
	}
}

func TestIntersectsParallelSeparated(t *testing.T) {
	tri1 := NewTriangle(Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, Vec3{X: 0, Y: 1, Z: 0})
	tri2 := NewTriangle(Vec3{X: 0, Y: 0, Z: 1}, Vec3{X: 1, Y: 0, Z: 1}, Vec3{X: 0, Y: 1, Z: 1})
	if Intersects(tri1, tri2) {
		t.Errorf("Intersects(%v, %v) = true, want false", tri1, tri2)
	}
}

func TestIntersectsReflexive(t *testing.T) {
	tris := []Triangle{
		NewTriangle(Vec3{X: 5, Y: 6, Z: 7}, Vec3{X: 6, Y: 5, Z: 4}, Vec3{X: 1, Y: 2, Z: 3}),
		NewTriangle(Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, Vec3{X: 0, Y: 1, Z: 0}),
		NewTriangle(Vec3{X: -3, Y: 2, Z: 9}, Vec3{X: 4, Y: -1, Z: 2}, Vec3{X: 2, Y: 5, Z: -6}),
	}
	for _, tri := range tris {
		if !Intersects(tri, tri) {
			t.Errorf("Intersects(%v, %v) = false, want true (a triangle always intersects itself)", tri, tri)
		}
	}
}

func TestIntersectsSeparatingSlabRejectsFast(t *testing.T) {
	tri1 := NewTriangle(Vec3{X: -1, Y: -1, Z: 10}, Vec3{X: 1, Y: -1, Z: 10}, Vec3{X: 0, Y: 1, Z: 10})
	tri2 := NewTriangle(Vec3{X: -1, Y: -1, Z: 0}, Vec3{X: 1, Y: -1, Z: 0}, Vec3{X: 0, Y: 1, Z: 0})
	if Intersects(tri1, tri2) {
		t.Errorf("Intersects(%v, %v) = true, want false: disjoint parallel planes", tri1, tri2)
	}
}

func TestIntersectsPanicsOnDegenerateTriangle(t *testing.T) {
	degenerate := NewTriangle(Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, Vec3{X: 2, Y: 0, Z: 0})
	valid := NewTriangle(Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0}, Vec3{X: 0, Y: 1, Z: 0})

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Intersects did not panic on a degenerate triangle")
		} else if _, ok := r.(*PreconditionError); !ok {
			t.Fatalf("Intersects panicked with %T, want *PreconditionError", r)
		}
	}()
	Intersects(degenerate, valid)
}

func TestIntersectsTranslationInvariant(t *testing.T) {
	tri1 := NewTriangle(Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 2, Y: 0, Z: 0}, Vec3{X: 0, Y: 2, Z: 0})
	tri2 := NewTriangle(Vec3{X: 1, Y: 0, Z: -1}, Vec3{X: 1, Y: 0, Z: 1}, Vec3{X: 1, Y: 2, Z: 0})

	if !Intersects(tri1, tri2) {
		t.Fatalf("baseline pair does not intersect, test setup is wrong")
	}

	shift := Vec3{X: 37, Y: -41, Z: 19}
	shifted1 := NewTriangle(tri1.P[0].Add(shift), tri1.P[1].Add(shift), tri1.P[2].Add(shift))
	shifted2 := NewTriangle(tri2.P[0].Add(shift), tri2.P[1].Add(shift), tri2.P[2].Add(shift))
	if !Intersects(shifted1, shifted2) {
		t.Errorf("Intersects is not translation invariant: shifting both triangles by %v flipped the result", shift)
	}
}
