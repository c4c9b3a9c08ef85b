package geom

import (
	"bytes"
	"testing"
)

func TestIntersectsTraceDoesNotAffectResult(t *testing.T) {
	tri1 := NewTriangle(Vec3{X: 5, Y: 6, Z: 7}, Vec3{X: 6, Y: 5, Z: 4}, Vec3{X: 1, Y: 2, Z: 3})
	tri2 := NewTriangle(Vec3{X: -1, Y: 5, Z: 0}, Vec3{X: 2, Y: 2, Z: -3}, Vec3{X: 5, Y: 5, Z: 0})

	var buf bytes.Buffer
	traced := IntersectsTrace(tri1, tri2, &buf)
	plain := Intersects(tri1, tri2)
	if traced != plain {
		t.Fatalf("IntersectsTrace = %v, Intersects = %v, want equal", traced, plain)
	}
	if buf.Len() == 0 {
		t.Error("IntersectsTrace with a non-nil sink wrote nothing to it")
	}
}
