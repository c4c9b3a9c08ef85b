package collide

import (
	"math/rand"
	"testing"

	"github.com/kachkov98/gotriangles/pkg/geom"
)

func bruteForce(scene Scene) Collisions {
	res := newCollisions()
	for i := 0; i < len(scene); i++ {
		for j := i + 1; j < len(scene); j++ {
			if geom.Intersects(scene[i], scene[j]) {
				res.add(TriangleIndex(i), TriangleIndex(j))
			}
		}
	}
	return res
}

func sameSet(a, b Collisions) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if _, ok := b[idx]; !ok {
			return false
		}
	}
	return true
}

func TestFindIntersectingTrianglesEmptyScene(t *testing.T) {
	got := FindIntersectingTriangles(nil)
	if len(got) != 0 {
		t.Errorf("FindIntersectingTriangles(nil) = %v, want empty", got)
	}
}

func TestFindIntersectingTrianglesSingleTriangle(t *testing.T) {
	scene := Scene{geom.NewTriangle(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Y: 1})}
	got := FindIntersectingTriangles(scene)
	if len(got) != 0 {
		t.Errorf("FindIntersectingTriangles([t]) = %v, want empty", got)
	}
}

func TestFindIntersectingTrianglesBruteForceParity(t *testing.T) {
	sizes := []int{0, 1, 2, 5, 100}
	rng := rand.New(rand.NewSource(42))
	for _, n := range sizes {
		scene := randomClusteredScene(rng, n, 2)
		want := bruteForce(scene)
		got := FindIntersectingTriangles(scene)
		if !sameSet(got, want) {
			t.Errorf("n=%d: FindIntersectingTriangles = %v, brute force = %v", n, got, want)
		}
	}
}

func TestFindIntersectingTrianglesLargeSceneParity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-scene parity check in short mode")
	}
	rng := rand.New(rand.NewSource(7))
	scene := randomClusteredScene(rng, 10000, 1)
	want := bruteForce(scene)
	got := FindIntersectingTriangles(scene)
	if !sameSet(got, want) {
		t.Errorf("FindIntersectingTriangles diverged from brute force on a 10000-triangle scene: got %d indices, want %d", len(got), len(want))
	}
}

func TestFindIntersectingTrianglesTranslationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	scene := randomClusteredScene(rng, 50, 2)
	want := FindIntersectingTriangles(scene)

	shift := geom.Vec3{X: 100, Y: -50, Z: 30}
	shifted := make(Scene, len(scene))
	for i, tri := range scene {
		shifted[i] = geom.NewTriangle(tri.P[0].Add(shift), tri.P[1].Add(shift), tri.P[2].Add(shift))
	}
	got := FindIntersectingTriangles(shifted)
	if !sameSet(got, want) {
		t.Errorf("translating the whole scene by %v changed the result set", shift)
	}
}

// randomClusteredScene draws n triangles with vertices clustered within
// clusterRadius of a common center, itself drawn uniformly from [-10,10]^3,
// mirroring the seed scenarios in the reference test suite.
func randomClusteredScene(rng *rand.Rand, n int, clusterRadius float32) Scene {
	scene := make(Scene, n)
	for i := 0; i < n; i++ {
		center := geom.Vec3{
			X: (rng.Float32()*2 - 1) * 10,
			Y: (rng.Float32()*2 - 1) * 10,
			Z: (rng.Float32()*2 - 1) * 10,
		}
		scene[i] = geom.NewTriangle(
			randomOffset(rng, center, clusterRadius),
			randomOffset(rng, center, clusterRadius),
			randomOffset(rng, center, clusterRadius),
		)
	}
	return scene
}

func randomOffset(rng *rand.Rand, center geom.Vec3, radius float32) geom.Vec3 {
	for {
		v := geom.Vec3{
			X: (rng.Float32()*2 - 1) * radius,
			Y: (rng.Float32()*2 - 1) * radius,
			Z: (rng.Float32()*2 - 1) * radius,
		}
		if v.Length2() <= radius*radius {
			return center.Add(v)
		}
	}
}
