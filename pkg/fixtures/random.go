package fixtures

import (
	"math/rand"

	"github.com/kachkov98/gotriangles/pkg/collide"
	"github.com/kachkov98/gotriangles/pkg/geom"
)

// RandomClusteredScene draws n triangles, each with vertices clustered
// within clusterRadius of a common center drawn uniformly from
// [-boxHalfWidth, boxHalfWidth]^3. It reproduces the reference suite's
// seed scenarios for 100- and 10,000-triangle random scenes (spec.md §8
// items 5-6), without going through kernel.Kernel: these triangles are
// placed directly, not tessellated from a solid.
func RandomClusteredScene(n int, boxHalfWidth, clusterRadius float64, rng *rand.Rand) collide.Scene {
	scene := make(collide.Scene, n)
	for i := 0; i < n; i++ {
		center := randomPoint(rng, boxHalfWidth)
		scene[i] = geom.NewTriangle(
			randomBallOffset(rng, center, clusterRadius),
			randomBallOffset(rng, center, clusterRadius),
			randomBallOffset(rng, center, clusterRadius),
		)
	}
	return scene
}

func randomPoint(rng *rand.Rand, halfWidth float64) geom.Vec3 {
	return geom.Vec3{
		X: float32((rng.Float64()*2 - 1) * halfWidth),
		Y: float32((rng.Float64()*2 - 1) * halfWidth),
		Z: float32((rng.Float64()*2 - 1) * halfWidth),
	}
}

// randomBallOffset returns a point uniformly distributed within a sphere
// of the given radius around center, via rejection sampling against the
// enclosing cube.
func randomBallOffset(rng *rand.Rand, center geom.Vec3, radius float64) geom.Vec3 {
	for {
		v := geom.Vec3{
			X: float32((rng.Float64()*2 - 1) * radius),
			Y: float32((rng.Float64()*2 - 1) * radius),
			Z: float32((rng.Float64()*2 - 1) * radius),
		}
		if float64(v.Length2()) <= radius*radius {
			return center.Add(v)
		}
	}
}
