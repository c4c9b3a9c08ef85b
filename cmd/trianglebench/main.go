// Command trianglebench drives pkg/fixtures and pkg/collide end to end.
// By default it generates a clustered random scene; with -kernel sdfx or
// -kernel manifold it instead tessellates a pair of overlapping boxes
// through a real kernel.Kernel backend via fixtures.Build. Either way it
// reports how many triangles participate in a collision and how long the
// search took.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/kachkov98/gotriangles/pkg/collide"
	"github.com/kachkov98/gotriangles/pkg/fixtures"
	"github.com/kachkov98/gotriangles/pkg/kernel/manifold"
	"github.com/kachkov98/gotriangles/pkg/kernel/sdfx"
)

func main() {
	n := flag.Int("n", 10000, "number of triangles in the generated scene (random kernel only)")
	boxHalfWidth := flag.Float64("box", 10, "half-width of the cube the scene's cluster centers are drawn from (random kernel only)")
	clusterRadius := flag.Float64("radius", 1, "radius of the ball each triangle's vertices are drawn from (random kernel only)")
	seed := flag.Int64("seed", 1, "random seed (random kernel only)")
	kernelName := flag.String("kernel", "random", "scene source: random (clustered random triangles), sdfx (two overlapping boxes tessellated by the sdfx kernel), or manifold (same, via the CGo Manifold kernel)")
	trace := flag.Bool("trace", false, "write a diagnostic trace of every predicate evaluation to stderr")
	flag.Parse()

	scene, err := buildScene(*kernelName, *n, *boxHalfWidth, *clusterRadius, *seed)
	if err != nil {
		log.Fatalf("building scene: %v", err)
	}

	var sink *os.File
	if *trace {
		sink = os.Stderr
	}

	start := time.Now()
	var result collide.Collisions
	if sink != nil {
		result = collide.FindIntersectingTrianglesTrace(scene, sink)
	} else {
		result = collide.FindIntersectingTriangles(scene)
	}
	elapsed := time.Since(start)

	fmt.Printf("scene: %d triangles\n", len(scene))
	fmt.Printf("colliding: %d triangles\n", len(result))
	fmt.Printf("elapsed: %s\n", elapsed)

	if len(scene) > 0 && elapsed > 60*time.Second {
		log.Printf("warning: search took longer than a minute for %d triangles", len(scene))
	}
}

// buildScene dispatches on kernelName to produce the scene to search.
func buildScene(kernelName string, n int, boxHalfWidth, clusterRadius float64, seed int64) (collide.Scene, error) {
	switch kernelName {
	case "random":
		rng := rand.New(rand.NewSource(seed))
		return fixtures.RandomClusteredScene(n, boxHalfWidth, clusterRadius, rng), nil
	case "sdfx":
		return fixtures.Build(sdfx.New(), overlappingBoxes())
	case "manifold":
		k, err := manifold.New()
		if err != nil {
			return nil, fmt.Errorf("manifold kernel: %w", err)
		}
		return fixtures.Build(k, overlappingBoxes())
	default:
		return nil, fmt.Errorf("unknown kernel %q: want random, sdfx, or manifold", kernelName)
	}
}

// overlappingBoxes places two boxes that share half their volume, so the
// tessellated scene is guaranteed to contain a collision regardless of
// which kernel.Kernel backend produced it.
func overlappingBoxes() []fixtures.Placement {
	return []fixtures.Placement{
		{Kind: fixtures.Box, Dims: [3]float64{10, 10, 10}},
		{Kind: fixtures.Box, Dims: [3]float64{10, 10, 10}, Translation: [3]float64{5, 0, 0}},
	}
}
