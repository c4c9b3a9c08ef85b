package main

import "testing"

func TestBuildSceneRandom(t *testing.T) {
	scene, err := buildScene("random", 20, 10, 1, 1)
	if err != nil {
		t.Fatalf("buildScene(random) error = %v", err)
	}
	if len(scene) != 20 {
		t.Errorf("len(scene) = %d, want 20", len(scene))
	}
}

func TestBuildSceneSdfxFindsOverlap(t *testing.T) {
	scene, err := buildScene("sdfx", 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("buildScene(sdfx) error = %v", err)
	}
	if len(scene) == 0 {
		t.Fatal("buildScene(sdfx) returned an empty scene for two overlapping boxes")
	}
}

func TestBuildSceneManifoldWithoutTagReturnsError(t *testing.T) {
	// Without the "manifold" build tag, pkg/kernel/manifold's stub always
	// returns an error from New(); this pins down that buildScene surfaces
	// it instead of swallowing it.
	if _, err := buildScene("manifold", 0, 0, 0, 0); err == nil {
		t.Error("buildScene(manifold) error = nil, want non-nil without the manifold build tag")
	}
}

func TestBuildSceneUnknownKernel(t *testing.T) {
	if _, err := buildScene("bogus", 0, 0, 0, 0); err == nil {
		t.Error("buildScene(bogus) error = nil, want non-nil for an unknown kernel name")
	}
}
