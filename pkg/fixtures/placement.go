package fixtures

import (
	"fmt"

	"github.com/kachkov98/gotriangles/pkg/collide"
	"github.com/kachkov98/gotriangles/pkg/geom"
	"github.com/kachkov98/gotriangles/pkg/kernel"
	"github.com/samber/lo"
)

// PrimitiveKind selects which kernel.Kernel primitive a Placement
// instantiates.
type PrimitiveKind int

const (
	Box PrimitiveKind = iota
	Cylinder
)

// Placement describes one solid to instantiate and where to put it: a
// primitive shape, its dimensions, and a rotate-then-translate transform.
type Placement struct {
	Kind PrimitiveKind
	// Dims is (x,y,z) for Box, or (height, radius, unused) for Cylinder.
	Dims        [3]float64
	Translation [3]float64
	Rotation    [3]float64 // Euler degrees, applied before Translation
}

// Build instantiates every placement through k, tessellates each into a
// mesh, and flattens the resulting triangles into a single Scene. Each
// placement is rotated, then translated, then tessellated with ToMesh, in
// list order.
func Build(k kernel.Kernel, placements []Placement) (collide.Scene, error) {
	meshes := make([]*kernel.Mesh, len(placements))
	for i, p := range placements {
		solid, err := p.instantiate(k)
		if err != nil {
			return nil, fmt.Errorf("fixtures: placement %d: %w", i, err)
		}
		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("fixtures: placement %d: ToMesh: %w", i, err)
		}
		meshes[i] = mesh
	}

	return lo.FlatMap(meshes, func(m *kernel.Mesh, _ int) []geom.Triangle {
		return m.Triangles()
	}), nil
}

// instantiate creates the solid, then applies rotation before translation.
// A zero rotation or zero translation is skipped.
func (p Placement) instantiate(k kernel.Kernel) (kernel.Solid, error) {
	var solid kernel.Solid
	switch p.Kind {
	case Box:
		solid = k.Box(p.Dims[0], p.Dims[1], p.Dims[2])
	case Cylinder:
		solid = k.Cylinder(p.Dims[0], p.Dims[1], 32)
	default:
		return nil, fmt.Errorf("unknown primitive kind %d", p.Kind)
	}

	if p.Rotation[0] != 0 || p.Rotation[1] != 0 || p.Rotation[2] != 0 {
		solid = k.Rotate(solid, p.Rotation[0], p.Rotation[1], p.Rotation[2])
	}
	if p.Translation[0] != 0 || p.Translation[1] != 0 || p.Translation[2] != 0 {
		solid = k.Translate(solid, p.Translation[0], p.Translation[1], p.Translation[2])
	}
	return solid, nil
}
