package kernel

import "github.com/kachkov98/gotriangles/pkg/geom"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"` // which placement this came from
}

// Triangles converts the flat vertex/index buffers into pkg/geom
// triangles, one per three consecutive indices. It is the join point
// between a Kernel's output and pkg/collide's input.
func (m *Mesh) Triangles() []geom.Triangle {
	tris := make([]geom.Triangle, m.TriangleCount())
	for i := range tris {
		tris[i] = geom.NewTriangle(
			m.vertexAt(m.Indices[3*i+0]),
			m.vertexAt(m.Indices[3*i+1]),
			m.vertexAt(m.Indices[3*i+2]),
		)
	}
	return tris
}

func (m *Mesh) vertexAt(idx uint32) geom.Vec3 {
	return geom.Vec3{
		X: m.Vertices[3*idx+0],
		Y: m.Vertices[3*idx+1],
		Z: m.Vertices[3*idx+2],
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
