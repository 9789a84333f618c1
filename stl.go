package loopmesh

import (
	"fmt"

	"github.com/fogleman/simplify"
)

// LoadSTL reads a binary STL file and welds its triangle soup into a mesh.
func LoadSTL(path string) (*Mesh, error) {
	sm, err := simplify.LoadBinarySTL(path)
	if err != nil {
		return nil, fmt.Errorf("could not load STL file %s: %w", path, err)
	}
	m, err := fromSimplify(sm).Mesh()
	if err != nil {
		return nil, fmt.Errorf("STL file %s: %w", path, err)
	}
	return m, nil
}

// SaveSTL writes the mesh as a binary STL file.
func SaveSTL(path string, m *Mesh) error {
	if err := toSimplify(m).SaveBinarySTL(path); err != nil {
		return fmt.Errorf("could not save STL file %s: %w", path, err)
	}
	return nil
}

// Decimate reduces the triangle count to roughly factor times the current
// count using quadric error simplification. The result may no longer be
// closed; Subdivide reports that as a NonManifoldMeshError.
func Decimate(m *Mesh, factor float64) (*Mesh, error) {
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("decimation factor %v out of range (0, 1]", factor)
	}
	if factor == 1 {
		return m.Clone(), nil
	}
	out, err := fromSimplify(toSimplify(m).Simplify(factor)).Mesh()
	if err != nil {
		return nil, fmt.Errorf("decimating mesh: %w", err)
	}
	return out, nil
}

func toSimplify(m *Mesh) *simplify.Mesh {
	verts := m.Vertices()
	vec := func(vi int) simplify.Vector {
		p := verts[vi].Position
		return simplify.Vector{X: p[0], Y: p[1], Z: p[2]}
	}
	triangles := make([]*simplify.Triangle, 0, m.FaceCount())
	for _, f := range m.Faces() {
		triangles = append(triangles, simplify.NewTriangle(
			vec(f.VertIndices[0]), vec(f.VertIndices[1]), vec(f.VertIndices[2])))
	}
	return simplify.NewMesh(triangles)
}

func fromSimplify(sm *simplify.Mesh) Buffers {
	welder := NewWelder()
	for _, t := range sm.Triangles {
		welder.AddTriangle(
			[3]float64{t.V1.X, t.V1.Y, t.V1.Z},
			[3]float64{t.V2.X, t.V2.Y, t.V2.Z},
			[3]float64{t.V3.X, t.V3.Y, t.V3.Z},
		)
	}
	return welder.Buffers()
}
