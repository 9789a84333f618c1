package loopmesh

import "github.com/go-gl/mathgl/mgl64"

// Transform returns a copy of the mesh with every position mapped through the
// homogeneous matrix tm. Connectivity is unchanged.
func (m *Mesh) Transform(tm mgl64.Mat4) (*Mesh, error) {
	positions := m.positions()
	for i, p := range positions {
		positions[i] = mgl64.TransformCoordinate(p, tm)
	}
	return newMeshFromPositions(positions, m.Indices())
}

// Scale is Transform with a uniform scale about the origin.
func (m *Mesh) Scale(s float64) (*Mesh, error) {
	return m.Transform(mgl64.Scale3D(s, s, s))
}

// Centre returns a copy translated so that its bounding box is centred on the
// origin.
func (m *Mesh) Centre() (*Mesh, error) {
	lo, hi := m.Bounds()
	c := lo.Add(hi).Mul(0.5)
	return m.Transform(mgl64.Translate3D(-c[0], -c[1], -c[2]))
}
